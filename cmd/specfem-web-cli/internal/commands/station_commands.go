package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// StationCommandHandler manages the station catalogue
type StationCommandHandler struct {
	env *Environment
}

// ImportStationsCmd stores every receiver of a STATIONS file
func (commandHandler *StationCommandHandler) ImportStationsCmd(cmd *cobra.Command, args []string) error {
	f, err := os.Open(filepath.Clean(args[0]))
	if err != nil {
		return err
	}
	defer f.Close()

	stations, err := commandHandler.env.Catalog.ImportStations(cmd.Context(), f)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "imported %d stations\n", len(stations))
	return nil
}

// InitStationCommands registers the stations command group
func InitStationCommands(rootCmd *cobra.Command, env *Environment) {
	handler := &StationCommandHandler{env: env}

	var stationsCmd = &cobra.Command{
		Use:   "stations",
		Short: "Manage the station catalogue",
	}

	var importCmd = &cobra.Command{
		Use:   "import <stations-file>",
		Short: "Import a STATIONS file",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.ImportStationsCmd,
	}
	stationsCmd.AddCommand(importCmd)

	rootCmd.AddCommand(stationsCmd)
}
