package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// ExportCommandHandler writes the solver input files of a simulation
type ExportCommandHandler struct {
	env *Environment
}

type exportFunc func(ctx context.Context, userID, simID string, w io.Writer) error

func (commandHandler *ExportCommandHandler) run(render func() exportFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		userID, err := requiredUser(cmd)
		if err != nil {
			return err
		}
		outputFile, err := cmd.Flags().GetString("output-file")
		if err != nil {
			return fmt.Errorf("invalid output-file flag: %w", err)
		}

		if outputFile == "" {
			return render()(cmd.Context(), userID, args[0], cmd.OutOrStdout())
		}

		f, err := os.OpenFile(filepath.Clean(outputFile), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return err
		}
		if err := render()(cmd.Context(), userID, args[0], f); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		commandHandler.env.Logger.Info("Export saved", "path", outputFile)
		return nil
	}
}

// InitExportCommands registers the export command group
func InitExportCommands(rootCmd *cobra.Command, env *Environment) {
	handler := &ExportCommandHandler{env: env}

	var exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export the solver input files of a simulation",
	}

	subcommands := []struct {
		use    string
		short  string
		render func() exportFunc
	}{
		{"parameters <simulation-id>", "Write the XML parameter document", func() exportFunc { return env.Export.Parameters }},
		{"events <simulation-id>", "Write the CMTSOLUTION list", func() exportFunc { return env.Export.Events }},
		{"stations <simulation-id>", "Write the STATIONS list", func() exportFunc { return env.Export.Stations }},
	}

	for _, sub := range subcommands {
		var subCmd = &cobra.Command{
			Use:   sub.use,
			Short: sub.short,
			Args:  cobra.ExactArgs(1),
			RunE:  handler.run(sub.render),
		}
		subCmd.Flags().StringP("user", "u", "", "ID of the owning user")
		subCmd.Flags().StringP("output-file", "o", "", "Write to this file instead of stdout")
		exportCmd.AddCommand(subCmd)
	}

	rootCmd.AddCommand(exportCmd)
}
