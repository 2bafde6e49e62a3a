// Package main is the entry point for the specfem-web-cli application.
// It registers the administrative sub-commands (migrate, simulations, export, stations)
// on the root command and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/specfem-web/cmd/specfem-web-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	env := commands.NewEnvironment()

	rootCmd := &cobra.Command{
		Use:   "specfem-web-cli",
		Short: "Administrative CLI for the SPECFEM3D Globe web portal",
		Long: `specfem-web-cli manages the portal database from the command line.
It migrates the schema, lists and deletes simulations on behalf of a user,
exports the solver input files of a simulation and imports STATIONS files.

The configuration file is taken from --config or the CONFIG_PATH environment
variable. Without one, an in-memory sqlite database is used.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return env.Open()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return env.Close()
		},
	}
	rootCmd.PersistentFlags().StringVar(&env.ConfigPath, "config", os.Getenv("CONFIG_PATH"), "Path to the YAML configuration file")

	commands.InitCommands(rootCmd, env)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
