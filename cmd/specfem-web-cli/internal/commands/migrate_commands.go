package commands

import (
	"fmt"

	"github.com/MGTheTrain/specfem-web/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// MigrateCommandHandler applies the ORM schema
type MigrateCommandHandler struct {
	env *Environment
}

// MigrateCmd creates or updates every table
func (commandHandler *MigrateCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	if err := persistence.Migrate(commandHandler.env.DB); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	commandHandler.env.Logger.Info("Database migrations completed successfully")
	return nil
}

// InitMigrateCommands registers the migrate command
func InitMigrateCommands(rootCmd *cobra.Command, env *Environment) {
	handler := &MigrateCommandHandler{env: env}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE:  handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)
}
