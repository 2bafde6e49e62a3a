package commands

import (
	"fmt"

	"github.com/MGTheTrain/specfem-web/internal/app"
	"github.com/MGTheTrain/specfem-web/internal/domain/seismo"
	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
	"github.com/MGTheTrain/specfem-web/internal/infrastructure/persistence"
	"github.com/MGTheTrain/specfem-web/internal/infrastructure/rendering"
	"github.com/MGTheTrain/specfem-web/internal/pkg/config"
	"github.com/MGTheTrain/specfem-web/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// Environment holds the configuration and services shared by every command.
// It is opened once before a command runs.
type Environment struct {
	ConfigPath string

	Logger     logger.Logger
	DB         *gorm.DB
	Submission simulations.SimulationSubmissionService
	Metadata   simulations.SimulationMetadataService
	Export     simulations.SimulationExportService
	Catalog    seismo.CatalogService
}

// NewEnvironment returns an unopened Environment
func NewEnvironment() *Environment {
	return &Environment{}
}

// Open loads the configuration, connects to the database and builds the services
func (env *Environment) Open() error {
	if env.DB != nil {
		return nil
	}

	cfg, err := config.InitializeCLIConfig(env.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	baseLog, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger instance: %w", err)
	}
	log := baseLog.With("component", "cli")

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}

	store, err := persistence.NewGormSimulationStore(db, log)
	if err != nil {
		return fmt.Errorf("failed to create simulation store: %w", err)
	}
	eventRepo, err := persistence.NewGormEventRepository(db, log)
	if err != nil {
		return fmt.Errorf("failed to create event repository: %w", err)
	}
	stationRepo, err := persistence.NewGormStationRepository(db, log)
	if err != nil {
		return fmt.Errorf("failed to create station repository: %w", err)
	}
	reports, err := rendering.NewReportRenderer()
	if err != nil {
		return fmt.Errorf("failed to create report renderer: %w", err)
	}

	if env.Submission, err = app.NewSimulationSubmissionService(store, log); err != nil {
		return fmt.Errorf("failed to create submission service: %w", err)
	}
	if env.Metadata, err = app.NewSimulationMetadataService(store, eventRepo, stationRepo, log); err != nil {
		return fmt.Errorf("failed to create metadata service: %w", err)
	}
	if env.Export, err = app.NewSimulationExportService(store, reports, log); err != nil {
		return fmt.Errorf("failed to create export service: %w", err)
	}
	if env.Catalog, err = app.NewCatalogService(eventRepo, stationRepo, log); err != nil {
		return fmt.Errorf("failed to create catalog service: %w", err)
	}

	env.Logger = log
	env.DB = db
	return nil
}

// Close releases the database connection
func (env *Environment) Close() error {
	if env.DB == nil {
		return nil
	}
	err := persistence.CloseDB(env.DB)
	env.DB = nil
	return err
}

// InitCommands registers every command group with the root command
func InitCommands(rootCmd *cobra.Command, env *Environment) {
	InitMigrateCommands(rootCmd, env)
	InitSimulationCommands(rootCmd, env)
	InitExportCommands(rootCmd, env)
	InitStationCommands(rootCmd, env)
}

func requiredUser(cmd *cobra.Command) (string, error) {
	userID, err := cmd.Flags().GetString("user")
	if err != nil {
		return "", fmt.Errorf("invalid user flag: %w", err)
	}
	if userID == "" {
		return "", fmt.Errorf("--user is required")
	}
	return userID, nil
}
