// cmd/specfem-web-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/specfem-web/internal/api/rest/v1"
	"github.com/MGTheTrain/specfem-web/internal/app"
	"github.com/MGTheTrain/specfem-web/internal/domain/seismo"
	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
	"github.com/MGTheTrain/specfem-web/internal/domain/users"
	"github.com/MGTheTrain/specfem-web/internal/infrastructure/auth"
	"github.com/MGTheTrain/specfem-web/internal/infrastructure/persistence"
	"github.com/MGTheTrain/specfem-web/internal/infrastructure/rendering"
	"github.com/MGTheTrain/specfem-web/internal/pkg/config"
	"github.com/MGTheTrain/specfem-web/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	services *appServices
	tokens   users.SessionTokens
	pages    *rendering.HTMLPageRenderer
}

type appServices struct {
	submission simulations.SimulationSubmissionService
	metadata   simulations.SimulationMetadataService
	export     simulations.SimulationExportService
	catalog    seismo.CatalogService
	account    users.AccountService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize session handling
	hasher, err := auth.NewBcryptHasher(bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	tokens, err := auth.NewJWTSessionTokens(&cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create session tokens: %w", err)
	}

	// Initialize renderers
	reports, err := rendering.NewReportRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create report renderer: %w", err)
	}

	pages, err := rendering.NewHTMLPageRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create page renderer: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(db, hasher, tokens, reports, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:       db,
		services: services,
		tokens:   tokens,
		pages:    pages,
	}, nil
}

// initializeApplicationServices sets up all repositories and application services
func initializeApplicationServices(
	db *gorm.DB,
	hasher users.PasswordHasher,
	tokens users.SessionTokens,
	reports simulations.ReportRenderer,
	log logger.Logger,
) (*appServices, error) {
	simulationStore, err := persistence.NewGormSimulationStore(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation store: %w", err)
	}

	userStore, err := persistence.NewGormUserStore(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user store: %w", err)
	}

	eventRepo, err := persistence.NewGormEventRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create event repository: %w", err)
	}

	stationRepo, err := persistence.NewGormStationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create station repository: %w", err)
	}

	submissionService, err := app.NewSimulationSubmissionService(simulationStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation submission service: %w", err)
	}

	metadataService, err := app.NewSimulationMetadataService(simulationStore, eventRepo, stationRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation metadata service: %w", err)
	}

	exportService, err := app.NewSimulationExportService(simulationStore, reports, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation export service: %w", err)
	}

	catalogService, err := app.NewCatalogService(eventRepo, stationRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	accountService, err := app.NewAccountService(userStore, hasher, tokens, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		submission: submissionService,
		metadata:   metadataService,
		export:     exportService,
		catalog:    catalogService,
		account:    accountService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Logger.RequestLogging {
		r.Use(v1.RequestLogger(log))
	}

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.submission,
		deps.services.metadata,
		deps.services.export,
		deps.services.catalog,
		deps.services.account,
		deps.tokens,
		deps.pages,
		&cfg.Auth,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server", "port", cfg.Port, "base_path", v1.BasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal, initiating graceful shutdown", "signal", sig.String())
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
