//go:build integration
// +build integration

package app

import (
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/specfem-web/internal/domain/seismo"
	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
	"github.com/MGTheTrain/specfem-web/internal/domain/users"
	"github.com/MGTheTrain/specfem-web/internal/infrastructure/auth"
	"github.com/MGTheTrain/specfem-web/internal/infrastructure/persistence"
	"github.com/MGTheTrain/specfem-web/internal/infrastructure/rendering"
	"github.com/MGTheTrain/specfem-web/internal/pkg/config"
	"github.com/MGTheTrain/specfem-web/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	SubmissionService simulations.SimulationSubmissionService
	MetadataService   simulations.SimulationMetadataService
	ExportService     simulations.SimulationExportService
	CatalogService    seismo.CatalogService
	AccountService    users.AccountService

	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	submissionService, err := NewSimulationSubmissionService(dbContext.SimulationStore, logger)
	require.NoError(t, err, "Failed to create submission service")

	metadataService, err := NewSimulationMetadataService(dbContext.SimulationStore, dbContext.EventRepo, dbContext.StationRepo, logger)
	require.NoError(t, err, "Failed to create metadata service")

	renderer, err := rendering.NewReportRenderer()
	require.NoError(t, err, "Failed to create report renderer")

	exportService, err := NewSimulationExportService(dbContext.SimulationStore, renderer, logger)
	require.NoError(t, err, "Failed to create export service")

	catalogService, err := NewCatalogService(dbContext.EventRepo, dbContext.StationRepo, logger)
	require.NoError(t, err, "Failed to create catalog service")

	hasher, err := auth.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err, "Failed to create password hasher")

	tokens, err := auth.NewJWTSessionTokens(&config.AuthSettings{
		SecretKey:  strings.Repeat("s", 32),
		TokenTTL:   time.Hour,
		CookieName: config.DefaultSessionCookie,
	})
	require.NoError(t, err, "Failed to create session tokens")

	accountService, err := NewAccountService(dbContext.UserStore, hasher, tokens, logger)
	require.NoError(t, err, "Failed to create account service")

	return &TestServices{
		SubmissionService: submissionService,
		MetadataService:   metadataService,
		ExportService:     exportService,
		CatalogService:    catalogService,
		AccountService:    accountService,
		DBContext:         dbContext,
	}
}
