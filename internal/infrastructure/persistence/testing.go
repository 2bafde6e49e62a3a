//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/specfem-web/internal/domain/seismo"
	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
	"github.com/MGTheTrain/specfem-web/internal/domain/users"
	"github.com/MGTheTrain/specfem-web/internal/pkg/config"
	"github.com/MGTheTrain/specfem-web/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB              *gorm.DB
	SimulationStore simulations.Store
	UserStore       users.Store
	EventRepo       seismo.EventRepository
	StationRepo     seismo.StationRepository
}

// SetupTestDB initializes a migrated test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  sqliteMemoryDSN,
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	simulationStore, err := NewGormSimulationStore(db, logger)
	require.NoError(t, err, "Failed to create simulation store")

	userStore, err := NewGormUserStore(db, logger)
	require.NoError(t, err, "Failed to create user store")

	eventRepo, err := NewGormEventRepository(db, logger)
	require.NoError(t, err, "Failed to create event repository")

	stationRepo, err := NewGormStationRepository(db, logger)
	require.NoError(t, err, "Failed to create station repository")

	return &TestContext{
		DB:              db,
		SimulationStore: simulationStore,
		UserStore:       userStore,
		EventRepo:       eventRepo,
		StationRepo:     stationRepo,
	}
}

// CreateTestMesh returns an unsaved valid mesh
func CreateTestMesh(t *testing.T, userID string, meshType simulations.MeshType) *simulations.Mesh {
	t.Helper()

	return &simulations.Mesh{
		UserID:         userID,
		MeshParameters: simulations.DefaultMeshParameters(meshType),
	}
}

// CreateTestModel returns an unsaved valid earth model
func CreateTestModel(t *testing.T, userID string) *simulations.Model {
	t.Helper()

	return &simulations.Model{
		UserID:          userID,
		ModelParameters: simulations.DefaultModelParameters(),
	}
}

// CreateTestSimulation saves a mesh and model and returns an unsaved simulation referencing them
func CreateTestSimulation(t *testing.T, ctx *TestContext, userID, name string) *simulations.Simulation {
	t.Helper()

	mesh := CreateTestMesh(t, userID, simulations.MeshTypeGlobal)
	require.NoError(t, ctx.SimulationStore.Meshes().Create(context.Background(), mesh))
	model := CreateTestModel(t, userID)
	require.NoError(t, ctx.SimulationStore.Models().Create(context.Background(), model))

	params := simulations.DefaultSimulationParameters(simulations.SimulationTypeForward)
	params.Name = name
	return &simulations.Simulation{
		UserID:               userID,
		MeshID:               mesh.ID,
		ModelID:              model.ID,
		SimulationParameters: params,
	}
}

// CreateTestEvent returns an unsaved valid event
func CreateTestEvent(t *testing.T, name string) *seismo.Event {
	t.Helper()

	return &seismo.Event{
		Name:         name,
		Region:       "CENTRAL ALASKA",
		OriginTime:   time.Date(2002, 11, 3, 22, 12, 41, 0, time.UTC),
		HalfDuration: 25,
		Latitude:     63.23,
		Longitude:    -144.89,
		Depth:        15,
		Mrr:          1.04e27,
	}
}

// CreateTestStation returns an unsaved valid station
func CreateTestStation(t *testing.T, code string) *seismo.Station {
	t.Helper()

	return &seismo.Station{
		Code:      code,
		Network:   "IU",
		Latitude:  34.9459,
		Longitude: -106.4572,
		Elevation: 1850,
	}
}
