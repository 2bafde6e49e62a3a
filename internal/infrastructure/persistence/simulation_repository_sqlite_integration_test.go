//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MGTheTrain/specfem-web/internal/domain/seismo"
	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
	"github.com/MGTheTrain/specfem-web/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/specfem-web/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshSqliteRepository_CreateAssignsID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	mesh := CreateTestMesh(t, uuid.NewString(), simulations.MeshTypeRegional)
	require.NoError(t, ctx.SimulationStore.Meshes().Create(context.Background(), mesh))
	assert.NotEmpty(t, mesh.ID)
	assert.False(t, mesh.DateTimeCreated.IsZero())

	var record models.MeshModel
	require.NoError(t, ctx.DB.First(&record, "id = ?", mesh.ID).Error)
	assert.Equal(t, 2, record.Type)
	assert.Equal(t, mesh.NChunks, record.NChunks)
}

func TestMeshSqliteRepository_Create_ValidationError(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	mesh := CreateTestMesh(t, uuid.NewString(), simulations.MeshTypeRegional)
	mesh.NChunks = 6

	err := ctx.SimulationStore.Meshes().Create(context.Background(), mesh)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestSimulationSqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	sim := CreateTestSimulation(t, ctx, uuid.NewString(), "run-1")
	require.NoError(t, ctx.SimulationStore.Simulations().Create(context.Background(), sim))

	fetched, err := ctx.SimulationStore.Simulations().GetByID(context.Background(), sim.ID)
	require.NoError(t, err)
	assert.Equal(t, sim.ID, fetched.ID)
	assert.Equal(t, sim.MeshID, fetched.MeshID)
	assert.Equal(t, sim.ModelID, fetched.ModelID)
	assert.Equal(t, "run-1", fetched.Name)
}

func TestSimulationSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.SimulationStore.Simulations().GetByID(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.True(t, errors.Is(err, simulations.ErrNotFound))
}

func TestSimulationSqliteRepository_Create_RequiresMeshAndModel(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	sim := CreateTestSimulation(t, ctx, uuid.NewString(), "orphan")
	sim.MeshID = ""

	err := ctx.SimulationStore.Simulations().Create(context.Background(), sim)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MeshID")
}

func TestSimulationSqliteRepository_ListScopedByUser(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	owner := uuid.NewString()
	for i := 1; i <= 3; i++ {
		sim := CreateTestSimulation(t, ctx, owner, fmt.Sprintf("run-%d", i))
		require.NoError(t, ctx.SimulationStore.Simulations().Create(context.Background(), sim))
	}
	other := CreateTestSimulation(t, ctx, uuid.NewString(), "foreign")
	require.NoError(t, ctx.SimulationStore.Simulations().Create(context.Background(), other))

	list, err := ctx.SimulationStore.Simulations().List(context.Background(), owner, nil)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	query := &simulations.SimulationQuery{SortBy: "name", SortOrder: "asc", Limit: 2, Offset: 1}
	page, err := ctx.SimulationStore.Simulations().List(context.Background(), owner, query)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "run-2", page[0].Name)
	assert.Equal(t, "run-3", page[1].Name)
}

func TestSimulationSqliteRepository_List_InvalidQuery(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.SimulationStore.Simulations().List(context.Background(), uuid.NewString(), &simulations.SimulationQuery{SortBy: "id; drop table"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid query parameters")
}

func TestSimulationSqliteRepository_AttachAndDelete(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	event := CreateTestEvent(t, "110302J")
	require.NoError(t, ctx.EventRepo.Create(context.Background(), event))
	station := CreateTestStation(t, "ANMO")
	require.NoError(t, ctx.StationRepo.Create(context.Background(), station))

	sim := CreateTestSimulation(t, ctx, uuid.NewString(), "with-receivers")
	repo := ctx.SimulationStore.Simulations()
	require.NoError(t, repo.Create(context.Background(), sim))
	require.NoError(t, repo.AttachEvents(context.Background(), sim.ID, []*seismo.Event{event}))
	require.NoError(t, repo.AttachStations(context.Background(), sim.ID, []*seismo.Station{station}))

	fetched, err := repo.GetByID(context.Background(), sim.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Events, 1)
	assert.Equal(t, "110302J", fetched.Events[0].Name)
	require.Len(t, fetched.Stations, 1)
	assert.Equal(t, "ANMO", fetched.Stations[0].Code)

	require.NoError(t, repo.DeleteByID(context.Background(), sim.ID))

	var links int64
	require.NoError(t, ctx.DB.Table("simulation_events").Where("simulation_id = ?", sim.ID).Count(&links).Error)
	assert.Zero(t, links)

	// Catalogue entries outlive the simulation.
	events, err := ctx.EventRepo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestSimulationStore_WithinTransactionRollsBack(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	userID := uuid.NewString()

	err := ctx.SimulationStore.WithinTransaction(context.Background(), func(tx simulations.Store) error {
		if err := tx.Meshes().Create(context.Background(), CreateTestMesh(t, userID, simulations.MeshTypeGlobal)); err != nil {
			return err
		}
		return tx.Simulations().Create(context.Background(), &simulations.Simulation{UserID: userID})
	})
	require.Error(t, err)

	var meshes int64
	require.NoError(t, ctx.DB.Model(&models.MeshModel{}).Count(&meshes).Error)
	assert.Zero(t, meshes)
}

func TestCatalogSqliteRepository_GetByIDs(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	station := CreateTestStation(t, "AAK")
	require.NoError(t, ctx.StationRepo.Create(context.Background(), station))

	found, err := ctx.StationRepo.GetByIDs(context.Background(), []string{station.ID, station.ID})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	_, err = ctx.StationRepo.GetByIDs(context.Background(), []string{station.ID, uuid.NewString()})
	assert.ErrorIs(t, err, seismo.ErrNotFound)
}
