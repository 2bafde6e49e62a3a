//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/MGTheTrain/specfem-web/internal/domain/seismo"
	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
	"github.com/stretchr/testify/assert"
)

func TestMeshModel_RoundTrip(t *testing.T) {
	mesh := &simulations.Mesh{
		ID:              "mesh-id",
		UserID:          "user-id",
		DateTimeCreated: time.Now(),
		MeshParameters:  simulations.DefaultMeshParameters(simulations.MeshTypeRegional),
	}

	model := &MeshModel{}
	model.FromDomain(mesh)

	assert.Equal(t, 2, model.Type)
	assert.Equal(t, mesh.NChunks, model.NChunks)
	assert.Equal(t, mesh, model.ToDomain())
}

func TestEarthModelModel_RoundTrip(t *testing.T) {
	earthModel := &simulations.Model{
		ID:              "model-id",
		UserID:          "user-id",
		DateTimeCreated: time.Now(),
		ModelParameters: simulations.DefaultModelParameters(),
	}

	model := &EarthModelModel{}
	model.FromDomain(earthModel)

	assert.Equal(t, simulations.ModelIsotropicPREM, model.Type)
	assert.Equal(t, earthModel, model.ToDomain())
}

func TestSimulationModel_ToDomain(t *testing.T) {
	model := &SimulationModel{
		ID:             "sim-id",
		UserID:         "user-id",
		MeshID:         "mesh-id",
		ModelID:        "model-id",
		Name:           "run",
		SimulationType: 3,
		OutputFormat:   simulations.OutputFormatSACBinary,
		Events:         []EventModel{{ID: "event-id", Name: "110302J"}},
		Stations:       []StationModel{{ID: "station-id", Code: "ANMO", Network: "IU"}},
	}

	sim := model.ToDomain()

	assert.Equal(t, simulations.SimulationTypeBothKernel, sim.SimulationType)
	assert.Equal(t, "mesh-id", sim.MeshID)
	assert.Equal(t, "model-id", sim.ModelID)
	assert.Len(t, sim.Events, 1)
	assert.Equal(t, "110302J", sim.Events[0].Name)
	assert.Len(t, sim.Stations, 1)
	assert.Equal(t, "ANMO", sim.Stations[0].Code)
}

func TestSimulationModel_FromDomainSkipsAssociations(t *testing.T) {
	sim := &simulations.Simulation{
		ID:       "sim-id",
		Events:   []*seismo.Event{{ID: "event-id"}},
		Stations: []*seismo.Station{{ID: "station-id"}},
	}

	model := &SimulationModel{}
	model.FromDomain(sim)

	assert.Empty(t, model.Events)
	assert.Empty(t, model.Stations)
}

func TestStationsFromDomain(t *testing.T) {
	out := StationsFromDomain([]*seismo.Station{{ID: "a", Code: "AAK"}, {ID: "b", Code: "ANMO"}})
	assert.Len(t, out, 2)
	assert.Equal(t, "ANMO", out[1].Code)
}
