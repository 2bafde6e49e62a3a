//go:build unit
// +build unit

package simulations

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityValidation(t *testing.T) {
	submission := ValidSubmission(MeshTypeGlobal)
	userID := uuid.NewString()
	now := time.Now()

	mesh := &Mesh{ID: uuid.NewString(), UserID: userID, DateTimeCreated: now, MeshParameters: submission.Mesh}
	model := &Model{ID: uuid.NewString(), UserID: userID, DateTimeCreated: now, ModelParameters: submission.Model}
	sim := &Simulation{
		ID:                   uuid.NewString(),
		UserID:               userID,
		MeshID:               mesh.ID,
		ModelID:              model.ID,
		DateTimeCreated:      now,
		SimulationParameters: submission.Simulation,
	}

	require.NoError(t, mesh.Validate())
	require.NoError(t, model.Validate())
	require.NoError(t, sim.Validate())

	sim.MeshID = ""
	err := sim.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: MeshID, Tag: required")

	mesh.Type = MeshTypeRegional
	mesh.NChunks = 6
	err = mesh.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: nchunks, Tag: nchunks")
}

func TestSimulationQuery_Validate(t *testing.T) {
	assert.NoError(t, NewSimulationQuery().Validate())
	assert.Error(t, (&SimulationQuery{SortBy: "password"}).Validate())
	assert.Error(t, (&SimulationQuery{SortOrder: "sideways"}).Validate())
}
