//go:build unit
// +build unit

package simulations

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileFor(t *testing.T) {
	global, err := ProfileFor(MeshTypeGlobal)
	require.NoError(t, err)
	regional, err := ProfileFor(MeshTypeRegional)
	require.NoError(t, err)

	assert.Equal(t, "simulation_form_global", global.Template)
	assert.False(t, global.AbsorbingConditions)
	assert.Equal(t, "simulation_form_regional", regional.Template)
	assert.True(t, regional.AbsorbingConditions)

	// Regional meshes offer every global choice except the last.
	assert.Len(t, global.NChunksChoices, len(regional.NChunksChoices)+1)
	assert.Equal(t, global.NChunksChoices[:len(global.NChunksChoices)-1], regional.NChunksChoices)
	assert.True(t, global.AllowsNChunks(6))
	assert.False(t, regional.AllowsNChunks(6))
	assert.True(t, regional.AllowsNChunks(3))
}

func TestProfileFor_Unknown(t *testing.T) {
	_, err := ProfileFor(MeshType(3))
	assert.True(t, errors.Is(err, ErrUnknownMeshType))
}

func TestParseMeshType(t *testing.T) {
	tests := []struct {
		input   string
		want    MeshType
		wantErr bool
	}{
		{"1", MeshTypeGlobal, false},
		{"2", MeshTypeRegional, false},
		{"3", 0, true},
		{"", 0, true},
		{"global", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMeshType(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownMeshType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSimulationType(t *testing.T) {
	got, err := ParseSimulationType("3")
	require.NoError(t, err)
	assert.Equal(t, SimulationTypeBothKernel, got)

	_, err = ParseSimulationType("4")
	assert.ErrorIs(t, err, ErrUnknownSimulationType)
}
