//go:build unit
// +build unit

package simulations

import (
	"testing"

	"github.com/MGTheTrain/specfem-web/internal/pkg/forms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlankForm_Global(t *testing.T) {
	form, err := NewBlankForm(MeshTypeGlobal, SimulationTypeAdjoint)
	require.NoError(t, err)

	assert.Equal(t, "simulation_form_global", form.Template)
	assert.False(t, form.AbsorbingConditions)
	assert.Equal(t, "1", form.Values["mesh__type"])
	assert.Equal(t, "1", form.Values["mesh__nchunks"])
	assert.Equal(t, "2", form.Values["simulation_type"])
	assert.Equal(t, "false", form.Values["absorbing_conditions"])
	assert.Len(t, form.Choices["mesh__nchunks"], 4)
	assert.Empty(t, form.Errors)
}

func TestNewBlankForm_Regional(t *testing.T) {
	form, err := NewBlankForm(MeshTypeRegional, SimulationTypeForward)
	require.NoError(t, err)

	assert.Equal(t, "simulation_form_regional", form.Template)
	assert.True(t, form.AbsorbingConditions)
	assert.Equal(t, "2", form.Values["mesh__type"])
	assert.Equal(t, "1", form.Values["mesh__nchunks"])
	assert.Equal(t, "1", form.Values["simulation_type"])
	assert.Equal(t, "true", form.Values["absorbing_conditions"])
	assert.Len(t, form.Choices["mesh__nchunks"], 3)
}

func TestNewEchoForm_KeepsSubmittedValues(t *testing.T) {
	submitted := map[string]string{
		"mesh__type":    "2",
		"mesh__nchunks": "6",
		"name":          " spaced ",
	}
	errs := forms.Errors{"mesh__nchunks": {forms.MsgInvalidChoice}}

	form, err := NewEchoForm(MeshTypeRegional, submitted, errs)
	require.NoError(t, err)

	assert.Equal(t, submitted, form.Values)
	assert.Equal(t, errs, form.Errors)
	assert.True(t, form.AbsorbingConditions)
	_, mutated := submitted["absorbing_conditions"]
	assert.False(t, mutated)
}

func TestNewEchoForm_DoesNotNormaliseMeshType(t *testing.T) {
	submitted := map[string]string{
		"mesh__type":    "01",
		"mesh__nchunks": "six",
		"name":          "x",
	}

	form, err := NewEchoForm(MeshTypeGlobal, submitted, forms.Errors{"mesh__nchunks": {forms.MsgInvalidValue}})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"mesh__type":    "01",
		"mesh__nchunks": "six",
		"name":          "x",
	}, form.Values)
	assert.Equal(t, MeshTypeGlobal, form.MeshType)
	assert.False(t, form.AbsorbingConditions)
}

func TestNewEditForm(t *testing.T) {
	submission := ValidSubmission(MeshTypeRegional)
	sim := &Simulation{
		ID:                   "sim",
		SimulationParameters: submission.Simulation,
		Mesh:                 &Mesh{MeshParameters: submission.Mesh},
		Model:                &Model{ModelParameters: submission.Model},
	}

	form, err := NewEditForm(sim)
	require.NoError(t, err)
	assert.Equal(t, "simulation_form_regional", form.Template)
	assert.Equal(t, "test-simulation", form.Values["name"])
}

func TestNewTypeSelectionForm(t *testing.T) {
	form := NewTypeSelectionForm()
	assert.Equal(t, map[string]string{"mesh__type": "1", "simulation_type": "1"}, form.Values)
	assert.Len(t, form.Choices["mesh__type"], 2)
	assert.Len(t, form.Choices["simulation_type"], 3)
}
