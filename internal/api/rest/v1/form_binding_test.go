//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
	"github.com/MGTheTrain/specfem-web/internal/pkg/forms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSubmission_SplitsByPrefix(t *testing.T) {
	values := map[string]string{
		"mesh__type":           "2",
		"mesh__nchunks":        "3",
		"model__type":          "ak135",
		"model__oceans":        "on",
		"name":                 "tohoku",
		"record_length":        "30",
		"user":                 "ignored",
		"mesh__user":           "ignored",
		"absorbing_conditions": "false",
		"blank":                "",
	}

	submission, errs := decodeSubmission(values)

	assert.False(t, errs.Any())
	assert.Equal(t, simulations.MeshTypeRegional, submission.Mesh.Type)
	assert.Equal(t, 3, submission.Mesh.NChunks)
	assert.Equal(t, simulations.ModelAK135, submission.Model.Type)
	assert.True(t, submission.Model.Oceans)
	assert.False(t, submission.Model.Gravity)
	assert.Equal(t, "tohoku", submission.Simulation.Name)
	assert.Equal(t, 30.0, submission.Simulation.RecordLength)
}

func TestDecodeSubmission_ReportsPrefixedFields(t *testing.T) {
	values := map[string]string{
		"mesh__nex_xi":    "sixty-four",
		"model__gravity":  "maybe",
		"simulation_type": "forward",
	}

	_, errs := decodeSubmission(values)

	require.True(t, errs.Any())
	assert.Equal(t, []string{"mesh__nex_xi", "model__gravity", "simulation_type"}, errs.Fields())
	assert.Equal(t, []string{forms.MsgInvalidValue}, errs["mesh__nex_xi"])
}

func TestDecodeRegistration(t *testing.T) {
	values := map[string]string{
		"user__username": "seismo42",
		"user__password": "correct horse",
		"user__id":       "forged",
		"user":           "forged",
		"country":        "US",
	}

	registration, errs := decodeRegistration(values)

	assert.False(t, errs.Any())
	assert.Equal(t, "seismo42", registration.Account.Username)
	assert.Equal(t, "correct horse", registration.Account.Password)
	assert.Equal(t, "US", registration.Profile.Country)
}
