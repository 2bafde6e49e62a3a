//go:build integration
// +build integration

package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
	"github.com/MGTheTrain/specfem-web/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCLI opens an in-memory environment that survives several executions
func newTestCLI(t *testing.T) (*Environment, func(args ...string) (string, error)) {
	t.Helper()

	env := NewEnvironment()
	require.NoError(t, env.Open())
	t.Cleanup(func() {
		_ = env.Close()
	})

	execute := func(args ...string) (string, error) {
		rootCmd := &cobra.Command{Use: "specfem-web-cli", SilenceUsage: true, SilenceErrors: true}
		InitCommands(rootCmd, env)

		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs(args)
		err := rootCmd.Execute()
		return out.String(), err
	}

	_, err := execute("migrate")
	require.NoError(t, err)
	return env, execute
}

func TestSimulationCommands_ListAndDelete(t *testing.T) {
	env, execute := newTestCLI(t)
	userID := uuid.NewString()

	sim, err := env.Submission.Submit(context.Background(), userID, simulations.MeshTypeGlobal, simulations.ValidSubmission(simulations.MeshTypeGlobal))
	require.NoError(t, err)

	out, err := execute("simulations", "list", "--user", userID)
	require.NoError(t, err)
	assert.Contains(t, out, sim.ID)
	assert.Contains(t, out, "test-simulation")

	out, err = execute("simulations", "delete", sim.ID, "--user", userID)
	require.NoError(t, err)
	assert.Contains(t, out, "deleted simulation "+sim.ID)

	out, err = execute("simulations", "list", "--user", userID)
	require.NoError(t, err)
	assert.NotContains(t, out, sim.ID)
}

func TestSimulationCommands_RequireUser(t *testing.T) {
	_, execute := newTestCLI(t)

	_, err := execute("simulations", "list")
	assert.ErrorContains(t, err, "--user is required")
}

func TestSimulationCommands_Defaults(t *testing.T) {
	_, execute := newTestCLI(t)

	out, err := execute("simulations", "defaults", "--mesh-type", "2", "--simulation-type", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "absorbing_conditions=true\n")
	assert.Contains(t, out, "mesh__nchunks=1\n")
	assert.Contains(t, out, "mesh__type=2\n")
	assert.Contains(t, out, "simulation_type=3\n")

	_, err = execute("simulations", "defaults", "--mesh-type", "3")
	assert.ErrorIs(t, err, simulations.ErrUnknownMeshType)
}

func TestExportCommands(t *testing.T) {
	env, execute := newTestCLI(t)
	userID := uuid.NewString()

	sim, err := env.Submission.Submit(context.Background(), userID, simulations.MeshTypeRegional, simulations.ValidSubmission(simulations.MeshTypeRegional))
	require.NoError(t, err)

	out, err := execute("export", "parameters", sim.ID, "--user", userID)
	require.NoError(t, err)
	assert.Contains(t, out, `<property name="simulation-name">test-simulation</property>`)

	_, err = execute("export", "stations", uuid.NewString(), "--user", userID)
	assert.ErrorIs(t, err, simulations.ErrNotFound)
}

func TestStationCommands_Import(t *testing.T) {
	env, execute := newTestCLI(t)

	path := testutil.CreateTestFile(t, "STATIONS", []byte("AAK II 42.6375 74.4942 1645.0 30.0\nANMO IU 34.9459 -106.4572 1850.0 100.0\n"))

	out, err := execute("stations", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 stations")

	stations, err := env.Catalog.ListStations(context.Background())
	require.NoError(t, err)
	assert.Len(t, stations, 2)
}
