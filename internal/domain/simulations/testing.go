//go:build unit || integration
// +build unit integration

package simulations

// ValidSubmission returns a submission that passes validation for meshType
func ValidSubmission(meshType MeshType) *Submission {
	simulation := DefaultSimulationParameters(SimulationTypeForward)
	simulation.Name = "test-simulation"
	return &Submission{
		Mesh:       DefaultMeshParameters(meshType),
		Model:      DefaultModelParameters(),
		Simulation: simulation,
	}
}
