package simulations

import (
	"fmt"

	"github.com/MGTheTrain/specfem-web/internal/pkg/forms"
)

// Field name prefixes of the composite simulation form
const (
	MeshPrefix       = "mesh__"
	ModelPrefix      = "model__"
	SimulationPrefix = ""
)

// Submitted names that are set server side or only steer the handler
const (
	FieldBlank               = "blank"
	FieldAbsorbingConditions = "absorbing_conditions"
	FieldMeshType            = MeshPrefix + "type"
	FieldMeshNChunks         = MeshPrefix + "nchunks"
	FieldSimulationType      = SimulationPrefix + "simulation_type"
	FieldModelType           = ModelPrefix + "type"
	FieldOutputFormat        = SimulationPrefix + "output_format"
)

// SubmissionNamespace splits a flat simulation form into its mesh, model and
// simulation parts.
var SubmissionNamespace = forms.Namespace{
	Prefixes: []string{MeshPrefix, ModelPrefix, SimulationPrefix},
	Excluded: []string{
		"user", "mesh", "mesh__user", "model", "model__user",
		FieldBlank, FieldAbsorbingConditions,
	},
}

// Submission is one composite simulation form, already decoded.
type Submission struct {
	Mesh       MeshParameters
	Model      ModelParameters
	Simulation SimulationParameters
}

// Validate checks every part and returns the failures keyed by prefixed field name
func (s *Submission) Validate() forms.Errors {
	errs := forms.Errors{}
	errs.Merge(validateParameters(MeshPrefix, &s.Mesh))
	errs.Merge(validateParameters(ModelPrefix, &s.Model))
	errs.Merge(validateParameters(SimulationPrefix, &s.Simulation))
	errs.Merge(s.Simulation.checkMovie().Prefixed(SimulationPrefix))
	return errs
}

// Values flattens the submission back into prefixed form values
func (s *Submission) Values() (map[string]string, error) {
	values := make(map[string]string)
	parts := []struct {
		prefix string
		params interface{}
	}{
		{MeshPrefix, s.Mesh},
		{ModelPrefix, s.Model},
		{SimulationPrefix, s.Simulation},
	}
	for _, part := range parts {
		flat, err := forms.Flatten(part.prefix, part.params)
		if err != nil {
			return nil, fmt.Errorf("failed to flatten submission: %w", err)
		}
		for key, value := range flat {
			values[key] = value
		}
	}
	return values, nil
}

// SubmissionFromSimulation rebuilds the submission that would reproduce sim.
// Mesh and Model must be resolved.
func SubmissionFromSimulation(sim *Simulation) (*Submission, error) {
	if sim.Mesh == nil || sim.Model == nil {
		return nil, fmt.Errorf("simulation %s has no resolved mesh or model", sim.ID)
	}
	return &Submission{
		Mesh:       sim.Mesh.MeshParameters,
		Model:      sim.Model.ModelParameters,
		Simulation: sim.SimulationParameters,
	}, nil
}
