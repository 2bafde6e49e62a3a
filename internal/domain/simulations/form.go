package simulations

import (
	"strconv"

	"github.com/MGTheTrain/specfem-web/internal/pkg/forms"
)

// SimulationForm is what the simulation page renders: field values, errors
// and the choices of every enumerated field.
type SimulationForm struct {
	Template            string              `json:"template"`
	MeshType            MeshType            `json:"mesh_type"`
	AbsorbingConditions bool                `json:"absorbing_conditions"`
	Values              map[string]string   `json:"values"`
	Errors              forms.Errors        `json:"errors,omitempty"`
	Choices             map[string][]Choice `json:"choices"`
}

// TypeSelectionForm is the start page form choosing mesh and simulation type
type TypeSelectionForm struct {
	Values  map[string]string   `json:"values"`
	Choices map[string][]Choice `json:"choices"`
}

// NewTypeSelectionForm preselects a global forward simulation
func NewTypeSelectionForm() *TypeSelectionForm {
	return &TypeSelectionForm{
		Values: map[string]string{
			FieldMeshType:       strconv.Itoa(int(MeshTypeGlobal)),
			FieldSimulationType: strconv.Itoa(int(SimulationTypeForward)),
		},
		Choices: map[string][]Choice{
			FieldMeshType:       MeshTypeChoices,
			FieldSimulationType: SimulationTypeChoices,
		},
	}
}

// NewBlankForm returns the form of a new simulation for meshType with default values
func NewBlankForm(meshType MeshType, simulationType SimulationType) (*SimulationForm, error) {
	submission := &Submission{
		Mesh:       DefaultMeshParameters(meshType),
		Model:      DefaultModelParameters(),
		Simulation: DefaultSimulationParameters(simulationType),
	}
	values, err := submission.Values()
	if err != nil {
		return nil, err
	}
	return newPrefilledForm(meshType, values)
}

// NewEchoForm returns the form showing the submitted values unchanged next to errs
func NewEchoForm(meshType MeshType, submitted map[string]string, errs forms.Errors) (*SimulationForm, error) {
	values := make(map[string]string, len(submitted))
	for key, value := range submitted {
		values[key] = value
	}
	return newForm(meshType, values, errs)
}

// NewEditForm returns the form prefilled from an existing simulation
func NewEditForm(sim *Simulation) (*SimulationForm, error) {
	submission, err := SubmissionFromSimulation(sim)
	if err != nil {
		return nil, err
	}
	values, err := submission.Values()
	if err != nil {
		return nil, err
	}
	return newPrefilledForm(submission.Mesh.Type, values)
}

// newPrefilledForm adds the mesh type and the derived absorbing conditions
// flag to values built from typed parameters.
func newPrefilledForm(meshType MeshType, values map[string]string) (*SimulationForm, error) {
	profile, err := ProfileFor(meshType)
	if err != nil {
		return nil, err
	}
	values[FieldMeshType] = strconv.Itoa(int(meshType))
	values[FieldAbsorbingConditions] = strconv.FormatBool(profile.AbsorbingConditions)
	return newForm(meshType, values, forms.Errors{})
}

func newForm(meshType MeshType, values map[string]string, errs forms.Errors) (*SimulationForm, error) {
	profile, err := ProfileFor(meshType)
	if err != nil {
		return nil, err
	}

	return &SimulationForm{
		Template:            profile.Template,
		MeshType:            meshType,
		AbsorbingConditions: profile.AbsorbingConditions,
		Values:              values,
		Errors:              errs,
		Choices: map[string][]Choice{
			FieldMeshType:       MeshTypeChoices,
			FieldMeshNChunks:    profile.NChunksChoices,
			FieldSimulationType: SimulationTypeChoices,
			FieldModelType:      ModelTypeChoices,
			FieldOutputFormat:   OutputFormatChoices,
		},
	}, nil
}
