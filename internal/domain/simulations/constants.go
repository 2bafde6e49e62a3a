package simulations

import (
	"fmt"
	"strconv"
)

// Choice is one option of an enumerated form field
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// MeshType selects a whole-globe or a regional mesh
type MeshType int

// Mesh types
const (
	MeshTypeGlobal   MeshType = 1
	MeshTypeRegional MeshType = 2
)

func (t MeshType) String() string {
	switch t {
	case MeshTypeGlobal:
		return "global"
	case MeshTypeRegional:
		return "regional"
	default:
		return fmt.Sprintf("MeshType(%d)", int(t))
	}
}

// ParseMeshType parses the submitted mesh__type value
func ParseMeshType(s string) (MeshType, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMeshType, s)
	}
	t := MeshType(n)
	if _, ok := meshProfiles[t]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMeshType, s)
	}
	return t, nil
}

// SimulationType selects forward, adjoint or combined runs
type SimulationType int

// Simulation types
const (
	SimulationTypeForward    SimulationType = 1
	SimulationTypeAdjoint    SimulationType = 2
	SimulationTypeBothKernel SimulationType = 3
)

// ParseSimulationType parses the submitted simulation_type value
func ParseSimulationType(s string) (SimulationType, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < int(SimulationTypeForward) || n > int(SimulationTypeBothKernel) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSimulationType, s)
	}
	return SimulationType(n), nil
}

// Earth model names understood by the solver
const (
	ModelIsotropicPREM             = "isotropic_prem"
	ModelTransverselyIsotropicPREM = "transversly_isotropic_prem"
	ModelIASPEI                    = "iaspei"
	ModelAK135                     = "ak135"
	Model3DIsotropic               = "3D_isotropic"
	Model3DAnisotropic             = "3D_anisotropic"
	Model3DAttenuation             = "3D_attenuation"
	ModelS20RTS                    = "s20rts"
	ModelS362ANI                   = "s362ani"
)

// Seismogram output formats
const (
	OutputFormatASCII       = "ascii"
	OutputFormatSACAlphanum = "sac_alphanum"
	OutputFormatSACBinary   = "sac_binary"
)

// Choice lists offered by the submission forms
var (
	MeshTypeChoices = []Choice{
		{Value: "1", Label: "global"},
		{Value: "2", Label: "regional"},
	}

	SimulationTypeChoices = []Choice{
		{Value: "1", Label: "forward"},
		{Value: "2", Label: "adjoint"},
		{Value: "3", Label: "both forward and adjoint"},
	}

	// NChunksChoices is the full set; regional meshes drop the last entry.
	NChunksChoices = []Choice{
		{Value: "1", Label: "1"},
		{Value: "2", Label: "2"},
		{Value: "3", Label: "3"},
		{Value: "6", Label: "6"},
	}

	ModelTypeChoices = []Choice{
		{Value: ModelIsotropicPREM, Label: "isotropic PREM"},
		{Value: ModelTransverselyIsotropicPREM, Label: "transversely isotropic PREM"},
		{Value: ModelIASPEI, Label: "IASPEI"},
		{Value: ModelAK135, Label: "AK135"},
		{Value: Model3DIsotropic, Label: "3D isotropic"},
		{Value: Model3DAnisotropic, Label: "3D anisotropic"},
		{Value: Model3DAttenuation, Label: "3D attenuation"},
		{Value: ModelS20RTS, Label: "S20RTS"},
		{Value: ModelS362ANI, Label: "S362ANI"},
	}

	OutputFormatChoices = []Choice{
		{Value: OutputFormatASCII, Label: "ASCII text"},
		{Value: OutputFormatSACAlphanum, Label: "SAC alphanumeric"},
		{Value: OutputFormatSACBinary, Label: "SAC binary"},
	}
)
