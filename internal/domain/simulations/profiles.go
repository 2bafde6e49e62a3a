package simulations

import (
	"fmt"
	"strconv"
)

// MeshProfile is the static form configuration for one mesh type
type MeshProfile struct {
	Type     MeshType
	Template string
	// AbsorbingConditions is stored on the simulation; only regional meshes have artificial boundaries.
	AbsorbingConditions bool
	NChunksChoices      []Choice
}

var meshProfiles = map[MeshType]MeshProfile{
	MeshTypeGlobal: {
		Type:                MeshTypeGlobal,
		Template:            "simulation_form_global",
		AbsorbingConditions: false,
		NChunksChoices:      NChunksChoices,
	},
	MeshTypeRegional: {
		Type:                MeshTypeRegional,
		Template:            "simulation_form_regional",
		AbsorbingConditions: true,
		NChunksChoices:      NChunksChoices[:len(NChunksChoices)-1],
	},
}

// ProfileFor looks up the form configuration of a mesh type
func ProfileFor(t MeshType) (MeshProfile, error) {
	profile, ok := meshProfiles[t]
	if !ok {
		return MeshProfile{}, fmt.Errorf("%w: %d", ErrUnknownMeshType, int(t))
	}
	return profile, nil
}

// AllowsNChunks reports whether n is among the profile's chunk choices
func (p MeshProfile) AllowsNChunks(n int) bool {
	for _, choice := range p.NChunksChoices {
		if choice.Value == strconv.Itoa(n) {
			return true
		}
	}
	return false
}

func allowedNChunks(meshType int64) []int64 {
	profile, err := ProfileFor(MeshType(meshType))
	if err != nil {
		return nil
	}

	allowed := make([]int64, 0, len(profile.NChunksChoices))
	for _, choice := range profile.NChunksChoices {
		n, err := strconv.ParseInt(choice.Value, 10, 64)
		if err == nil {
			allowed = append(allowed, n)
		}
	}
	return allowed
}
