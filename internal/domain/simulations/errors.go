package simulations

import "errors"

var (
	// ErrNotFound is returned when a record does not exist or is not visible to the caller
	ErrNotFound = errors.New("not found")
	// ErrUnknownMeshType is returned for a mesh type outside the profile table
	ErrUnknownMeshType = errors.New("unknown mesh type")
	// ErrUnknownSimulationType is returned for a simulation type outside 1..3
	ErrUnknownSimulationType = errors.New("unknown simulation type")
)
