// Package simulations defines the mesh, earth model and simulation records
// that make up one SPECFEM3D Globe job, the composite form used to submit
// them together, and the repository and service contracts around them.
package simulations
