// Package forms turns flat, namespaced form submissions into typed input
// structs and back.
//
// A composite form posts the fields of several entities in one flat set,
// each entity's fields carrying its own prefix ("mesh__nchunks",
// "model__oceans", "simulation_type"). Namespace.Split partitions such a set
// per prefix, Decode fills a typed struct from one partition reporting
// conversion failures per field, and Flatten renders a struct back into
// prefixed values for re-display.
package forms
