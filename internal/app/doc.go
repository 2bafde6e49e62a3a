// Package app implements the simulation, catalogue and account services on
// top of the domain repositories.
package app
