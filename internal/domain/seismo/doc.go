// Package seismo holds the earthquake source and receiver catalogue a
// simulation draws its events and stations from.
package seismo
