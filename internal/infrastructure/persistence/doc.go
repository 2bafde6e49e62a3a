// Package persistence provides the GORM repositories for simulations,
// accounts and the seismic catalogue, plus the stores that bind them to a
// shared transaction.
package persistence
