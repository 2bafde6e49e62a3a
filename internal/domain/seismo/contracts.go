package seismo

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when a catalogue entry does not exist
var ErrNotFound = errors.New("not found")

// EventRepository defines persistence of catalogue events
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context) ([]*Event, error)
	// GetByIDs returns ErrNotFound unless every id exists.
	GetByIDs(ctx context.Context, eventIDs []string) ([]*Event, error)
}

// StationRepository defines persistence of catalogue stations
type StationRepository interface {
	Create(ctx context.Context, station *Station) error
	List(ctx context.Context) ([]*Station, error)
	// GetByIDs returns ErrNotFound unless every id exists.
	GetByIDs(ctx context.Context, stationIDs []string) ([]*Station, error)
}

// CatalogService manages the event and station catalogue
type CatalogService interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	CreateStation(ctx context.Context, station *Station) (*Station, error)
	ListStations(ctx context.Context) ([]*Station, error)
	// ImportStations parses a STATIONS file and stores every receiver in it.
	ImportStations(ctx context.Context, r io.Reader) ([]*Station, error)
}
