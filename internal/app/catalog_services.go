package app

import (
	"context"
	"fmt"
	"io"

	"github.com/MGTheTrain/specfem-web/internal/domain/seismo"
	"github.com/MGTheTrain/specfem-web/internal/pkg/logger"
)

// catalogService implements the CatalogService interface
type catalogService struct {
	eventRepo   seismo.EventRepository
	stationRepo seismo.StationRepository
	logger      logger.Logger
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(eventRepo seismo.EventRepository, stationRepo seismo.StationRepository, logger logger.Logger) (seismo.CatalogService, error) {
	return &catalogService{
		eventRepo:   eventRepo,
		stationRepo: stationRepo,
		logger:      logger,
	}, nil
}

func (s *catalogService) CreateEvent(ctx context.Context, event *seismo.Event) (*seismo.Event, error) {
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *catalogService) ListEvents(ctx context.Context) ([]*seismo.Event, error) {
	return s.eventRepo.List(ctx)
}

func (s *catalogService) CreateStation(ctx context.Context, station *seismo.Station) (*seismo.Station, error) {
	if err := s.stationRepo.Create(ctx, station); err != nil {
		return nil, err
	}
	return station, nil
}

func (s *catalogService) ListStations(ctx context.Context) ([]*seismo.Station, error) {
	return s.stationRepo.List(ctx)
}

// ImportStations stores every station of a STATIONS file, stopping at the first failure
func (s *catalogService) ImportStations(ctx context.Context, r io.Reader) ([]*seismo.Station, error) {
	stations, err := seismo.ParseStations(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stations: %w", err)
	}

	for i, station := range stations {
		if err := s.stationRepo.Create(ctx, station); err != nil {
			return stations[:i], fmt.Errorf("failed to import station %s.%s: %w", station.Network, station.Code, err)
		}
	}

	s.logger.Info("stations imported", "count", len(stations))
	return stations, nil
}
