package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/specfem-web/internal/domain/seismo"
	"github.com/MGTheTrain/specfem-web/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/specfem-web/internal/pkg/logger"
	"github.com/google/uuid"

	"gorm.io/gorm"
)

type gormEventRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormEventRepository creates a new GORM-based EventRepository implementation
func NewGormEventRepository(db *gorm.DB, logger logger.Logger) (seismo.EventRepository, error) {
	return &gormEventRepository{db: db, logger: logger}, nil
}

func (r *gormEventRepository) Create(ctx context.Context, event *seismo.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if err := event.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	record := &models.EventModel{}
	record.FromDomain(event)

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	r.logger.Info("created event", "event_id", event.ID, "name", event.Name)
	return nil
}

func (r *gormEventRepository) List(ctx context.Context) ([]*seismo.Event, error) {
	var records []*models.EventModel
	if err := r.db.WithContext(ctx).Order("origin_time desc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	events := make([]*seismo.Event, len(records))
	for i, record := range records {
		events[i] = record.ToDomain()
	}
	return events, nil
}

func (r *gormEventRepository) GetByIDs(ctx context.Context, eventIDs []string) ([]*seismo.Event, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}

	var records []*models.EventModel
	if err := r.db.WithContext(ctx).Where("id IN ?", eventIDs).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	if len(records) != len(uniqueIDs(eventIDs)) {
		return nil, fmt.Errorf("events %v: %w", eventIDs, seismo.ErrNotFound)
	}

	events := make([]*seismo.Event, len(records))
	for i, record := range records {
		events[i] = record.ToDomain()
	}
	return events, nil
}

type gormStationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormStationRepository creates a new GORM-based StationRepository implementation
func NewGormStationRepository(db *gorm.DB, logger logger.Logger) (seismo.StationRepository, error) {
	return &gormStationRepository{db: db, logger: logger}, nil
}

func (r *gormStationRepository) Create(ctx context.Context, station *seismo.Station) error {
	if station.ID == "" {
		station.ID = uuid.NewString()
	}
	if err := station.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	record := &models.StationModel{}
	record.FromDomain(station)

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create station %s.%s: %w", station.Network, station.Code, err)
	}

	r.logger.Info("created station", "station_id", station.ID, "code", station.Code, "network", station.Network)
	return nil
}

func (r *gormStationRepository) List(ctx context.Context) ([]*seismo.Station, error) {
	var records []*models.StationModel
	if err := r.db.WithContext(ctx).Order("network asc").Order("code asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch stations: %w", err)
	}

	stations := make([]*seismo.Station, len(records))
	for i, record := range records {
		stations[i] = record.ToDomain()
	}
	return stations, nil
}

func (r *gormStationRepository) GetByIDs(ctx context.Context, stationIDs []string) ([]*seismo.Station, error) {
	if len(stationIDs) == 0 {
		return nil, nil
	}

	var records []*models.StationModel
	if err := r.db.WithContext(ctx).Where("id IN ?", stationIDs).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch stations: %w", err)
	}
	if len(records) != len(uniqueIDs(stationIDs)) {
		return nil, fmt.Errorf("stations %v: %w", stationIDs, seismo.ErrNotFound)
	}

	stations := make([]*seismo.Station, len(records))
	for i, record := range records {
		stations[i] = record.ToDomain()
	}
	return stations, nil
}

func uniqueIDs(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
