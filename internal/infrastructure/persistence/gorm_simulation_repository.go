package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/specfem-web/internal/domain/seismo"
	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
	"github.com/MGTheTrain/specfem-web/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/specfem-web/internal/pkg/logger"
	"github.com/google/uuid"

	"gorm.io/gorm"
)

type gormSimulationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSimulationRepository creates a new GORM-based SimulationRepository implementation
func NewGormSimulationRepository(db *gorm.DB, logger logger.Logger) (simulations.SimulationRepository, error) {
	return &gormSimulationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSimulationRepository) Create(ctx context.Context, sim *simulations.Simulation) error {
	if sim.ID == "" {
		sim.ID = uuid.NewString()
	}
	if sim.DateTimeCreated.IsZero() {
		sim.DateTimeCreated = time.Now().UTC()
	}
	if err := sim.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	record := &models.SimulationModel{}
	record.FromDomain(sim)

	if err := r.db.WithContext(ctx).Omit("Events", "Stations").Create(record).Error; err != nil {
		return fmt.Errorf("failed to create simulation: %w", err)
	}

	r.logger.Info("created simulation", "simulation_id", sim.ID, "mesh_id", sim.MeshID, "model_id", sim.ModelID)
	return nil
}

func (r *gormSimulationRepository) List(ctx context.Context, userID string, query *simulations.SimulationQuery) ([]*simulations.Simulation, error) {
	if query == nil {
		query = simulations.NewSimulationQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var records []*models.SimulationModel
	dbQuery := r.db.WithContext(ctx).Model(&models.SimulationModel{}).Where("user_id = ?", userID)

	if query.Name != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query.Name+"%")
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch simulations: %w", err)
	}

	list := make([]*simulations.Simulation, len(records))
	for i, record := range records {
		list[i] = record.ToDomain()
	}
	return list, nil
}

func (r *gormSimulationRepository) GetByID(ctx context.Context, simID string) (*simulations.Simulation, error) {
	var record models.SimulationModel
	err := r.db.WithContext(ctx).
		Preload("Events").
		Preload("Stations").
		Where("id = ?", simID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("simulation with ID %s: %w", simID, simulations.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch simulation: %w", err)
	}
	return record.ToDomain(), nil
}

func (r *gormSimulationRepository) UpdateByID(ctx context.Context, sim *simulations.Simulation) error {
	if err := sim.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	record := &models.SimulationModel{}
	record.FromDomain(sim)

	if err := r.db.WithContext(ctx).Omit("Events", "Stations").Save(record).Error; err != nil {
		return fmt.Errorf("failed to update simulation: %w", err)
	}

	r.logger.Info("updated simulation", "simulation_id", sim.ID)
	return nil
}

// DeleteByID removes the simulation row and its event and station links.
// The mesh and model rows are left to the caller.
func (r *gormSimulationRepository) DeleteByID(ctx context.Context, simID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record := &models.SimulationModel{ID: simID}
		if err := tx.Model(record).Association("Events").Clear(); err != nil {
			return fmt.Errorf("failed to detach events: %w", err)
		}
		if err := tx.Model(record).Association("Stations").Clear(); err != nil {
			return fmt.Errorf("failed to detach stations: %w", err)
		}
		return tx.Where("id = ?", simID).Delete(&models.SimulationModel{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete simulation: %w", err)
	}

	r.logger.Info("deleted simulation", "simulation_id", simID)
	return nil
}

func (r *gormSimulationRepository) AttachEvents(ctx context.Context, simID string, events []*seismo.Event) error {
	if len(events) == 0 {
		return nil
	}
	record := &models.SimulationModel{ID: simID}
	if err := r.db.WithContext(ctx).Model(record).Association("Events").Append(models.EventsFromDomain(events)); err != nil {
		return fmt.Errorf("failed to attach events: %w", err)
	}

	r.logger.Info("attached events", "simulation_id", simID, "count", len(events))
	return nil
}

func (r *gormSimulationRepository) AttachStations(ctx context.Context, simID string, stations []*seismo.Station) error {
	if len(stations) == 0 {
		return nil
	}
	record := &models.SimulationModel{ID: simID}
	if err := r.db.WithContext(ctx).Model(record).Association("Stations").Append(models.StationsFromDomain(stations)); err != nil {
		return fmt.Errorf("failed to attach stations: %w", err)
	}

	r.logger.Info("attached stations", "simulation_id", simID, "count", len(stations))
	return nil
}
