package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
	"github.com/MGTheTrain/specfem-web/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/specfem-web/internal/pkg/logger"
	"github.com/google/uuid"

	"gorm.io/gorm"
)

type gormEarthModelRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormModelRepository creates a new GORM-based ModelRepository implementation
func NewGormModelRepository(db *gorm.DB, logger logger.Logger) (simulations.ModelRepository, error) {
	return &gormEarthModelRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormEarthModelRepository) Create(ctx context.Context, earthModel *simulations.Model) error {
	if earthModel.ID == "" {
		earthModel.ID = uuid.NewString()
	}
	if earthModel.DateTimeCreated.IsZero() {
		earthModel.DateTimeCreated = time.Now().UTC()
	}
	if err := earthModel.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	record := &models.EarthModelModel{}
	record.FromDomain(earthModel)

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create model: %w", err)
	}

	r.logger.Info("created model", "model_id", earthModel.ID)
	return nil
}

func (r *gormEarthModelRepository) GetByID(ctx context.Context, modelID string) (*simulations.Model, error) {
	var record models.EarthModelModel
	if err := r.db.WithContext(ctx).Where("id = ?", modelID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("model with ID %s: %w", modelID, simulations.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch model: %w", err)
	}
	return record.ToDomain(), nil
}

func (r *gormEarthModelRepository) UpdateByID(ctx context.Context, earthModel *simulations.Model) error {
	if err := earthModel.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	record := &models.EarthModelModel{}
	record.FromDomain(earthModel)

	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("failed to update model: %w", err)
	}

	r.logger.Info("updated model", "model_id", earthModel.ID)
	return nil
}

func (r *gormEarthModelRepository) DeleteByID(ctx context.Context, modelID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", modelID).Delete(&models.EarthModelModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete model: %w", err)
	}

	r.logger.Info("deleted model", "model_id", modelID)
	return nil
}
