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

type gormMeshRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMeshRepository creates a new GORM-based MeshRepository implementation
func NewGormMeshRepository(db *gorm.DB, logger logger.Logger) (simulations.MeshRepository, error) {
	return &gormMeshRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormMeshRepository) Create(ctx context.Context, mesh *simulations.Mesh) error {
	if mesh.ID == "" {
		mesh.ID = uuid.NewString()
	}
	if mesh.DateTimeCreated.IsZero() {
		mesh.DateTimeCreated = time.Now().UTC()
	}
	if err := mesh.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	record := &models.MeshModel{}
	record.FromDomain(mesh)

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create mesh: %w", err)
	}

	r.logger.Info("created mesh", "mesh_id", mesh.ID)
	return nil
}

func (r *gormMeshRepository) GetByID(ctx context.Context, meshID string) (*simulations.Mesh, error) {
	var record models.MeshModel
	if err := r.db.WithContext(ctx).Where("id = ?", meshID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("mesh with ID %s: %w", meshID, simulations.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch mesh: %w", err)
	}
	return record.ToDomain(), nil
}

func (r *gormMeshRepository) UpdateByID(ctx context.Context, mesh *simulations.Mesh) error {
	if err := mesh.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	record := &models.MeshModel{}
	record.FromDomain(mesh)

	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("failed to update mesh: %w", err)
	}

	r.logger.Info("updated mesh", "mesh_id", mesh.ID)
	return nil
}

func (r *gormMeshRepository) DeleteByID(ctx context.Context, meshID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", meshID).Delete(&models.MeshModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete mesh: %w", err)
	}

	r.logger.Info("deleted mesh", "mesh_id", meshID)
	return nil
}
