package persistence

import (
	"context"

	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
	"github.com/MGTheTrain/specfem-web/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormSimulationStore struct {
	db          *gorm.DB
	logger      logger.Logger
	meshes      simulations.MeshRepository
	models      simulations.ModelRepository
	simulations simulations.SimulationRepository
}

// NewGormSimulationStore creates a Store whose repositories share db
func NewGormSimulationStore(db *gorm.DB, logger logger.Logger) (simulations.Store, error) {
	meshes, err := NewGormMeshRepository(db, logger)
	if err != nil {
		return nil, err
	}
	earthModels, err := NewGormModelRepository(db, logger)
	if err != nil {
		return nil, err
	}
	sims, err := NewGormSimulationRepository(db, logger)
	if err != nil {
		return nil, err
	}

	return &gormSimulationStore{
		db:          db,
		logger:      logger,
		meshes:      meshes,
		models:      earthModels,
		simulations: sims,
	}, nil
}

func (s *gormSimulationStore) Meshes() simulations.MeshRepository {
	return s.meshes
}

func (s *gormSimulationStore) Models() simulations.ModelRepository {
	return s.models
}

func (s *gormSimulationStore) Simulations() simulations.SimulationRepository {
	return s.simulations
}

func (s *gormSimulationStore) WithinTransaction(ctx context.Context, fn func(tx simulations.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txStore, err := NewGormSimulationStore(tx, s.logger)
		if err != nil {
			return err
		}
		return fn(txStore)
	})
}
