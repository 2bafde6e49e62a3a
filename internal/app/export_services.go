package app

import (
	"context"
	"io"

	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
	"github.com/MGTheTrain/specfem-web/internal/pkg/logger"
)

// simulationExportService implements the SimulationExportService interface
type simulationExportService struct {
	store    simulations.Store
	renderer simulations.ReportRenderer
	logger   logger.Logger
}

// NewSimulationExportService creates a new instance of SimulationExportService
func NewSimulationExportService(store simulations.Store, renderer simulations.ReportRenderer, logger logger.Logger) (simulations.SimulationExportService, error) {
	return &simulationExportService{
		store:    store,
		renderer: renderer,
		logger:   logger,
	}, nil
}

func (s *simulationExportService) Parameters(ctx context.Context, userID, simID string, w io.Writer) error {
	sim, err := loadSimulation(ctx, s.store, userID, simID)
	if err != nil {
		return err
	}
	return s.renderer.RenderParameters(w, sim)
}

func (s *simulationExportService) Events(ctx context.Context, userID, simID string, w io.Writer) error {
	sim, err := ownedSimulation(ctx, s.store, userID, simID)
	if err != nil {
		return err
	}
	return s.renderer.RenderEvents(w, sim.Events)
}

func (s *simulationExportService) Stations(ctx context.Context, userID, simID string, w io.Writer) error {
	sim, err := ownedSimulation(ctx, s.store, userID, simID)
	if err != nil {
		return err
	}
	return s.renderer.RenderStations(w, sim.Stations)
}
