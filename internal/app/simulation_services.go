package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/specfem-web/internal/domain/seismo"
	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
	"github.com/MGTheTrain/specfem-web/internal/pkg/forms"
	"github.com/MGTheTrain/specfem-web/internal/pkg/logger"
)

// simulationSubmissionService implements the SimulationSubmissionService interface
type simulationSubmissionService struct {
	store  simulations.Store
	logger logger.Logger
}

// NewSimulationSubmissionService creates a new instance of SimulationSubmissionService
func NewSimulationSubmissionService(store simulations.Store, logger logger.Logger) (simulations.SimulationSubmissionService, error) {
	return &simulationSubmissionService{
		store:  store,
		logger: logger,
	}, nil
}

func (s *simulationSubmissionService) TypeSelectionForm() *simulations.TypeSelectionForm {
	return simulations.NewTypeSelectionForm()
}

func (s *simulationSubmissionService) BlankForm(meshType simulations.MeshType, simulationType simulations.SimulationType) (*simulations.SimulationForm, error) {
	return simulations.NewBlankForm(meshType, simulationType)
}

func (s *simulationSubmissionService) EchoForm(meshType simulations.MeshType, values map[string]string, errs forms.Errors) (*simulations.SimulationForm, error) {
	return simulations.NewEchoForm(meshType, values, errs)
}

func (s *simulationSubmissionService) EditForm(ctx context.Context, userID, simID string) (*simulations.SimulationForm, error) {
	sim, err := loadSimulation(ctx, s.store, userID, simID)
	if err != nil {
		return nil, err
	}
	return simulations.NewEditForm(sim)
}

// Submit saves Mesh, then Model, then Simulation inside one transaction,
// handing the generated mesh and model IDs to the simulation.
func (s *simulationSubmissionService) Submit(ctx context.Context, userID string, meshType simulations.MeshType, submission *simulations.Submission) (*simulations.Simulation, error) {
	profile, err := simulations.ProfileFor(meshType)
	if err != nil {
		return nil, err
	}

	submission.Mesh.Type = meshType
	if errs := submission.Validate(); errs.Any() {
		return nil, forms.NewValidationError(errs)
	}

	var sim *simulations.Simulation
	err = s.store.WithinTransaction(ctx, func(tx simulations.Store) error {
		mesh := &simulations.Mesh{UserID: userID, MeshParameters: submission.Mesh}
		if err := tx.Meshes().Create(ctx, mesh); err != nil {
			return err
		}

		model := &simulations.Model{UserID: userID, ModelParameters: submission.Model}
		if err := tx.Models().Create(ctx, model); err != nil {
			return err
		}

		sim = &simulations.Simulation{
			UserID:               userID,
			MeshID:               mesh.ID,
			ModelID:              model.ID,
			AbsorbingConditions:  profile.AbsorbingConditions,
			SimulationParameters: submission.Simulation,
		}
		if err := tx.Simulations().Create(ctx, sim); err != nil {
			return err
		}

		sim.Mesh = mesh
		sim.Model = model
		return nil
	})
	if err != nil {
		s.logger.Error("simulation submission failed", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to save simulation: %w", err)
	}

	s.logger.Info("simulation submitted",
		"simulation_id", sim.ID,
		"mesh_id", sim.MeshID,
		"model_id", sim.ModelID,
		"mesh_type", meshType.String())
	return sim, nil
}

// Update rewrites the Mesh, Model and Simulation rows of simID in that order.
// The mesh type of an existing simulation is fixed.
func (s *simulationSubmissionService) Update(ctx context.Context, userID, simID string, submission *simulations.Submission) (*simulations.Simulation, error) {
	existing, err := loadSimulation(ctx, s.store, userID, simID)
	if err != nil {
		return nil, err
	}
	if existing.Mesh == nil || existing.Model == nil {
		return nil, fmt.Errorf("simulation %s has no mesh or model to update", simID)
	}

	submission.Mesh.Type = existing.Mesh.Type
	if errs := submission.Validate(); errs.Any() {
		return nil, forms.NewValidationError(errs)
	}

	mesh := *existing.Mesh
	mesh.MeshParameters = submission.Mesh
	model := *existing.Model
	model.ModelParameters = submission.Model
	sim := *existing
	sim.SimulationParameters = submission.Simulation
	sim.Mesh = &mesh
	sim.Model = &model

	err = s.store.WithinTransaction(ctx, func(tx simulations.Store) error {
		if err := tx.Meshes().UpdateByID(ctx, &mesh); err != nil {
			return err
		}
		if err := tx.Models().UpdateByID(ctx, &model); err != nil {
			return err
		}
		return tx.Simulations().UpdateByID(ctx, &sim)
	})
	if err != nil {
		s.logger.Error("simulation update failed", "simulation_id", simID, "error", err)
		return nil, fmt.Errorf("failed to update simulation: %w", err)
	}

	s.logger.Info("simulation updated", "simulation_id", simID)
	return &sim, nil
}

// simulationMetadataService implements the SimulationMetadataService interface
type simulationMetadataService struct {
	store       simulations.Store
	eventRepo   seismo.EventRepository
	stationRepo seismo.StationRepository
	logger      logger.Logger
}

// NewSimulationMetadataService creates a new instance of SimulationMetadataService
func NewSimulationMetadataService(
	store simulations.Store,
	eventRepo seismo.EventRepository,
	stationRepo seismo.StationRepository,
	logger logger.Logger,
) (simulations.SimulationMetadataService, error) {
	return &simulationMetadataService{
		store:       store,
		eventRepo:   eventRepo,
		stationRepo: stationRepo,
		logger:      logger,
	}, nil
}

func (s *simulationMetadataService) List(ctx context.Context, userID string, query *simulations.SimulationQuery) ([]*simulations.Simulation, error) {
	list, err := s.store.Simulations().List(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulations: %w", err)
	}
	return list, nil
}

func (s *simulationMetadataService) GetByID(ctx context.Context, userID, simID string) (*simulations.Simulation, error) {
	return loadSimulation(ctx, s.store, userID, simID)
}

// DeleteByID removes the Mesh, then the Model, then the Simulation row
func (s *simulationMetadataService) DeleteByID(ctx context.Context, userID, simID string) error {
	sim, err := ownedSimulation(ctx, s.store, userID, simID)
	if errors.Is(err, simulations.ErrNotFound) {
		s.logger.Info("nothing to delete", "simulation_id", simID)
		return nil
	}
	if err != nil {
		return err
	}

	err = s.store.WithinTransaction(ctx, func(tx simulations.Store) error {
		if sim.MeshID != "" {
			if err := tx.Meshes().DeleteByID(ctx, sim.MeshID); err != nil {
				return err
			}
		}
		if sim.ModelID != "" {
			if err := tx.Models().DeleteByID(ctx, sim.ModelID); err != nil {
				return err
			}
		}
		return tx.Simulations().DeleteByID(ctx, sim.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete simulation %s: %w", simID, err)
	}

	s.logger.Info("simulation deleted", "simulation_id", simID, "mesh_id", sim.MeshID, "model_id", sim.ModelID)
	return nil
}

func (s *simulationMetadataService) AttachEvents(ctx context.Context, userID, simID string, eventIDs []string) (*simulations.Simulation, error) {
	if _, err := ownedSimulation(ctx, s.store, userID, simID); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.GetByIDs(ctx, eventIDs)
	if err != nil {
		return nil, err
	}
	if err := s.store.Simulations().AttachEvents(ctx, simID, events); err != nil {
		return nil, err
	}
	return loadSimulation(ctx, s.store, userID, simID)
}

func (s *simulationMetadataService) AttachStations(ctx context.Context, userID, simID string, stationIDs []string) (*simulations.Simulation, error) {
	if _, err := ownedSimulation(ctx, s.store, userID, simID); err != nil {
		return nil, err
	}

	stations, err := s.stationRepo.GetByIDs(ctx, stationIDs)
	if err != nil {
		return nil, err
	}
	if err := s.store.Simulations().AttachStations(ctx, simID, stations); err != nil {
		return nil, err
	}
	return loadSimulation(ctx, s.store, userID, simID)
}

// ownedSimulation returns the simulation row when it belongs to userID,
// reporting any other owner as not found.
func ownedSimulation(ctx context.Context, store simulations.Store, userID, simID string) (*simulations.Simulation, error) {
	sim, err := store.Simulations().GetByID(ctx, simID)
	if err != nil {
		return nil, err
	}
	if sim.UserID != userID {
		return nil, fmt.Errorf("simulation with ID %s: %w", simID, simulations.ErrNotFound)
	}
	return sim, nil
}

// loadSimulation returns an owned simulation with its mesh and model resolved
func loadSimulation(ctx context.Context, store simulations.Store, userID, simID string) (*simulations.Simulation, error) {
	sim, err := ownedSimulation(ctx, store, userID, simID)
	if err != nil {
		return nil, err
	}

	mesh, err := store.Meshes().GetByID(ctx, sim.MeshID)
	if err != nil && !errors.Is(err, simulations.ErrNotFound) {
		return nil, err
	}
	model, err := store.Models().GetByID(ctx, sim.ModelID)
	if err != nil && !errors.Is(err, simulations.ErrNotFound) {
		return nil, err
	}

	sim.Mesh = mesh
	sim.Model = model
	return sim, nil
}
