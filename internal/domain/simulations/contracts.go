package simulations

import (
	"context"
	"io"

	"github.com/MGTheTrain/specfem-web/internal/domain/seismo"
	"github.com/MGTheTrain/specfem-web/internal/pkg/forms"
)

// MeshRepository defines the interface for Mesh-related operations
type MeshRepository interface {
	// Create assigns an ID when empty and adds the Mesh to the database
	Create(ctx context.Context, mesh *Mesh) error
	GetByID(ctx context.Context, meshID string) (*Mesh, error)
	UpdateByID(ctx context.Context, mesh *Mesh) error
	DeleteByID(ctx context.Context, meshID string) error
}

// ModelRepository defines the interface for Model-related operations
type ModelRepository interface {
	// Create assigns an ID when empty and adds the Model to the database
	Create(ctx context.Context, model *Model) error
	GetByID(ctx context.Context, modelID string) (*Model, error)
	UpdateByID(ctx context.Context, model *Model) error
	DeleteByID(ctx context.Context, modelID string) error
}

// SimulationRepository defines the interface for Simulation-related operations
type SimulationRepository interface {
	// Create assigns an ID when empty and adds the Simulation to the database
	Create(ctx context.Context, sim *Simulation) error
	// List returns the simulations owned by userID
	List(ctx context.Context, userID string, query *SimulationQuery) ([]*Simulation, error)
	// GetByID returns the Simulation with its events and stations, wrapping ErrNotFound
	GetByID(ctx context.Context, simID string) (*Simulation, error)
	UpdateByID(ctx context.Context, sim *Simulation) error
	DeleteByID(ctx context.Context, simID string) error
	AttachEvents(ctx context.Context, simID string, events []*seismo.Event) error
	AttachStations(ctx context.Context, simID string, stations []*seismo.Station) error
}

// Store groups the repositories so a save sequence can share one transaction
type Store interface {
	Meshes() MeshRepository
	Models() ModelRepository
	Simulations() SimulationRepository
	// WithinTransaction runs fn against a Store bound to a single transaction.
	// The transaction is rolled back when fn returns an error.
	WithinTransaction(ctx context.Context, fn func(tx Store) error) error
}

// SimulationSubmissionService builds simulation forms and saves submissions
type SimulationSubmissionService interface {
	// TypeSelectionForm returns the start page form.
	TypeSelectionForm() *TypeSelectionForm

	// BlankForm returns a form with default values for the given types.
	BlankForm(meshType MeshType, simulationType SimulationType) (*SimulationForm, error)

	// EchoForm returns a form repeating the submitted values with their errors.
	EchoForm(meshType MeshType, values map[string]string, errs forms.Errors) (*SimulationForm, error)

	// EditForm returns a form prefilled from a simulation owned by userID.
	EditForm(ctx context.Context, userID, simID string) (*SimulationForm, error)

	// Submit validates the submission and saves Mesh, Model and Simulation in that order.
	// Field failures are returned as *forms.ValidationError.
	Submit(ctx context.Context, userID string, meshType MeshType, submission *Submission) (*Simulation, error)

	// Update changes the Mesh, Model and Simulation of an existing simulation in that order.
	Update(ctx context.Context, userID, simID string, submission *Submission) (*Simulation, error)
}

// SimulationMetadataService lists, reads and deletes simulations on behalf of a user
type SimulationMetadataService interface {
	List(ctx context.Context, userID string, query *SimulationQuery) ([]*Simulation, error)

	// GetByID returns the simulation with mesh and model resolved, wrapping ErrNotFound
	// when it does not exist or belongs to another user.
	GetByID(ctx context.Context, userID, simID string) (*Simulation, error)

	// DeleteByID deletes the Mesh, then the Model, then the Simulation.
	// A missing simulation is not an error.
	DeleteByID(ctx context.Context, userID, simID string) error

	AttachEvents(ctx context.Context, userID, simID string, eventIDs []string) (*Simulation, error)
	AttachStations(ctx context.Context, userID, simID string, stationIDs []string) (*Simulation, error)
}

// SimulationExportService renders the solver input files of a simulation
type SimulationExportService interface {
	Parameters(ctx context.Context, userID, simID string, w io.Writer) error
	Events(ctx context.Context, userID, simID string, w io.Writer) error
	Stations(ctx context.Context, userID, simID string, w io.Writer) error
}

// ReportRenderer writes the export documents
type ReportRenderer interface {
	RenderParameters(w io.Writer, sim *Simulation) error
	RenderEvents(w io.Writer, events []*seismo.Event) error
	RenderStations(w io.Writer, stations []*seismo.Station) error
}
