//go:build unit
// +build unit

package v1

import (
	"context"
	"io"

	"github.com/MGTheTrain/specfem-web/internal/domain/seismo"
	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
	"github.com/MGTheTrain/specfem-web/internal/domain/users"
	"github.com/MGTheTrain/specfem-web/internal/infrastructure/rendering"
	"github.com/MGTheTrain/specfem-web/internal/pkg/forms"

	"github.com/stretchr/testify/mock"
)

// MockSimulationSubmissionService is a mock implementation of SimulationSubmissionService
type MockSimulationSubmissionService struct {
	mock.Mock
}

func (m *MockSimulationSubmissionService) TypeSelectionForm() *simulations.TypeSelectionForm {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*simulations.TypeSelectionForm)
}

func (m *MockSimulationSubmissionService) BlankForm(meshType simulations.MeshType, simulationType simulations.SimulationType) (*simulations.SimulationForm, error) {
	args := m.Called(meshType, simulationType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*simulations.SimulationForm), args.Error(1)
}

func (m *MockSimulationSubmissionService) EchoForm(meshType simulations.MeshType, values map[string]string, errs forms.Errors) (*simulations.SimulationForm, error) {
	args := m.Called(meshType, values, errs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*simulations.SimulationForm), args.Error(1)
}

func (m *MockSimulationSubmissionService) EditForm(ctx context.Context, userID, simID string) (*simulations.SimulationForm, error) {
	args := m.Called(ctx, userID, simID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*simulations.SimulationForm), args.Error(1)
}

func (m *MockSimulationSubmissionService) Submit(ctx context.Context, userID string, meshType simulations.MeshType, submission *simulations.Submission) (*simulations.Simulation, error) {
	args := m.Called(ctx, userID, meshType, submission)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*simulations.Simulation), args.Error(1)
}

func (m *MockSimulationSubmissionService) Update(ctx context.Context, userID, simID string, submission *simulations.Submission) (*simulations.Simulation, error) {
	args := m.Called(ctx, userID, simID, submission)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*simulations.Simulation), args.Error(1)
}

// MockSimulationMetadataService is a mock implementation of SimulationMetadataService
type MockSimulationMetadataService struct {
	mock.Mock
}

func (m *MockSimulationMetadataService) List(ctx context.Context, userID string, query *simulations.SimulationQuery) ([]*simulations.Simulation, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*simulations.Simulation), args.Error(1)
}

func (m *MockSimulationMetadataService) GetByID(ctx context.Context, userID, simID string) (*simulations.Simulation, error) {
	args := m.Called(ctx, userID, simID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*simulations.Simulation), args.Error(1)
}

func (m *MockSimulationMetadataService) DeleteByID(ctx context.Context, userID, simID string) error {
	args := m.Called(ctx, userID, simID)
	return args.Error(0)
}

func (m *MockSimulationMetadataService) AttachEvents(ctx context.Context, userID, simID string, eventIDs []string) (*simulations.Simulation, error) {
	args := m.Called(ctx, userID, simID, eventIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*simulations.Simulation), args.Error(1)
}

func (m *MockSimulationMetadataService) AttachStations(ctx context.Context, userID, simID string, stationIDs []string) (*simulations.Simulation, error) {
	args := m.Called(ctx, userID, simID, stationIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*simulations.Simulation), args.Error(1)
}

// MockSimulationExportService is a mock implementation of SimulationExportService.
// The second return value of a call, when a string, is written to w.
type MockSimulationExportService struct {
	mock.Mock
}

func (m *MockSimulationExportService) write(args mock.Arguments, w io.Writer) error {
	if body, ok := args.Get(1).(string); ok {
		if _, err := io.WriteString(w, body); err != nil {
			return err
		}
	}
	return args.Error(0)
}

func (m *MockSimulationExportService) Parameters(ctx context.Context, userID, simID string, w io.Writer) error {
	return m.write(m.Called(ctx, userID, simID, w), w)
}

func (m *MockSimulationExportService) Events(ctx context.Context, userID, simID string, w io.Writer) error {
	return m.write(m.Called(ctx, userID, simID, w), w)
}

func (m *MockSimulationExportService) Stations(ctx context.Context, userID, simID string, w io.Writer) error {
	return m.write(m.Called(ctx, userID, simID, w), w)
}

// MockCatalogService is a mock implementation of CatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) CreateEvent(ctx context.Context, event *seismo.Event) (*seismo.Event, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*seismo.Event), args.Error(1)
}

func (m *MockCatalogService) ListEvents(ctx context.Context) ([]*seismo.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*seismo.Event), args.Error(1)
}

func (m *MockCatalogService) CreateStation(ctx context.Context, station *seismo.Station) (*seismo.Station, error) {
	args := m.Called(ctx, station)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*seismo.Station), args.Error(1)
}

func (m *MockCatalogService) ListStations(ctx context.Context) ([]*seismo.Station, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*seismo.Station), args.Error(1)
}

func (m *MockCatalogService) ImportStations(ctx context.Context, r io.Reader) ([]*seismo.Station, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*seismo.Station), args.Error(1)
}

// MockAccountService is a mock implementation of AccountService
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, registration *users.Registration) (*users.User, *users.UserInfo, error) {
	args := m.Called(ctx, registration)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*users.User), args.Get(1).(*users.UserInfo), args.Error(2)
}

func (m *MockAccountService) Authenticate(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAccountService) Profile(ctx context.Context, userID string) (*users.UserInfo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.UserInfo), args.Error(1)
}

func (m *MockAccountService) UpdateProfile(ctx context.Context, userID string, profile *users.ProfileParameters) (*users.UserInfo, error) {
	args := m.Called(ctx, userID, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.UserInfo), args.Error(1)
}

// MockSessionTokens is a mock implementation of SessionTokens
type MockSessionTokens struct {
	mock.Mock
}

func (m *MockSessionTokens) Issue(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionTokens) Verify(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

// MockPageRenderer is a mock implementation of PageRenderer
type MockPageRenderer struct {
	mock.Mock
}

func (m *MockPageRenderer) RenderInfo(w io.Writer, topic string) error {
	args := m.Called(w, topic)
	return args.Error(0)
}

func (m *MockPageRenderer) RenderLogin(w io.Writer, page *rendering.LoginPage) error {
	args := m.Called(w, page)
	return args.Error(0)
}
