//go:build unit
// +build unit

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
	"github.com/MGTheTrain/specfem-web/internal/pkg/forms"
	"github.com/MGTheTrain/specfem-web/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID = "3f0a4c38-1f5e-4c3a-9a53-0d7c4e0e8f11"

type simulationHandlerMocks struct {
	submission *MockSimulationSubmissionService
	metadata   *MockSimulationMetadataService
	export     *MockSimulationExportService
}

func newTestSimulationHandler() (SimulationHandler, *simulationHandlerMocks) {
	mocks := &simulationHandlerMocks{
		submission: new(MockSimulationSubmissionService),
		metadata:   new(MockSimulationMetadataService),
		export:     new(MockSimulationExportService),
	}
	return NewSimulationHandler(mocks.submission, mocks.metadata, mocks.export), mocks
}

func validFormValues(t *testing.T, meshType simulations.MeshType) url.Values {
	t.Helper()

	flat, err := simulations.ValidSubmission(meshType).Values()
	require.NoError(t, err)

	values := url.Values{}
	for key, value := range flat {
		values.Set(key, value)
	}
	return values
}

func TestSimulationHandler_Index_Success(t *testing.T) {
	handler, mocks := newTestSimulationHandler()

	sim := &simulations.Simulation{ID: "sim-123"}
	mocks.metadata.On("List", mock.Anything, testUserID, mock.Anything).Return([]*simulations.Simulation{sim}, nil)
	mocks.submission.On("TypeSelectionForm").Return(simulations.NewTypeSelectionForm())

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	c, w := testutil.NewTestContext(req, testUserID)

	handler.Index(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sim-123")
	assert.Contains(t, w.Body.String(), `"mesh__type":"1"`)
	mocks.metadata.AssertExpectations(t)
}

func TestSimulationHandler_Index_InvalidQuery(t *testing.T) {
	handler, _ := newTestSimulationHandler()

	req, _ := http.NewRequest(http.MethodGet, "/?limit=ten", nil)
	c, w := testutil.NewTestContext(req, testUserID)

	handler.Index(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
}

func TestSimulationHandler_Index_Unauthenticated(t *testing.T) {
	handler, _ := newTestSimulationHandler()

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	c, w := testutil.NewTestContext(req, "")

	handler.Index(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSimulationHandler_Create_UnknownMeshType(t *testing.T) {
	handler, mocks := newTestSimulationHandler()

	for _, meshType := range []string{"3", "", "global"} {
		t.Run(fmt.Sprintf("mesh type %q", meshType), func(t *testing.T) {
			values := url.Values{"mesh__type": {meshType}, "simulation_type": {"1"}, "blank": {""}}
			c, w := testutil.NewTestContext(testutil.NewFormRequest(t, http.MethodPost, "/simulations", values), testUserID)

			handler.Create(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	mocks.submission.AssertNotCalled(t, "BlankForm", mock.Anything, mock.Anything)
	mocks.submission.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSimulationHandler_Create_BlankForm(t *testing.T) {
	handler, mocks := newTestSimulationHandler()

	form, err := simulations.NewBlankForm(simulations.MeshTypeRegional, simulations.SimulationTypeForward)
	require.NoError(t, err)
	mocks.submission.On("BlankForm", simulations.MeshTypeRegional, simulations.SimulationTypeForward).Return(form, nil)

	values := url.Values{"mesh__type": {"2"}, "simulation_type": {"1"}, "blank": {""}}
	c, w := testutil.NewTestContext(testutil.NewFormRequest(t, http.MethodPost, "/simulations", values), testUserID)

	handler.Create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "simulation_form_regional")
	assert.Contains(t, w.Body.String(), `"mesh__nchunks":"1"`)
	mocks.submission.AssertExpectations(t)
}

func TestSimulationHandler_Create_DecodeErrorsEchoed(t *testing.T) {
	handler, mocks := newTestSimulationHandler()

	values := validFormValues(t, simulations.MeshTypeGlobal)
	values.Set("mesh__nchunks", "six")

	mocks.submission.On("EchoForm", simulations.MeshTypeGlobal, mock.MatchedBy(func(v map[string]string) bool {
		return v["mesh__nchunks"] == "six"
	}), mock.MatchedBy(func(errs forms.Errors) bool {
		return len(errs["mesh__nchunks"]) == 1 && errs["mesh__nchunks"][0] == forms.MsgInvalidValue
	})).Return(&simulations.SimulationForm{Values: map[string]string{"mesh__nchunks": "six"}}, nil)

	c, w := testutil.NewTestContext(testutil.NewFormRequest(t, http.MethodPost, "/simulations", values), testUserID)

	handler.Create(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "six")
	mocks.submission.AssertExpectations(t)
	mocks.submission.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSimulationHandler_Create_Success(t *testing.T) {
	handler, mocks := newTestSimulationHandler()

	mocks.submission.On("Submit", mock.Anything, testUserID, simulations.MeshTypeRegional, mock.MatchedBy(func(s *simulations.Submission) bool {
		return s.Simulation.Name == "test-simulation" && s.Mesh.NChunks == 1
	})).Return(&simulations.Simulation{ID: "sim-123"}, nil)

	values := validFormValues(t, simulations.MeshTypeRegional)
	values.Set("absorbing_conditions", "false")
	values.Set("user", "someone-else")

	c, w := testutil.NewTestContext(testutil.NewFormRequest(t, http.MethodPost, "/simulations", values), testUserID)

	handler.Create(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, BasePath+"/", w.Header().Get("Location"))
	mocks.submission.AssertExpectations(t)
}

func TestSimulationHandler_Create_ValidationError(t *testing.T) {
	handler, mocks := newTestSimulationHandler()

	errs := forms.Errors{}
	errs.Add("mesh__nchunks", forms.MsgInvalidChoice)
	mocks.submission.On("Submit", mock.Anything, testUserID, simulations.MeshTypeRegional, mock.Anything).
		Return(nil, forms.NewValidationError(errs))
	mocks.submission.On("EchoForm", simulations.MeshTypeRegional, mock.Anything, errs).
		Return(&simulations.SimulationForm{Errors: errs}, nil)

	values := validFormValues(t, simulations.MeshTypeRegional)
	values.Set("mesh__nchunks", "6")

	c, w := testutil.NewTestContext(testutil.NewFormRequest(t, http.MethodPost, "/simulations", values), testUserID)

	handler.Create(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), forms.MsgInvalidChoice)
	mocks.submission.AssertExpectations(t)
}

func TestSimulationHandler_Create_StorageError(t *testing.T) {
	handler, mocks := newTestSimulationHandler()

	mocks.submission.On("Submit", mock.Anything, testUserID, simulations.MeshTypeGlobal, mock.Anything).
		Return(nil, errors.New("failed to save simulation: disk full"))

	c, w := testutil.NewTestContext(testutil.NewFormRequest(t, http.MethodPost, "/simulations", validFormValues(t, simulations.MeshTypeGlobal)), testUserID)

	handler.Create(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "disk full")
}

func TestSimulationHandler_GetByID(t *testing.T) {
	handler, mocks := newTestSimulationHandler()

	sim := &simulations.Simulation{
		ID:   "sim-123",
		Mesh: &simulations.Mesh{MeshParameters: simulations.DefaultMeshParameters(simulations.MeshTypeGlobal)},
	}
	mocks.metadata.On("GetByID", mock.Anything, testUserID, "sim-123").Return(sim, nil)
	mocks.metadata.On("GetByID", mock.Anything, testUserID, "missing").
		Return(nil, fmt.Errorf("simulation with ID missing: %w", simulations.ErrNotFound))

	req, _ := http.NewRequest(http.MethodGet, "/simulations/sim-123", nil)
	c, w := testutil.NewTestContext(req, testUserID, gin.Param{Key: "id", Value: "sim-123"})
	handler.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"nchunks":1`)

	req, _ = http.NewRequest(http.MethodGet, "/simulations/missing", nil)
	c, w = testutil.NewTestContext(req, testUserID, gin.Param{Key: "id", Value: "missing"})
	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "simulation with id missing not found")
}

func TestSimulationHandler_Update_KeepsMeshType(t *testing.T) {
	handler, mocks := newTestSimulationHandler()

	existing := &simulations.Simulation{
		ID:   "sim-123",
		Mesh: &simulations.Mesh{MeshParameters: simulations.DefaultMeshParameters(simulations.MeshTypeRegional)},
	}
	mocks.metadata.On("GetByID", mock.Anything, testUserID, "sim-123").Return(existing, nil)
	mocks.submission.On("Update", mock.Anything, testUserID, "sim-123", mock.Anything).Return(existing, nil)

	values := validFormValues(t, simulations.MeshTypeRegional)
	c, w := testutil.NewTestContext(testutil.NewFormRequest(t, http.MethodPost, "/simulations/sim-123", values), testUserID,
		gin.Param{Key: "id", Value: "sim-123"})

	handler.Update(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, BasePath+"/simulations/sim-123", w.Header().Get("Location"))
	mocks.submission.AssertExpectations(t)
}

func TestSimulationHandler_DeleteByID(t *testing.T) {
	handler, mocks := newTestSimulationHandler()

	mocks.metadata.On("DeleteByID", mock.Anything, testUserID, "sim-123").Return(nil)

	req, _ := http.NewRequest(http.MethodPost, "/simulations/sim-123/delete", nil)
	c, w := testutil.NewTestContext(req, testUserID, gin.Param{Key: "id", Value: "sim-123"})

	handler.DeleteByID(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, BasePath+"/", w.Header().Get("Location"))
	mocks.metadata.AssertExpectations(t)
}

func TestSimulationHandler_AttachStations(t *testing.T) {
	handler, mocks := newTestSimulationHandler()

	stationID := "0b1c6a2e-5f43-4d0b-8f2e-0c7d1e2f3a4b"
	mocks.metadata.On("AttachStations", mock.Anything, testUserID, "sim-123", []string{stationID}).
		Return(&simulations.Simulation{ID: "sim-123"}, nil)

	c, w := testutil.NewTestContext(testutil.NewFormRequest(t, http.MethodPost, "/simulations/sim-123/stations", url.Values{"id": {stationID}}), testUserID,
		gin.Param{Key: "id", Value: "sim-123"})

	handler.AttachStations(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mocks.metadata.AssertExpectations(t)
}

func TestSimulationHandler_AttachEvents_InvalidIDs(t *testing.T) {
	handler, mocks := newTestSimulationHandler()

	c, w := testutil.NewTestContext(testutil.NewFormRequest(t, http.MethodPost, "/simulations/sim-123/events", url.Values{"id": {"not-a-uuid"}}), testUserID,
		gin.Param{Key: "id", Value: "sim-123"})

	handler.AttachEvents(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mocks.metadata.AssertNotCalled(t, "AttachEvents", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSimulationHandler_ExportParameters(t *testing.T) {
	handler, mocks := newTestSimulationHandler()

	mocks.export.On("Parameters", mock.Anything, testUserID, "sim-123", mock.Anything).Return(nil, "<inventory/>")

	req, _ := http.NewRequest(http.MethodGet, "/simulations/sim-123/parameters.xml", nil)
	c, w := testutil.NewTestContext(req, testUserID, gin.Param{Key: "id", Value: "sim-123"})

	handler.ExportParameters(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/xml; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "<inventory/>", w.Body.String())
}

func TestSimulationHandler_ExportStations_NotFound(t *testing.T) {
	handler, mocks := newTestSimulationHandler()

	mocks.export.On("Stations", mock.Anything, testUserID, "missing", mock.Anything).Return(simulations.ErrNotFound, nil)

	req, _ := http.NewRequest(http.MethodGet, "/simulations/missing/stations.txt", nil)
	c, w := testutil.NewTestContext(req, testUserID, gin.Param{Key: "id", Value: "missing"})

	handler.ExportStations(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
