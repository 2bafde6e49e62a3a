package v1

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/MGTheTrain/specfem-web/internal/domain/seismo"
	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
	"github.com/MGTheTrain/specfem-web/internal/pkg/forms"
	"github.com/MGTheTrain/specfem-web/internal/pkg/httputil"
	"github.com/MGTheTrain/specfem-web/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// SimulationHandler defines the interface for handling simulation-related operations
type SimulationHandler interface {
	Index(ctx *gin.Context)
	Create(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	EditForm(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	AttachEvents(ctx *gin.Context)
	AttachStations(ctx *gin.Context)
	ExportParameters(ctx *gin.Context)
	ExportEvents(ctx *gin.Context)
	ExportStations(ctx *gin.Context)
}

// simulationHandler struct holds the services
type simulationHandler struct {
	submissionService simulations.SimulationSubmissionService
	metadataService   simulations.SimulationMetadataService
	exportService     simulations.SimulationExportService
}

// NewSimulationHandler creates a new SimulationHandler
func NewSimulationHandler(submissionService simulations.SimulationSubmissionService, metadataService simulations.SimulationMetadataService, exportService simulations.SimulationExportService) SimulationHandler {
	return &simulationHandler{
		submissionService: submissionService,
		metadataService:   metadataService,
		exportService:     exportService,
	}
}

// Index lists the caller's simulations together with a blank type selection form
func (handler *simulationHandler) Index(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	query := simulations.NewSimulationQuery()

	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sort_by"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sort_order"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, newErrorResponse("validation failed: %v", err))
		return
	}

	sims, err := handler.metadataService.List(ctx, userID, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, newErrorResponse("list query failed: %v", err))
		return
	}

	response := IndexResponse{
		Simulations: []SimulationResponse{},
		Form:        handler.submissionService.TypeSelectionForm(),
	}
	for _, sim := range sims {
		response.Simulations = append(response.Simulations, newSimulationResponse(sim))
	}

	ctx.JSON(http.StatusOK, response)
}

// Create answers a type selection with a blank form, or validates and saves
// a complete simulation form.
func (handler *simulationHandler) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	values, err := postedValues(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, newErrorResponse("invalid form data"))
		return
	}

	meshType, err := simulations.ParseMeshType(values[simulations.FieldMeshType])
	if err != nil {
		ctx.JSON(http.StatusBadRequest, newErrorResponse("%v", err))
		return
	}

	if _, blank := values[simulations.FieldBlank]; blank {
		simulationType, err := simulations.ParseSimulationType(values[simulations.FieldSimulationType])
		if err != nil {
			ctx.JSON(http.StatusBadRequest, newErrorResponse("%v", err))
			return
		}

		form, err := handler.submissionService.BlankForm(meshType, simulationType)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, newErrorResponse("could not build form: %v", err))
			return
		}
		ctx.JSON(http.StatusOK, form)
		return
	}

	submission, errs := decodeSubmission(values)
	if errs.Any() {
		submission.Mesh.Type = meshType
		errs.Merge(submission.Validate())
		handler.echo(ctx, meshType, values, errs)
		return
	}

	if _, err := handler.submissionService.Submit(ctx, userID, meshType, submission); err != nil {
		var validationErr *forms.ValidationError
		if errors.As(err, &validationErr) {
			handler.echo(ctx, meshType, values, validationErr.Errors)
			return
		}
		ctx.JSON(http.StatusInternalServerError, newErrorResponse("%v", err))
		return
	}

	ctx.Redirect(http.StatusSeeOther, BasePath+"/")
}

// GetByID fetches a simulation with its mesh, model, events and stations
func (handler *simulationHandler) GetByID(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	simID := ctx.Param("id")

	sim, err := handler.metadataService.GetByID(ctx, userID, simID)
	if err != nil {
		writeLookupError(ctx, simID, err)
		return
	}

	ctx.JSON(http.StatusOK, newSimulationResponse(sim))
}

// EditForm returns the composite form prefilled from an existing simulation
func (handler *simulationHandler) EditForm(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	simID := ctx.Param("id")

	form, err := handler.submissionService.EditForm(ctx, userID, simID)
	if err != nil {
		writeLookupError(ctx, simID, err)
		return
	}

	ctx.JSON(http.StatusOK, form)
}

// Update changes an existing simulation through the composite form
func (handler *simulationHandler) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	simID := ctx.Param("id")

	values, err := postedValues(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, newErrorResponse("invalid form data"))
		return
	}

	existing, err := handler.metadataService.GetByID(ctx, userID, simID)
	if err != nil {
		writeLookupError(ctx, simID, err)
		return
	}
	if existing.Mesh == nil {
		ctx.JSON(http.StatusInternalServerError, newErrorResponse("simulation with id %s has no mesh", simID))
		return
	}
	meshType := existing.Mesh.Type

	submission, errs := decodeSubmission(values)
	if errs.Any() {
		submission.Mesh.Type = meshType
		errs.Merge(submission.Validate())
		handler.echo(ctx, meshType, values, errs)
		return
	}

	if _, err := handler.submissionService.Update(ctx, userID, simID, submission); err != nil {
		var validationErr *forms.ValidationError
		if errors.As(err, &validationErr) {
			handler.echo(ctx, meshType, values, validationErr.Errors)
			return
		}
		writeLookupError(ctx, simID, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, BasePath+"/simulations/"+simID)
}

// DeleteByID deletes the simulation with its mesh and model, then returns to the index
func (handler *simulationHandler) DeleteByID(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	simID := ctx.Param("id")

	if err := handler.metadataService.DeleteByID(ctx, userID, simID); err != nil {
		ctx.JSON(http.StatusInternalServerError, newErrorResponse("could not delete simulation with id %s: %v", simID, err))
		return
	}

	ctx.Redirect(http.StatusSeeOther, BasePath+"/")
}

// AttachEvents links catalogue events to a simulation
func (handler *simulationHandler) AttachEvents(ctx *gin.Context) {
	handler.attach(ctx, handler.metadataService.AttachEvents)
}

// AttachStations links catalogue stations to a simulation
func (handler *simulationHandler) AttachStations(ctx *gin.Context) {
	handler.attach(ctx, handler.metadataService.AttachStations)
}

type attachFunc func(ctx context.Context, userID, simID string, ids []string) (*simulations.Simulation, error)

func (handler *simulationHandler) attach(ctx *gin.Context, attach attachFunc) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	simID := ctx.Param("id")

	var request AttachRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, newErrorResponse("invalid request: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, newErrorResponse("%v", err))
		return
	}

	sim, err := attach(ctx, userID, simID, request.IDs)
	if err != nil {
		writeLookupError(ctx, simID, err)
		return
	}

	ctx.JSON(http.StatusOK, newSimulationResponse(sim))
}

// ExportParameters downloads the solver parameter document
func (handler *simulationHandler) ExportParameters(ctx *gin.Context) {
	handler.export(ctx, "text/xml; charset=utf-8", handler.exportService.Parameters)
}

// ExportEvents downloads the CMTSOLUTION list
func (handler *simulationHandler) ExportEvents(ctx *gin.Context) {
	handler.export(ctx, "text/plain; charset=utf-8", handler.exportService.Events)
}

// ExportStations downloads the STATIONS list
func (handler *simulationHandler) ExportStations(ctx *gin.Context) {
	handler.export(ctx, "text/plain; charset=utf-8", handler.exportService.Stations)
}

type exportFunc func(ctx context.Context, userID, simID string, w io.Writer) error

func (handler *simulationHandler) export(ctx *gin.Context, contentType string, render exportFunc) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	simID := ctx.Param("id")

	var buf bytes.Buffer
	if err := render(ctx, userID, simID, &buf); err != nil {
		writeLookupError(ctx, simID, err)
		return
	}

	ctx.Data(http.StatusOK, contentType, buf.Bytes())
}

// echo re-displays the submitted values with their errors
func (handler *simulationHandler) echo(ctx *gin.Context, meshType simulations.MeshType, values map[string]string, errs forms.Errors) {
	form, err := handler.submissionService.EchoForm(meshType, values, errs)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, newErrorResponse("could not build form: %v", err))
		return
	}
	ctx.JSON(http.StatusUnprocessableEntity, form)
}

// requireUser returns the signed-in user, answering 401 when there is none
func requireUser(ctx *gin.Context) (string, bool) {
	userID, ok := httputil.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, newErrorResponse("authentication required"))
		return "", false
	}
	return userID, true
}

// writeLookupError maps missing records to 404 and anything else to 500
func writeLookupError(ctx *gin.Context, id string, err error) {
	if errors.Is(err, simulations.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, newErrorResponse("simulation with id %s not found", id))
		return
	}
	if errors.Is(err, seismo.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, newErrorResponse("catalogue entry not found: %v", err))
		return
	}
	ctx.JSON(http.StatusInternalServerError, newErrorResponse("%v", err))
}
