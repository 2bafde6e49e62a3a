package v1

import (
	"net/http"

	"github.com/MGTheTrain/specfem-web/internal/domain/seismo"

	"github.com/gin-gonic/gin"
)

// CatalogHandler defines the interface for the event and station catalogue
type CatalogHandler interface {
	ListEvents(ctx *gin.Context)
	CreateEvent(ctx *gin.Context)
	ListStations(ctx *gin.Context)
	CreateStation(ctx *gin.Context)
}

type catalogHandler struct {
	catalogService seismo.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService seismo.CatalogService) CatalogHandler {
	return &catalogHandler{catalogService: catalogService}
}

// ListEvents returns every catalogue event
func (handler *catalogHandler) ListEvents(ctx *gin.Context) {
	events, err := handler.catalogService.ListEvents(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, newErrorResponse("list query failed: %v", err))
		return
	}
	if events == nil {
		events = []*seismo.Event{}
	}
	ctx.JSON(http.StatusOK, events)
}

// CreateEvent adds an event to the catalogue
func (handler *catalogHandler) CreateEvent(ctx *gin.Context) {
	var request EventRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, newErrorResponse("invalid request: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, newErrorResponse("%v", err))
		return
	}

	event, err := handler.catalogService.CreateEvent(ctx, request.ToEvent())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, newErrorResponse("error creating event: %v", err))
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// ListStations returns every catalogue station
func (handler *catalogHandler) ListStations(ctx *gin.Context) {
	stations, err := handler.catalogService.ListStations(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, newErrorResponse("list query failed: %v", err))
		return
	}
	if stations == nil {
		stations = []*seismo.Station{}
	}
	ctx.JSON(http.StatusOK, stations)
}

// CreateStation adds a station to the catalogue
func (handler *catalogHandler) CreateStation(ctx *gin.Context) {
	var request StationRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, newErrorResponse("invalid request: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, newErrorResponse("%v", err))
		return
	}

	station, err := handler.catalogService.CreateStation(ctx, request.ToStation())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, newErrorResponse("error creating station: %v", err))
		return
	}

	ctx.JSON(http.StatusCreated, station)
}
