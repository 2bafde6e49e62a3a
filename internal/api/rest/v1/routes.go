package v1

import (
	"github.com/MGTheTrain/specfem-web/internal/domain/seismo"
	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
	"github.com/MGTheTrain/specfem-web/internal/domain/users"
	"github.com/MGTheTrain/specfem-web/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	submissionService simulations.SimulationSubmissionService,
	metadataService simulations.SimulationMetadataService,
	exportService simulations.SimulationExportService,
	catalogService seismo.CatalogService,
	accountService users.AccountService,
	sessionTokens users.SessionTokens,
	pages PageRenderer,
	authSettings *config.AuthSettings) {

	v1 := r.Group(BasePath) // lookup in version file

	// Public routes
	infoHandler := NewInfoHandler(pages)
	v1.GET("/info/:topic", infoHandler.Show)

	accountHandler := NewAccountHandler(accountService, pages, authSettings)
	v1.GET("/login", accountHandler.LoginPage)
	v1.POST("/login", accountHandler.Login)
	v1.GET("/logout", accountHandler.Logout)

	optional := v1.Group("", OptionalSession(sessionTokens, authSettings.CookieName))
	optional.GET("/register", accountHandler.RegisterForm)
	optional.POST("/register", accountHandler.Register)

	// Routes requiring a session
	protected := v1.Group("", RequireSession(sessionTokens, authSettings.CookieName))

	simulationHandler := NewSimulationHandler(submissionService, metadataService, exportService)
	protected.GET("/", simulationHandler.Index)
	protected.POST("/simulations", simulationHandler.Create)
	protected.GET("/simulations/:id", simulationHandler.GetByID)
	protected.GET("/simulations/:id/edit", simulationHandler.EditForm)
	protected.POST("/simulations/:id", simulationHandler.Update)
	protected.DELETE("/simulations/:id", simulationHandler.DeleteByID)
	protected.GET("/simulations/:id/delete", simulationHandler.DeleteByID)
	protected.POST("/simulations/:id/delete", simulationHandler.DeleteByID)
	protected.DELETE("/simulations/:id/delete", simulationHandler.DeleteByID)
	protected.POST("/simulations/:id/events", simulationHandler.AttachEvents)
	protected.POST("/simulations/:id/stations", simulationHandler.AttachStations)
	protected.GET("/simulations/:id/parameters.xml", simulationHandler.ExportParameters)
	protected.GET("/simulations/:id/events.txt", simulationHandler.ExportEvents)
	protected.GET("/simulations/:id/stations.txt", simulationHandler.ExportStations)

	catalogHandler := NewCatalogHandler(catalogService)
	protected.GET("/events", catalogHandler.ListEvents)
	protected.POST("/events", catalogHandler.CreateEvent)
	protected.GET("/stations", catalogHandler.ListStations)
	protected.POST("/stations", catalogHandler.CreateStation)
}
