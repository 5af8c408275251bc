package routes

import (
	coreport "github.com/amirhossein-jamali/timespan-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	durationHandler *handler.DurationHandler,
	spanHandler *handler.SpanHandler,
) {
	// Stateless duration operations
	durationRoutes := router.Group("/duration")
	{
		durationRoutes.POST("/convert", durationHandler.Convert)
		durationRoutes.POST("/decompose", durationHandler.Decompose)
		durationRoutes.POST("/format", durationHandler.Format)
		durationRoutes.POST("/project", durationHandler.Project)
	}

	// Persisted spans
	spanRoutes := router.Group("/spans")
	{
		spanRoutes.POST("", spanHandler.Create)
		spanRoutes.GET("", spanHandler.List)
		spanRoutes.GET("/:id", spanHandler.Get)
		spanRoutes.GET("/:id/render", spanHandler.Render)
		spanRoutes.DELETE("/:id", spanHandler.Delete)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
