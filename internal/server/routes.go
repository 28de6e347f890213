package server

import (
	"github.com/labstack/echo/v4"

	"github.com/reviewlab/reviewgraph/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Analysis routes
	apiRoutes.POST("/analyze", routes.AnalyzeHandler)

	// Graph routes
	apiRoutes.GET("/graph/stats", routes.GraphStatsHandler)
	apiRoutes.GET("/graph/metrics", routes.GraphMetricsHandler)
	apiRoutes.GET("/graph/communities", routes.GraphCommunitiesHandler)

	// Entity routes
	apiRoutes.GET("/entities", routes.EntitiesHandler)
	apiRoutes.GET("/entities/:key/recommendations", routes.RecommendationsHandler)
}
