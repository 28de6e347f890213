package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reviewlab/reviewgraph/internal/server/middleware"
	"github.com/reviewlab/reviewgraph/pkg/graph"
)

func currentAnalysis(c echo.Context) (*graph.Analysis, error) {
	analysis := c.(*middleware.AppContext).App.Analysis()
	if analysis == nil {
		return nil, c.JSON(http.StatusNotFound, map[string]string{"error": "no analysis available, POST /api/analyze first"})
	}
	return analysis, nil
}

// GraphStatsHandler returns the summary statistics of the current analysis.
func GraphStatsHandler(c echo.Context) error {
	analysis, errResponse := currentAnalysis(c)
	if analysis == nil {
		return errResponse
	}
	return c.JSON(http.StatusOK, analysis.Stats())
}

// GraphMetricsHandler returns the structural metrics of the current graph.
func GraphMetricsHandler(c echo.Context) error {
	analysis, errResponse := currentAnalysis(c)
	if analysis == nil {
		return errResponse
	}
	return c.JSON(http.StatusOK, graph.ComputeMetrics(analysis.Graph))
}

// GraphCommunitiesHandler returns the greedy-modularity communities of the
// current graph. Communities are recomputed on every request.
func GraphCommunitiesHandler(c echo.Context) error {
	analysis, errResponse := currentAnalysis(c)
	if analysis == nil {
		return errResponse
	}
	communities := graph.Communities(analysis.Graph)
	return c.JSON(http.StatusOK, map[string]any{
		"count":       len(communities),
		"communities": communities,
	})
}
