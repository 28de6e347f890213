package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/reviewlab/reviewgraph/pkg/graph"
)

// EntitiesHandler returns the entity table of the current analysis.
func EntitiesHandler(c echo.Context) error {
	analysis, errResponse := currentAnalysis(c)
	if analysis == nil {
		return errResponse
	}
	return c.JSON(http.StatusOK, analysis.Entities)
}

// RecommendationsHandler returns the neighbors of an entity ranked by edge
// weight. top_n defaults to 5.
func RecommendationsHandler(c echo.Context) error {
	analysis, errResponse := currentAnalysis(c)
	if analysis == nil {
		return errResponse
	}

	topN := 0
	if raw := c.QueryParam("top_n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "top_n must be a positive integer"})
		}
		topN = parsed
	}

	recommendations, err := graph.Recommend(analysis.Graph, c.Param("key"), topN)
	if err != nil {
		if errors.Is(err, graph.ErrEntityNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.String(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, recommendations)
}
