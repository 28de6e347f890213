package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reviewlab/reviewgraph/internal/server/middleware"
	"github.com/reviewlab/reviewgraph/pkg/common"
	"github.com/reviewlab/reviewgraph/pkg/graph"
	"github.com/reviewlab/reviewgraph/pkg/logger"
)

type analyzeRequest struct {
	Comments        []commentPayload `json:"comments" validate:"required,min=1"`
	MinFrequency    int              `json:"min_frequency"`
	MinCooccurrence int              `json:"min_cooccurrence"`
}

type commentPayload struct {
	Content string `json:"content"`
}

// AnalyzeHandler runs the pipeline over the posted corpus and publishes the
// result as the current analysis. Comments without content are skipped,
// matching the loader semantics.
func AnalyzeHandler(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	app := c.(*middleware.AppContext).App

	engine, err := app.Engine.WithThresholds(req.MinFrequency, req.MinCooccurrence)
	if err != nil {
		var configErr *graph.ConfigError
		if errors.As(err, &configErr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": configErr.Error()})
		}
		return c.String(http.StatusInternalServerError, err.Error())
	}

	comments := make([]common.Comment, 0, len(req.Comments))
	for _, payload := range req.Comments {
		comments = append(comments, common.Comment{Content: payload.Content})
	}

	analysis, err := engine.Analyze(c.Request().Context(), comments)
	if err != nil {
		logger.Error("[Server] Analysis failed", "err", err)
		return c.String(http.StatusInternalServerError, err.Error())
	}

	app.SetAnalysis(analysis)

	return c.JSON(http.StatusOK, analysis.Stats())
}
