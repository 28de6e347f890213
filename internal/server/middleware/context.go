package middleware

import (
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/reviewlab/reviewgraph/pkg/graph"
)

// AppState holds the engine and the most recent analysis. The analysis is
// replaced wholesale on each successful run; readers always see a complete
// result or none.
type AppState struct {
	Engine *graph.Engine

	mu       sync.RWMutex
	analysis *graph.Analysis
}

// SetAnalysis publishes a completed analysis.
func (s *AppState) SetAnalysis(analysis *graph.Analysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analysis = analysis
}

// Analysis returns the current analysis, or nil when none has run yet.
func (s *AppState) Analysis() *graph.Analysis {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.analysis
}

// AppContext wraps the echo context with the shared application state.
type AppContext struct {
	echo.Context
	App *AppState
}

// AppContextMiddleware injects the shared state into every request context.
func AppContextMiddleware(state *AppState) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return next(&AppContext{Context: c, App: state})
		}
	}
}
