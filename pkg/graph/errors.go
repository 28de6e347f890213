package graph

import (
	"errors"
	"fmt"
)

// ErrEntityNotFound is returned when an operation references an entity key
// that is not a node of the graph.
var ErrEntityNotFound = errors.New("entity not found in graph")

// ConfigError reports an engine parameter that is out of its valid range.
type ConfigError struct {
	Param  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid engine config %s: %s", e.Param, e.Reason)
}
