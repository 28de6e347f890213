// Package export writes analysis results in the documented JSON schema:
// entities.json, relations.json and graph_statistics.json.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/reviewlab/reviewgraph/pkg/graph"
)

const (
	entitiesFile  = "entities.json"
	relationsFile = "relations.json"
	statsFile     = "graph_statistics.json"
)

// WriteAnalysis writes the three schema files into dir, creating it if
// needed.
func WriteAnalysis(dir string, analysis *graph.Analysis) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := writeJSON(filepath.Join(dir, entitiesFile), analysis.Entities); err != nil {
		return err
	}

	relations := make(map[string]int, len(analysis.Relations))
	for pair, weight := range analysis.Relations {
		relations[pair.Key()] = weight
	}
	if err := writeJSON(filepath.Join(dir, relationsFile), relations); err != nil {
		return err
	}

	return writeJSON(filepath.Join(dir, statsFile), analysis.Stats())
}

// WriteRun writes the analysis into a fresh run directory under baseDir and
// returns the directory path. Run directories are nanoid-named so parallel
// workers never collide.
func WriteRun(baseDir string, analysis *graph.Analysis) (string, error) {
	runID, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("failed to generate run ID: %w", err)
	}

	dir := filepath.Join(baseDir, runID)
	if err := WriteAnalysis(dir, analysis); err != nil {
		return "", err
	}
	return dir, nil
}

func writeJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
