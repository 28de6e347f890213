package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/reviewlab/reviewgraph/pkg/export"
	"github.com/reviewlab/reviewgraph/pkg/graph"
	"github.com/reviewlab/reviewgraph/pkg/loader"
	"github.com/reviewlab/reviewgraph/pkg/logger"
)

// AnalyzeJob is the payload of an analyze_queue message.
//
// Format selects the corpus parser explicitly; the worker never guesses
// from the file name. Zero thresholds keep the engine defaults.
type AnalyzeJob struct {
	InputPath       string `json:"input_path"`
	Format          string `json:"format"`
	OutputDir       string `json:"output_dir"`
	MinFrequency    int    `json:"min_frequency"`
	MinCooccurrence int    `json:"min_cooccurrence"`
}

// ProcessAnalyzeMessage runs one analyze job: load the corpus, run the
// pipeline, write the export files into a fresh run directory.
func ProcessAnalyzeMessage(ctx context.Context, engine *graph.Engine, body string) error {
	var job AnalyzeJob
	if err := json.Unmarshal([]byte(body), &job); err != nil {
		return fmt.Errorf("failed to parse analyze job: %w", err)
	}
	if job.InputPath == "" {
		return fmt.Errorf("analyze job has no input_path")
	}
	if job.OutputDir == "" {
		return fmt.Errorf("analyze job has no output_dir")
	}

	commentLoader, err := loader.ForFormat(loader.Format(job.Format))
	if err != nil {
		return err
	}

	comments, skipped, err := loader.LoadFile(job.InputPath, commentLoader)
	if err != nil {
		return err
	}
	logger.Info("[Queue] Corpus loaded", "path", job.InputPath, "comments", len(comments), "skipped", skipped)

	jobEngine, err := engine.WithThresholds(job.MinFrequency, job.MinCooccurrence)
	if err != nil {
		return err
	}

	analysis, err := jobEngine.Analyze(ctx, comments)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	runDir, err := export.WriteRun(job.OutputDir, analysis)
	if err != nil {
		return err
	}

	stats := analysis.Stats()
	logger.Info(
		"[Queue] Analysis exported",
		"run_dir", runDir,
		"entities", stats.TotalEntities,
		"relations", stats.TotalRelations,
		"nodes", stats.GraphNodes,
		"edges", stats.GraphEdges,
	)

	return nil
}
