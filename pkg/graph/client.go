package graph

import (
	"context"

	"github.com/reviewlab/reviewgraph/pkg/common"
	"github.com/reviewlab/reviewgraph/pkg/logger"
	"github.com/reviewlab/reviewgraph/pkg/tagger"
)

const (
	defaultMinFrequency        = 2
	defaultMinCooccurrence     = 3
	defaultNodeSizeMultiplier  = 100
	defaultNodeSizeCap         = 1000
	defaultEdgeWidthMultiplier = 2
	defaultEdgeWidthCap        = 10
	defaultTagParallelism      = 4
	maxContextsPerEntity       = 5
	contextWindowRunes         = 10
)

// Engine runs the comment-analysis pipeline: entity extraction, relation
// building and graph assembly. An Engine is immutable after construction
// and safe for concurrent use.
//
// An Engine should be created with NewEngine.
type Engine struct {
	classifier *Classifier
	tagger     tagger.Tagger

	minFrequency        int
	minCooccurrence     int
	nodeSizeMultiplier  float64
	nodeSizeCap         float64
	edgeWidthMultiplier float64
	edgeWidthCap        float64
	tagParallelism      int
}

// NewEngineParams defines the configuration for creating an Engine.
//
// Tagger is required; it supplies tokenization and POS tagging for the
// extraction stage. Zero-valued numeric fields fall back to defaults.
// Classifier is optional and defaults to NewClassifier(DefaultClassifierConfig()).
type NewEngineParams struct {
	Tagger     tagger.Tagger
	Classifier *Classifier

	MinFrequency        int
	MinCooccurrence     int
	NodeSizeMultiplier  float64
	NodeSizeCap         float64
	EdgeWidthMultiplier float64
	EdgeWidthCap        float64
	TagParallelism      int
}

// NewEngine creates an Engine from params. It returns a *ConfigError when a
// threshold or multiplier that must be positive is negative, or when no
// tagger is supplied.
func NewEngine(params NewEngineParams) (*Engine, error) {
	if params.Tagger == nil {
		return nil, &ConfigError{Param: "Tagger", Reason: "a tagger is required"}
	}
	if params.MinFrequency < 0 {
		return nil, &ConfigError{Param: "MinFrequency", Reason: "must be positive"}
	}
	if params.MinCooccurrence < 0 {
		return nil, &ConfigError{Param: "MinCooccurrence", Reason: "must be positive"}
	}
	if params.NodeSizeMultiplier < 0 || params.EdgeWidthMultiplier < 0 {
		return nil, &ConfigError{Param: "multiplier", Reason: "must be positive"}
	}

	classifier := params.Classifier
	if classifier == nil {
		classifier = NewClassifier(DefaultClassifierConfig())
	}

	e := &Engine{
		classifier:          classifier,
		tagger:              params.Tagger,
		minFrequency:        params.MinFrequency,
		minCooccurrence:     params.MinCooccurrence,
		nodeSizeMultiplier:  params.NodeSizeMultiplier,
		nodeSizeCap:         params.NodeSizeCap,
		edgeWidthMultiplier: params.EdgeWidthMultiplier,
		edgeWidthCap:        params.EdgeWidthCap,
		tagParallelism:      params.TagParallelism,
	}
	if e.minFrequency == 0 {
		e.minFrequency = defaultMinFrequency
	}
	if e.minCooccurrence == 0 {
		e.minCooccurrence = defaultMinCooccurrence
	}
	if e.nodeSizeMultiplier == 0 {
		e.nodeSizeMultiplier = defaultNodeSizeMultiplier
	}
	if e.nodeSizeCap == 0 {
		e.nodeSizeCap = defaultNodeSizeCap
	}
	if e.edgeWidthMultiplier == 0 {
		e.edgeWidthMultiplier = defaultEdgeWidthMultiplier
	}
	if e.edgeWidthCap == 0 {
		e.edgeWidthCap = defaultEdgeWidthCap
	}
	if e.tagParallelism <= 0 {
		e.tagParallelism = defaultTagParallelism
	}

	return e, nil
}

// WithThresholds returns a copy of the engine with the frequency and
// co-occurrence thresholds replaced. A zero keeps the engine's current
// value; a negative value is a *ConfigError.
func (e *Engine) WithThresholds(minFrequency, minCooccurrence int) (*Engine, error) {
	if minFrequency < 0 {
		return nil, &ConfigError{Param: "MinFrequency", Reason: "must be positive"}
	}
	if minCooccurrence < 0 {
		return nil, &ConfigError{Param: "MinCooccurrence", Reason: "must be positive"}
	}

	clone := *e
	if minFrequency > 0 {
		clone.minFrequency = minFrequency
	}
	if minCooccurrence > 0 {
		clone.minCooccurrence = minCooccurrence
	}
	return &clone, nil
}

// Analysis is the complete output of one pipeline run over a corpus.
type Analysis struct {
	Entities  map[string]common.Entity
	Relations map[common.Pair]int
	Graph     *Graph
}

// Stats summarizes the analysis in the persisted-schema form.
func (a *Analysis) Stats() common.GraphStats {
	stats := common.GraphStats{
		TotalEntities:  len(a.Entities),
		TotalRelations: len(a.Relations),
		EntityTypes:    make(map[common.EntityType]int),
	}
	for _, entity := range a.Entities {
		stats.EntityTypes[entity.Type]++
	}
	if a.Graph != nil {
		stats.GraphNodes = a.Graph.NodeCount()
		stats.GraphEdges = a.Graph.EdgeCount()
		stats.GraphDensity = Density(a.Graph)
	}
	return stats
}

// Analyze runs the full pipeline over the corpus. Each stage consumes the
// previous stage's complete output; nothing is streamed. Malformed comments
// and per-comment tagger failures are skipped, so the only error path is
// context cancellation during extraction.
func (e *Engine) Analyze(ctx context.Context, comments []common.Comment) (*Analysis, error) {
	logger.Info("[Graph] Analyzing corpus", "comments", len(comments))

	entities, err := e.ExtractEntities(ctx, comments)
	if err != nil {
		return nil, err
	}
	logger.Info("[Graph] Entities extracted", "count", len(entities))

	relations := e.BuildRelations(entities, comments)
	logger.Info("[Graph] Relations built", "count", len(relations))

	g := e.Assemble(entities, relations)
	logger.Info("[Graph] Graph assembled", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return &Analysis{
		Entities:  entities,
		Relations: relations,
		Graph:     g,
	}, nil
}
