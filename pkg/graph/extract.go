package graph

import (
	"context"
	"strings"

	"github.com/reviewlab/reviewgraph/pkg/common"
	"github.com/reviewlab/reviewgraph/pkg/logger"
	"github.com/reviewlab/reviewgraph/pkg/tagger"

	"golang.org/x/sync/errgroup"
)

// ExtractEntities scans the corpus and returns the entity table: surface
// text mapped to type, occurrence frequency and up to five sample contexts.
// Entities below the engine's minimum frequency are dropped.
//
// Tagging runs in parallel across comments, but accumulation follows corpus
// order, so context discovery order is deterministic for a given corpus.
// A comment whose tagger call fails contributes no entities; the run
// continues.
func (e *Engine) ExtractEntities(ctx context.Context, comments []common.Comment) (map[string]common.Entity, error) {
	tagged, err := e.tagComments(ctx, comments)
	if err != nil {
		return nil, err
	}

	entities := make(map[string]common.Entity)

	for i, comment := range comments {
		content := comment.Content
		if content == "" || tagged[i] == nil {
			continue
		}

		for _, token := range tagged[i] {
			word := strings.TrimSpace(token.Token)
			if !e.classifier.Accepts(word) {
				continue
			}

			entityType, ok := e.classifier.Classify(word, token.POS)
			if !ok {
				continue
			}

			entity, exists := entities[word]
			if !exists {
				entity = common.Entity{Type: entityType}
			}
			entity.Frequency++

			if len(entity.Contexts) < maxContextsPerEntity {
				if window := contextWindow(content, word); window != "" {
					entity.Contexts = append(entity.Contexts, window)
				}
			}

			entities[word] = entity
		}
	}

	for key, entity := range entities {
		if entity.Frequency < e.minFrequency {
			delete(entities, key)
		}
	}

	return entities, nil
}

// tagComments fans the tagger out over the corpus with bounded parallelism.
// Results are indexed by comment position; a failed comment stays nil.
func (e *Engine) tagComments(ctx context.Context, comments []common.Comment) ([][]tagger.TaggedToken, error) {
	tagged := make([][]tagger.TaggedToken, len(comments))

	eg, gCtx := errgroup.WithContext(ctx)
	eg.SetLimit(e.tagParallelism)

	for i, comment := range comments {
		if comment.Content == "" {
			continue
		}
		i, comment := i, comment
		eg.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			tokens, err := e.tagger.Tag(gCtx, comment.Content)
			if err != nil {
				logger.Debug("[Graph] Tagger failed for comment, skipping", "index", i, "err", err)
				return nil
			}
			tagged[i] = tokens
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return tagged, nil
}

// contextWindow returns the comment text around the first occurrence of
// word, padded by contextWindowRunes runes on each side. It returns "" when
// the word does not occur literally in the content (the tagger may
// normalize tokens).
func contextWindow(content, word string) string {
	byteIdx := strings.Index(content, word)
	if byteIdx < 0 {
		return ""
	}

	runes := []rune(content)
	start := len([]rune(content[:byteIdx]))
	end := start + len([]rune(word))

	from := max(0, start-contextWindowRunes)
	to := min(len(runes), end+contextWindowRunes)

	return string(runes[from:to])
}
