package graph

import (
	"strings"

	"github.com/reviewlab/reviewgraph/pkg/common"
)

// BuildRelations counts per-comment co-occurrence of entities and returns
// the relation table keyed by canonical entity pair. A pair's weight is the
// number of distinct comments in which both entities occur; a comment
// contributes at most one to each pair no matter how often either entity
// repeats in it. Pairs below the engine's minimum co-occurrence are dropped.
//
// Occurrence is substring containment on the raw comment text, matching the
// extraction corpus semantics: an entity counts even when it appears inside
// a longer word. A comment with k distinct entities yields k*(k-1)/2 pair
// increments.
func (e *Engine) BuildRelations(entities map[string]common.Entity, comments []common.Comment) map[common.Pair]int {
	relations := make(map[common.Pair]int)

	for _, comment := range comments {
		content := comment.Content
		if content == "" {
			continue
		}

		var present []string
		for key := range entities {
			if strings.Contains(content, key) {
				present = append(present, key)
			}
		}

		for i := 0; i < len(present); i++ {
			for j := i + 1; j < len(present); j++ {
				relations[common.NewPair(present[i], present[j])]++
			}
		}
	}

	for pair, weight := range relations {
		if weight < e.minCooccurrence {
			delete(relations, pair)
		}
	}

	return relations
}
