package graph

import (
	"fmt"
	"sort"
)

const defaultTopN = 5

// Recommendation is one ranked neighbor of an entity.
type Recommendation struct {
	Key    string `json:"key"`
	Weight int    `json:"weight"`
}

// Recommend ranks the neighbors of entityKey by edge weight descending and
// returns the top n. The sort is stable, so equal weights keep edge
// discovery order. n <= 0 falls back to 5.
//
// An entityKey that is not a node returns ErrEntityNotFound; a node without
// neighbors returns an empty slice and no error.
func Recommend(g *Graph, entityKey string, n int) ([]Recommendation, error) {
	if !g.HasNode(entityKey) {
		return nil, fmt.Errorf("%w: %q", ErrEntityNotFound, entityKey)
	}
	if n <= 0 {
		n = defaultTopN
	}

	neighbors := g.Neighbors(entityKey)
	recommendations := make([]Recommendation, 0, len(neighbors))
	for _, neighbor := range neighbors {
		recommendations = append(recommendations, Recommendation{
			Key:    neighbor,
			Weight: g.EdgeBetween(entityKey, neighbor).Weight,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Weight > recommendations[j].Weight
	})

	if n < len(recommendations) {
		recommendations = recommendations[:n]
	}
	return recommendations, nil
}
