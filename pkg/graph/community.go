package graph

import "sort"

// modularity bookkeeping for one community during agglomeration.
type community struct {
	members []string
	minKey  string
	// degreeFrac is this community's share of edge ends (a_i in the
	// modularity formula).
	degreeFrac float64
	// edgeFrac maps a neighboring community to the shared fraction of
	// edges (e_ij).
	edgeFrac map[int]float64
}

// Communities partitions the graph with greedy modularity maximization:
// start from singleton communities and repeatedly apply the merge with the
// largest modularity gain until no merge improves modularity.
//
// Tie-break, chosen here since the algorithm itself does not define one:
// among merges with equal gain, the pair whose community minimum keys sort
// lowest wins. Members are returned sorted; communities are ordered by size
// descending, then by smallest member. The result is recomputed per call
// and fully deterministic for a given graph.
func Communities(g *Graph) [][]string {
	keys := g.Keys()
	sort.Strings(keys)

	m := float64(g.EdgeCount())
	if len(keys) == 0 {
		return nil
	}
	if m == 0 {
		singletons := make([][]string, 0, len(keys))
		for _, key := range keys {
			singletons = append(singletons, []string{key})
		}
		return singletons
	}

	communities := make(map[int]*community, len(keys))
	nodeCommunity := make(map[string]int, len(keys))
	for i, key := range keys {
		communities[i] = &community{
			members:    []string{key},
			minKey:     key,
			degreeFrac: float64(g.Degree(key)) / (2 * m),
			edgeFrac:   make(map[int]float64),
		}
		nodeCommunity[key] = i
	}
	for _, edge := range g.Edges() {
		a := nodeCommunity[edge.A]
		b := nodeCommunity[edge.B]
		communities[a].edgeFrac[b] += 1 / (2 * m)
		communities[b].edgeFrac[a] += 1 / (2 * m)
	}

	const eps = 1e-12
	for len(communities) > 1 {
		bestI, bestJ := -1, -1
		bestGain := 0.0

		for i, ci := range communities {
			for j, frac := range ci.edgeFrac {
				if j <= i {
					continue
				}
				cj := communities[j]
				gain := 2 * (frac - ci.degreeFrac*cj.degreeFrac)
				if gain < bestGain-eps {
					continue
				}
				if gain > bestGain+eps || bestI < 0 ||
					mergeBefore(ci, cj, communities[bestI], communities[bestJ]) {
					bestI, bestJ = i, j
					bestGain = gain
				}
			}
		}

		if bestI < 0 || bestGain <= eps {
			break
		}
		merge(communities, bestI, bestJ)
	}

	result := make([][]string, 0, len(communities))
	for _, c := range communities {
		members := make([]string, len(c.members))
		copy(members, c.members)
		sort.Strings(members)
		result = append(result, members)
	}
	sort.Slice(result, func(i, j int) bool {
		if len(result[i]) != len(result[j]) {
			return len(result[i]) > len(result[j])
		}
		return result[i][0] < result[j][0]
	})
	return result
}

// mergeBefore orders candidate merges for tie-breaking: compare the two
// communities' minimum keys as a sorted pair, lexicographically.
func mergeBefore(a1, a2, b1, b2 *community) bool {
	aLo, aHi := sortedKeys(a1.minKey, a2.minKey)
	bLo, bHi := sortedKeys(b1.minKey, b2.minKey)
	if aLo != bLo {
		return aLo < bLo
	}
	return aHi < bHi
}

func sortedKeys(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

// merge folds community j into community i and rewires the edge fractions.
func merge(communities map[int]*community, i, j int) {
	ci := communities[i]
	cj := communities[j]

	ci.members = append(ci.members, cj.members...)
	if cj.minKey < ci.minKey {
		ci.minKey = cj.minKey
	}
	ci.degreeFrac += cj.degreeFrac

	for k, frac := range cj.edgeFrac {
		if k == i {
			continue
		}
		ci.edgeFrac[k] += frac
		ck := communities[k]
		ck.edgeFrac[i] += frac
		delete(ck.edgeFrac, j)
	}
	delete(ci.edgeFrac, j)
	delete(communities, j)
}
