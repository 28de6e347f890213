package graph

import "sort"

// Metrics holds the structural measurements of a graph.
//
// AvgPathLength is present only when the graph is connected and has at
// least two nodes; averaging shortest paths across disconnected components
// is undefined here and deliberately not approximated.
type Metrics struct {
	NodeCount             int                `json:"node_count"`
	EdgeCount             int                `json:"edge_count"`
	Density               float64            `json:"density"`
	IsConnected           bool               `json:"is_connected"`
	AvgPathLength         *float64           `json:"avg_path_length,omitempty"`
	Components            int                `json:"components"`
	LargestComponent      int                `json:"largest_component"`
	DegreeCentrality      map[string]float64 `json:"degree_centrality"`
	ClusteringCoefficient float64            `json:"clustering_coefficient"`
}

// Density returns 2E/(N(N-1)) for a simple undirected graph, 0 when the
// graph has fewer than two nodes.
func Density(g *Graph) float64 {
	n := g.NodeCount()
	if n < 2 {
		return 0
	}
	return 2 * float64(g.EdgeCount()) / (float64(n) * float64(n-1))
}

// ComputeMetrics measures the graph. An empty graph yields a zero-valued
// Metrics with an empty centrality map, not an error.
func ComputeMetrics(g *Graph) Metrics {
	m := Metrics{
		NodeCount:        g.NodeCount(),
		EdgeCount:        g.EdgeCount(),
		Density:          Density(g),
		DegreeCentrality: make(map[string]float64),
	}
	if m.NodeCount == 0 {
		return m
	}

	components := connectedComponents(g)
	m.Components = len(components)
	for _, component := range components {
		if len(component) > m.LargestComponent {
			m.LargestComponent = len(component)
		}
	}
	m.IsConnected = len(components) == 1

	if m.IsConnected && m.NodeCount > 1 {
		avg := averagePathLength(g)
		m.AvgPathLength = &avg
	}

	for _, key := range g.Keys() {
		m.DegreeCentrality[key] = degreeCentrality(g, key)
	}

	m.ClusteringCoefficient = averageClustering(g)

	return m
}

func degreeCentrality(g *Graph, key string) float64 {
	n := g.NodeCount()
	if n < 2 {
		return 0
	}
	return float64(g.Degree(key)) / float64(n-1)
}

// bfsDistances returns the unweighted shortest-path distance from start to
// every reachable node.
func bfsDistances(g *Graph, start string) map[string]int {
	distances := map[string]int{start: 0}
	queue := []string{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, neighbor := range g.Neighbors(current) {
			if _, seen := distances[neighbor]; seen {
				continue
			}
			distances[neighbor] = distances[current] + 1
			queue = append(queue, neighbor)
		}
	}
	return distances
}

func connectedComponents(g *Graph) [][]string {
	var components [][]string
	visited := make(map[string]bool)

	for _, key := range g.Keys() {
		if visited[key] {
			continue
		}
		distances := bfsDistances(g, key)
		component := make([]string, 0, len(distances))
		for node := range distances {
			visited[node] = true
			component = append(component, node)
		}
		sort.Strings(component)
		components = append(components, component)
	}
	return components
}

// averagePathLength averages the shortest-path length over all unordered
// node pairs. The caller guarantees the graph is connected with N > 1.
func averagePathLength(g *Graph) float64 {
	total := 0
	pairs := 0

	keys := g.Keys()
	for _, key := range keys {
		for node, d := range bfsDistances(g, key) {
			if node == key {
				continue
			}
			total += d
			pairs++
		}
	}
	// Each pair was counted from both ends.
	return float64(total) / float64(pairs)
}

// averageClustering averages the local clustering coefficient over all
// nodes: the fraction of a node's neighbor pairs that are themselves
// connected. Nodes with fewer than two neighbors contribute 0.
func averageClustering(g *Graph) float64 {
	n := g.NodeCount()
	if n == 0 {
		return 0
	}

	total := 0.0
	for _, key := range g.Keys() {
		neighbors := g.Neighbors(key)
		k := len(neighbors)
		if k < 2 {
			continue
		}

		links := 0
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if g.EdgeBetween(neighbors[i], neighbors[j]) != nil {
					links++
				}
			}
		}
		total += 2 * float64(links) / (float64(k) * float64(k-1))
	}
	return total / float64(n)
}

// CentralNode pairs a node key with its degree centrality.
type CentralNode struct {
	Key        string  `json:"key"`
	Centrality float64 `json:"centrality"`
}

// TopCentral returns the n most central nodes by normalized degree,
// ties broken lexicographically. n <= 0 or n beyond the node count returns
// all nodes.
func TopCentral(g *Graph, n int) []CentralNode {
	ranked := make([]CentralNode, 0, g.NodeCount())
	for _, key := range g.Keys() {
		ranked = append(ranked, CentralNode{Key: key, Centrality: degreeCentrality(g, key)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Centrality != ranked[j].Centrality {
			return ranked[i].Centrality > ranked[j].Centrality
		}
		return ranked[i].Key < ranked[j].Key
	})
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Limit returns the subgraph induced by the n most central nodes, keeping
// node and edge attributes. It is used to cap graphs before hand-off to a
// renderer. n <= 0 or n >= NodeCount returns the graph unchanged.
func Limit(g *Graph, n int) *Graph {
	if n <= 0 || n >= g.NodeCount() {
		return g
	}

	keep := make(map[string]bool, n)
	for _, central := range TopCentral(g, n) {
		keep[central.Key] = true
	}

	sub := NewGraph()
	for _, node := range g.Nodes() {
		if keep[node.Key] {
			sub.AddNode(*node)
		}
	}
	for _, edge := range g.Edges() {
		if keep[edge.A] && keep[edge.B] {
			sub.AddEdge(edge.A, edge.B, edge.Weight, edge.Width)
		}
	}
	return sub
}
