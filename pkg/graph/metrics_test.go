package graph

import (
	"math"
	"testing"
)

// buildGraph wires a graph from an edge list, adding nodes as named.
func buildGraph(nodes []string, edges [][2]string) *Graph {
	g := NewGraph()
	for _, node := range nodes {
		g.AddNode(Node{Key: node})
	}
	for _, edge := range edges {
		g.AddEdge(edge[0], edge[1], 1, 1)
	}
	return g
}

func triangle(prefix string) ([]string, [][2]string) {
	a, b, c := prefix+"1", prefix+"2", prefix+"3"
	return []string{a, b, c}, [][2]string{{a, b}, {b, c}, {a, c}}
}

func TestComputeMetricsEmptyGraph(t *testing.T) {
	m := ComputeMetrics(NewGraph())

	if m.NodeCount != 0 || m.EdgeCount != 0 || m.Density != 0 {
		t.Errorf("empty graph metrics = %+v, want zero values", m)
	}
	if m.IsConnected {
		t.Error("empty graph must not report connected")
	}
	if m.AvgPathLength != nil {
		t.Error("empty graph must not report a path length")
	}
	if len(m.DegreeCentrality) != 0 {
		t.Errorf("empty graph centrality = %v, want empty map", m.DegreeCentrality)
	}
}

func TestComputeMetricsSingleNode(t *testing.T) {
	g := buildGraph([]string{"a"}, nil)
	m := ComputeMetrics(g)

	if !m.IsConnected {
		t.Error("single node graph is connected")
	}
	if m.AvgPathLength != nil {
		t.Error("single node graph has no path length")
	}
	if got := m.DegreeCentrality["a"]; got != 0 {
		t.Errorf("centrality of isolated node = %v, want 0", got)
	}
}

func TestComputeMetricsTwoTriangles(t *testing.T) {
	// Two disconnected triangles: 6 nodes, 6 edges, 2 components of 3.
	nodesA, edgesA := triangle("a")
	nodesB, edgesB := triangle("b")
	g := buildGraph(append(nodesA, nodesB...), append(edgesA, edgesB...))

	m := ComputeMetrics(g)

	if m.NodeCount != 6 || m.EdgeCount != 6 {
		t.Fatalf("metrics = %+v, want 6 nodes and 6 edges", m)
	}
	if m.IsConnected {
		t.Error("two triangles must report disconnected")
	}
	if m.Components != 2 {
		t.Errorf("components = %d, want 2", m.Components)
	}
	if m.LargestComponent != 3 {
		t.Errorf("largest component = %d, want 3", m.LargestComponent)
	}
	if m.AvgPathLength != nil {
		t.Error("disconnected graph must omit average path length")
	}
	if m.ClusteringCoefficient != 1 {
		t.Errorf("clustering = %v, want 1 for triangles", m.ClusteringCoefficient)
	}
}

func TestComputeMetricsPathGraph(t *testing.T) {
	// Path a-b-c: distances 1,1,2, average 4/3.
	g := buildGraph([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})

	m := ComputeMetrics(g)

	if !m.IsConnected || m.Components != 1 {
		t.Fatalf("path graph must be one component, got %+v", m)
	}
	if m.AvgPathLength == nil {
		t.Fatal("connected graph must report average path length")
	}
	if math.Abs(*m.AvgPathLength-4.0/3.0) > 1e-9 {
		t.Errorf("avg path length = %v, want 4/3", *m.AvgPathLength)
	}
	if got := m.DegreeCentrality["b"]; got != 1 {
		t.Errorf("centrality of middle node = %v, want 1", got)
	}
	if got := m.DegreeCentrality["a"]; got != 0.5 {
		t.Errorf("centrality of end node = %v, want 0.5", got)
	}
	if m.ClusteringCoefficient != 0 {
		t.Errorf("clustering = %v, want 0 for a path", m.ClusteringCoefficient)
	}
}

func TestDensityBounds(t *testing.T) {
	tests := []struct {
		name  string
		nodes []string
		edges [][2]string
		want  float64
	}{
		{
			name:  "no edges",
			nodes: []string{"a", "b", "c"},
			want:  0,
		},
		{
			name:  "complete pair",
			nodes: []string{"a", "b"},
			edges: [][2]string{{"a", "b"}},
			want:  1,
		},
		{
			name:  "one of three possible edges",
			nodes: []string{"a", "b", "c"},
			edges: [][2]string{{"a", "b"}},
			want:  1.0 / 3.0,
		},
		{
			name:  "single node",
			nodes: []string{"a"},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildGraph(tt.nodes, tt.edges)
			got := Density(g)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Density() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("Density() = %v out of [0, 1]", got)
			}
		})
	}
}

func TestTopCentral(t *testing.T) {
	// Star around hub plus one spare edge tie.
	g := buildGraph(
		[]string{"hub", "a", "b", "c"},
		[][2]string{{"hub", "a"}, {"hub", "b"}, {"hub", "c"}, {"a", "b"}},
	)

	ranked := TopCentral(g, 3)
	if len(ranked) != 3 {
		t.Fatalf("got %d ranked nodes, want 3", len(ranked))
	}
	if ranked[0].Key != "hub" {
		t.Errorf("most central = %q, want hub", ranked[0].Key)
	}
	// a and b tie on degree 2; lexicographic break.
	if ranked[1].Key != "a" || ranked[2].Key != "b" {
		t.Errorf("tie order = %q, %q, want a, b", ranked[1].Key, ranked[2].Key)
	}
}

func TestLimit(t *testing.T) {
	g := buildGraph(
		[]string{"hub", "a", "b", "c"},
		[][2]string{{"hub", "a"}, {"hub", "b"}, {"hub", "c"}, {"a", "b"}},
	)

	sub := Limit(g, 3)
	if sub.NodeCount() != 3 {
		t.Fatalf("subgraph nodes = %d, want 3", sub.NodeCount())
	}
	if !sub.HasNode("hub") || !sub.HasNode("a") || !sub.HasNode("b") {
		t.Errorf("subgraph keys = %v, want hub, a, b", sub.Keys())
	}
	if sub.EdgeBetween("hub", "a") == nil || sub.EdgeBetween("a", "b") == nil {
		t.Error("induced edges between kept nodes must survive")
	}
	if sub.NodeCount() != 3 || sub.EdgeCount() != 3 {
		t.Errorf("subgraph = %d nodes %d edges, want 3 and 3", sub.NodeCount(), sub.EdgeCount())
	}

	if got := Limit(g, 0); got != g {
		t.Error("non-positive limit must return the graph unchanged")
	}
	if got := Limit(g, 10); got != g {
		t.Error("limit beyond node count must return the graph unchanged")
	}
}
