package graph

import (
	"sort"

	"github.com/reviewlab/reviewgraph/pkg/common"
)

// Node is a graph node: one surviving entity plus its derived display size.
type Node struct {
	Key       string            `json:"key"`
	Type      common.EntityType `json:"type"`
	Frequency int               `json:"frequency"`
	Size      float64           `json:"size"`
}

// Edge is an undirected weighted edge between two nodes. A and B are in
// canonical (sorted) order.
type Edge struct {
	A      string  `json:"a"`
	B      string  `json:"b"`
	Weight int     `json:"weight"`
	Width  float64 `json:"width"`
}

// Graph is a simple undirected weighted graph over entity keys. It records
// node and edge insertion order so that iteration and weight ties are
// reproducible.
//
// Graph is a read-only analysis view once assembled: it never adds entities
// of its own.
type Graph struct {
	nodes     map[string]*Node
	nodeOrder []string
	edges     []*Edge
	adjacency map[string]map[string]*Edge
	neighbors map[string][]string
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		adjacency: make(map[string]map[string]*Edge),
		neighbors: make(map[string][]string),
	}
}

// AddNode inserts a node. Re-adding an existing key is a no-op.
func (g *Graph) AddNode(node Node) {
	if _, exists := g.nodes[node.Key]; exists {
		return
	}
	g.nodes[node.Key] = &node
	g.nodeOrder = append(g.nodeOrder, node.Key)
	g.adjacency[node.Key] = make(map[string]*Edge)
}

// AddEdge inserts an undirected edge. Self-loops, parallel edges and edges
// with a missing endpoint are rejected; the return value reports whether
// the edge was added.
func (g *Graph) AddEdge(a, b string, weight int, width float64) bool {
	if a == b {
		return false
	}
	if !g.HasNode(a) || !g.HasNode(b) {
		return false
	}
	if _, exists := g.adjacency[a][b]; exists {
		return false
	}

	pair := common.NewPair(a, b)
	edge := &Edge{A: pair.A, B: pair.B, Weight: weight, Width: width}
	g.edges = append(g.edges, edge)
	g.adjacency[a][b] = edge
	g.adjacency[b][a] = edge
	g.neighbors[a] = append(g.neighbors[a], b)
	g.neighbors[b] = append(g.neighbors[b], a)
	return true
}

// HasNode reports whether key is a node.
func (g *Graph) HasNode(key string) bool {
	_, ok := g.nodes[key]
	return ok
}

// Node returns the node for key, or nil.
func (g *Graph) Node(key string) *Node {
	return g.nodes[key]
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Keys returns all node keys in insertion order.
func (g *Graph) Keys() []string {
	keys := make([]string, len(g.nodeOrder))
	copy(keys, g.nodeOrder)
	return keys
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodeOrder))
	for _, key := range g.nodeOrder {
		nodes = append(nodes, g.nodes[key])
	}
	return nodes
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge {
	edges := make([]*Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

// Neighbors returns the neighbor keys of key in edge insertion order.
func (g *Graph) Neighbors(key string) []string {
	neighbors := make([]string, len(g.neighbors[key]))
	copy(neighbors, g.neighbors[key])
	return neighbors
}

// EdgeBetween returns the edge connecting a and b, or nil.
func (g *Graph) EdgeBetween(a, b string) *Edge {
	return g.adjacency[a][b]
}

// Degree returns the number of neighbors of key.
func (g *Graph) Degree(key string) int {
	return len(g.neighbors[key])
}

// Assemble builds the graph view from the entity and relation tables.
// Nodes are inserted in sorted key order and edges in sorted pair order, so
// the same tables always assemble into an identical graph.
//
// A relation whose endpoints did not both survive the entity frequency
// filter is silently dropped; relations are built against the corpus, not
// the final table, so this cross-check is mandatory.
func (e *Engine) Assemble(entities map[string]common.Entity, relations map[common.Pair]int) *Graph {
	g := NewGraph()

	keys := make([]string, 0, len(entities))
	for key := range entities {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		entity := entities[key]
		g.AddNode(Node{
			Key:       key,
			Type:      entity.Type,
			Frequency: entity.Frequency,
			Size:      min(float64(entity.Frequency)*e.nodeSizeMultiplier, e.nodeSizeCap),
		})
	}

	pairs := make([]common.Pair, 0, len(relations))
	for pair := range relations {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})

	for _, pair := range pairs {
		weight := relations[pair]
		width := min(float64(weight)*e.edgeWidthMultiplier, e.edgeWidthCap)
		g.AddEdge(pair.A, pair.B, weight, width)
	}

	return g
}
