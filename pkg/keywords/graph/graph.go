package graph

import (
	"bytes"
	"encoding/json"
	"sort"

	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Pair is an unordered pair of terms stored in canonical order (A < B).
type Pair struct {
	A, B string
}

// NewPair returns the canonical pair for two terms.
func NewPair(a, b string) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Graph is an undirected, unweighted co-occurrence graph over terms.
// Nodes keep first-appearance order; edges keep first-insertion order.
type Graph struct {
	g      *simple.UndirectedGraph
	ids    map[string]int64
	labels []string
	edges  []Pair
	seen   map[Pair]struct{}
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		g:    simple.NewUndirectedGraph(),
		ids:  make(map[string]int64),
		seen: make(map[Pair]struct{}),
	}
}

// FromSentences builds the co-occurrence graph of sentence-grouped terms.
// Every term becomes a node and every pair of distinct terms sharing a
// sentence is joined by one edge.
func FromSentences(sentences [][]string) *Graph {
	g := New()
	for _, terms := range sentences {
		for _, t := range terms {
			g.AddNode(t)
		}
		for i := 0; i < len(terms); i++ {
			for j := i + 1; j < len(terms); j++ {
				g.Connect(terms[i], terms[j])
			}
		}
	}
	return g
}

// AddNode adds a term if it is not present yet and returns its node ID.
func (g *Graph) AddNode(term string) int64 {
	if id, ok := g.ids[term]; ok {
		return id
	}
	id := int64(len(g.labels))
	g.g.AddNode(simple.Node(id))
	g.ids[term] = id
	g.labels = append(g.labels, term)
	return id
}

// Connect joins two terms. Self loops are ignored and repeated edges collapse.
func (g *Graph) Connect(a, b string) {
	if a == b {
		return
	}
	pair := NewPair(a, b)
	if _, ok := g.seen[pair]; ok {
		return
	}
	x, y := g.AddNode(a), g.AddNode(b)
	g.g.SetEdge(g.g.NewEdge(simple.Node(x), simple.Node(y)))
	g.seen[pair] = struct{}{}
	g.edges = append(g.edges, pair)
}

// Nodes returns the terms in first-appearance order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)
	return out
}

// Edges returns the edges in insertion order.
func (g *Graph) Edges() []Pair {
	out := make([]Pair, len(g.edges))
	copy(out, g.edges)
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.labels)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// HasEdge reports whether two terms are adjacent.
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.seen[NewPair(a, b)]
	return ok
}

// Degree returns the number of neighbours of a term, or 0 if absent.
func (g *Graph) Degree(term string) int {
	id, ok := g.ids[term]
	if !ok {
		return 0
	}
	return len(g.neighborIDs(id))
}

// neighborIDs returns the adjacent node IDs in ascending order.
func (g *Graph) neighborIDs(id int64) []int64 {
	nodes := gonum.NodesOf(g.g.From(id))
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MarshalJSON encodes the graph as {"nodes": [...], "edges": [[a, b], ...]}.
func (g *Graph) MarshalJSON() ([]byte, error) {
	edges := make([][2]string, len(g.edges))
	for i, e := range g.edges {
		edges[i] = [2]string{e.A, e.B}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(struct {
		Nodes []string    `json:"nodes"`
		Edges [][2]string `json:"edges"`
	}{Nodes: g.Nodes(), Edges: edges})
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
