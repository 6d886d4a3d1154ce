package graph

import "math"

// PageRankOptions controls the power iteration.
type PageRankOptions struct {
	Damping       float64
	MaxIterations int
	Tolerance     float64
}

// DefaultPageRank holds the usual constants: damping 0.85, at most 100
// iterations, tolerance 1e-6 per node.
var DefaultPageRank = PageRankOptions{
	Damping:       0.85,
	MaxIterations: 100,
	Tolerance:     1e-6,
}

// Rank is the centrality of one node.
type Rank struct {
	Term  string
	Score float64
}

// PageRank computes node centrality by power iteration from a uniform start.
// Nodes without edges hand their mass back uniformly, so every node, isolated
// or not, receives a score and the scores sum to 1. The result is in node
// order. Iteration stops once the L1 change drops below N*Tolerance or the
// iteration cap is hit; the last iterate is returned either way.
func (g *Graph) PageRank(opts PageRankOptions) []Rank {
	n := len(g.labels)
	if n == 0 {
		return []Rank{}
	}
	if opts.Damping <= 0 || opts.Damping >= 1 {
		opts.Damping = DefaultPageRank.Damping
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultPageRank.MaxIterations
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultPageRank.Tolerance
	}

	adj := make([][]int64, n)
	for id := range adj {
		adj[id] = g.neighborIDs(int64(id))
	}

	size := float64(n)
	x := make([]float64, n)
	for i := range x {
		x[i] = 1 / size
	}

	d := opts.Damping
	for iter := 0; iter < opts.MaxIterations; iter++ {
		last := x
		x = make([]float64, n)

		dangling := 0.0
		for i, nbrs := range adj {
			if len(nbrs) == 0 {
				dangling += last[i]
			}
		}
		dangling *= d

		for i, nbrs := range adj {
			if len(nbrs) == 0 {
				continue
			}
			share := d * last[i] / float64(len(nbrs))
			for _, j := range nbrs {
				x[j] += share
			}
		}

		delta := 0.0
		for i := range x {
			x[i] += dangling/size + (1-d)/size
			delta += math.Abs(x[i] - last[i])
		}
		if delta < size*opts.Tolerance {
			break
		}
	}

	out := make([]Rank, n)
	for i, term := range g.labels {
		out[i] = Rank{Term: term, Score: x[i]}
	}
	return out
}
