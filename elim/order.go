// File: order.go
// Role: greedy elimination orders over a working copy of the input graph.
package elim

import (
	"github.com/katalvlaran/treedec/core"
	"github.com/katalvlaran/treedec/td"
)

// Order computes a greedy elimination order of g under the configured
// strategy. The input graph is never modified; elimination (including
// fill edges) runs on a clone. Ties break toward the lexicographically
// smallest label, so the result is deterministic.
//
// Returns ErrGraphNil for a nil graph and ErrOptionViolation for bad
// options; the context error if cancelled mid-run.
//
// Complexity: O(V² · d²) worst case for MinFill, O(V²) for MinDegree.
func Order(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	work := g.Clone()
	order := make([]string, 0, work.VertexCount())
	for work.VertexCount() > 0 {
		// cancellation check (once per elimination step)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		v, err := pick(work, o.Strategy)
		if err != nil {
			return nil, err
		}
		if err = eliminate(work, v); err != nil {
			return nil, err
		}
		order = append(order, v)
	}
	return order, nil
}

// Greedy runs Order and Decompose in one call, returning the induced
// decomposition.
func Greedy(g *core.Graph, opts ...Option) (*td.Decomposition, error) {
	order, err := Order(g, opts...)
	if err != nil {
		return nil, err
	}
	return Decompose(g, order)
}

// pick returns the vertex minimizing the strategy's score, smallest label
// first on ties.
func pick(g *core.Graph, strategy Strategy) (string, error) {
	best := ""
	bestScore := -1
	for _, v := range g.Vertices() { // sorted: first strict improvement wins ties
		s, err := score(g, v, strategy)
		if err != nil {
			return "", err
		}
		if bestScore < 0 || s < bestScore {
			best, bestScore = v, s
		}
	}
	return best, nil
}

// score evaluates one candidate vertex under the strategy.
func score(g *core.Graph, v string, strategy Strategy) (int, error) {
	switch strategy {
	case MinFill:
		return fillCount(g, v)
	default:
		return g.Degree(v)
	}
}

// fillCount counts the neighbor pairs of v that are not yet adjacent —
// the edges eliminating v would add.
func fillCount(g *core.Graph, v string) (int, error) {
	nbrs, err := g.NeighborIDs(v)
	if err != nil {
		return 0, err
	}
	fill := 0
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			if !g.HasEdge(nbrs[i], nbrs[j]) {
				fill++
			}
		}
	}
	return fill, nil
}

// eliminate turns N(v) into a clique and removes v from the working graph.
func eliminate(g *core.Graph, v string) error {
	nbrs, err := g.NeighborIDs(v)
	if err != nil {
		return err
	}
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			if err = g.AddEdge(nbrs[i], nbrs[j]); err != nil {
				return err
			}
		}
	}
	return g.RemoveVertex(v)
}
