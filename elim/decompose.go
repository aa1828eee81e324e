// File: decompose.go
// Role: the permutation-to-tree construction — any elimination order of G
// yields a tree decomposition whose width is the order's width.
package elim

import (
	"fmt"

	"github.com/katalvlaran/treedec/core"
	"github.com/katalvlaran/treedec/td"
)

// Decompose builds the tree decomposition induced by the given
// elimination order: bag i is {order[i]} ∪ N(order[i]) in the partially
// filled graph at step i, and bag i hangs off the bag of its
// earliest-eliminated remaining neighbor. Bags of isolated vertices hang
// off the next bag so disconnected inputs still yield a single tree.
//
// The order must be a permutation of g's vertices (ErrOrderMismatch).
// The input graph is never modified.
//
// Complexity: O(V · d²) for max filled degree d.
func Decompose(g *core.Graph, order []string) (*td.Decomposition, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := checkPermutation(g, order); err != nil {
		return nil, err
	}

	position := make(map[string]int, len(order))
	for i, v := range order {
		position[v] = i
	}

	work := g.Clone()
	dec := td.New()
	// parent[i] is the bag index bag i attaches to, or -1 for the last root.
	parent := make([]int, len(order))
	for i, v := range order {
		nbrs, err := work.NeighborIDs(v)
		if err != nil {
			return nil, err
		}

		dec.AddBag(append(nbrs, v))

		// attach toward the earliest-eliminated remaining neighbor; every
		// bag holding v chains forward into that neighbor's bag, which
		// keeps each vertex's bags a connected subtree.
		parent[i] = -1
		for _, u := range nbrs {
			if parent[i] < 0 || position[u] < parent[i] {
				parent[i] = position[u]
			}
		}
		if parent[i] < 0 && i+1 < len(order) {
			parent[i] = i + 1 // isolated at elimination time: chain to the next bag
		}

		if err = eliminate(work, v); err != nil {
			return nil, err
		}
	}

	for i, p := range parent {
		if p < 0 {
			continue
		}
		if err := dec.AddTreeEdge(i, p); err != nil {
			return nil, err
		}
	}
	return dec, nil
}

// checkPermutation verifies that order lists every vertex of g exactly once.
func checkPermutation(g *core.Graph, order []string) error {
	if len(order) != g.VertexCount() {
		return fmt.Errorf("%w: %d entries for %d vertices", ErrOrderMismatch, len(order), g.VertexCount())
	}
	seen := make(map[string]struct{}, len(order))
	for _, v := range order {
		if !g.HasVertex(v) {
			return fmt.Errorf("%w: unknown vertex %q", ErrOrderMismatch, v)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: duplicate vertex %q", ErrOrderMismatch, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}
