// File: validate.go
// Role: checks a Decomposition against the graph it claims to decompose —
// tree shape plus the three decomposition conditions.
package td

import (
	"fmt"

	"github.com/katalvlaran/treedec/core"
)

// Validate checks that d is a tree decomposition of g.
//
// Four checks run in order and the first failure is returned:
//
//  1. tree shape: the bag graph is a single tree (|edges| = B−1, connected),
//  2. vertex coverage: every vertex of g is in some bag (ErrVertexNotCovered),
//  3. edge coverage: every edge of g is inside some bag (ErrEdgeNotCovered),
//  4. connectivity: for each vertex the bags holding it span a connected
//     subtree (ErrBagsDisconnected).
//
// An empty decomposition is valid only for the empty graph.
//
// Complexity: O(B·S + V·B + E·B) for B bags of size ≤ S.
func (d *Decomposition) Validate(g *core.Graph) error {
	if len(d.bags) == 0 {
		if g.VertexCount() > 0 {
			return fmt.Errorf("%w: no bags for a non-empty graph", ErrVertexNotCovered)
		}
		return nil
	}

	if err := d.validateTree(); err != nil {
		return err
	}

	// membership[v] = bag indices containing v
	membership := make(map[string][]int)
	for i, bag := range d.bags {
		for _, v := range bag {
			membership[v] = append(membership[v], i)
		}
	}

	// condition 1: vertex coverage
	for _, v := range g.Vertices() {
		if len(membership[v]) == 0 {
			return fmt.Errorf("%w: %q", ErrVertexNotCovered, v)
		}
	}

	// condition 2: edge coverage
	for _, u := range g.Vertices() {
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return err
		}
		for _, v := range nbrs {
			if u > v {
				continue // each undirected edge checked once
			}
			if !d.coveredTogether(membership[u], membership[v]) {
				return fmt.Errorf("%w: {%q,%q}", ErrEdgeNotCovered, u, v)
			}
		}
	}

	// condition 3: per-vertex connected subtree
	for v, bags := range membership {
		if !d.connectedWithin(bags) {
			return fmt.Errorf("%w: %q", ErrBagsDisconnected, v)
		}
	}
	return nil
}

// validateTree checks that the bag graph is one tree: exactly B−1 edges
// and all bags reachable from bag 0.
func (d *Decomposition) validateTree() error {
	edges := 0
	for _, nbrs := range d.adj {
		edges += len(nbrs)
	}
	edges /= 2
	if edges != len(d.bags)-1 {
		return fmt.Errorf("%w: %d bags, %d tree edges", ErrNotATree, len(d.bags), edges)
	}
	if d.reachableFrom(0, nil) != len(d.bags) {
		return fmt.Errorf("%w: bag graph is disconnected", ErrNotATree)
	}
	return nil
}

// coveredTogether reports whether some bag index appears in both sorted-
// insertion lists.
func (d *Decomposition) coveredTogether(a, b []int) bool {
	in := make(map[int]struct{}, len(a))
	for _, i := range a {
		in[i] = struct{}{}
	}
	for _, j := range b {
		if _, ok := in[j]; ok {
			return true
		}
	}
	return false
}

// connectedWithin reports whether the given bag indices induce a connected
// subgraph of the tree.
func (d *Decomposition) connectedWithin(bags []int) bool {
	if len(bags) <= 1 {
		return true
	}
	allowed := make(map[int]struct{}, len(bags))
	for _, i := range bags {
		allowed[i] = struct{}{}
	}
	return d.reachableFrom(bags[0], allowed) == len(bags)
}

// reachableFrom counts bags reachable from start by breadth-first search.
// With a non-nil allowed set the walk is restricted to those bags.
func (d *Decomposition) reachableFrom(start int, allowed map[int]struct{}) int {
	visited := map[int]struct{}{start: {}}
	queue := []int{start}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		for j := range d.adj[i] {
			if allowed != nil {
				if _, ok := allowed[j]; !ok {
					continue
				}
			}
			if _, ok := visited[j]; ok {
				continue
			}
			visited[j] = struct{}{}
			queue = append(queue, j)
		}
	}
	return len(visited)
}
