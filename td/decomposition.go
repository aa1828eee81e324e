// Package td implements the tree decomposition value type.
//
// This file declares the Decomposition struct, sentinel errors, and the
// bag/tree construction and query surface. Validation lives in
// validate.go.
package td

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for decomposition construction and validation.
var (
	// ErrBagIndex indicates a bag index outside [0, NumBags).
	ErrBagIndex = errors.New("td: bag index out of range")

	// ErrTreeEdgeLoop indicates a tree edge from a bag to itself.
	ErrTreeEdgeLoop = errors.New("td: tree edge endpoints must differ")

	// ErrNotATree indicates the tree edges do not form a single tree.
	ErrNotATree = errors.New("td: bags are not connected as a tree")

	// ErrVertexNotCovered indicates a graph vertex missing from every bag.
	ErrVertexNotCovered = errors.New("td: vertex not covered by any bag")

	// ErrEdgeNotCovered indicates a graph edge with no bag holding both endpoints.
	ErrEdgeNotCovered = errors.New("td: edge not covered by any bag")

	// ErrBagsDisconnected indicates the bags of some vertex do not form a
	// connected subtree.
	ErrBagsDisconnected = errors.New("td: bags of a vertex form a disconnected subtree")
)

// Decomposition is a tree of bags over vertex labels.
//
// Bags are addressed by dense indices 0…NumBags()−1 in insertion order.
// The tree structure is held as an undirected adjacency set over bag
// indices.
type Decomposition struct {
	// bags[i] holds the sorted, deduplicated vertex labels of bag i.
	bags [][]string

	// adj[i] is the set of bag indices adjacent to bag i in the tree.
	adj []map[int]struct{}
}

// New returns an empty decomposition.
//
// Complexity: O(1)
func New() *Decomposition {
	return &Decomposition{}
}

// AddBag appends a bag with the given vertices and returns its index.
// The vertex list is copied, deduplicated, and sorted; an empty bag is
// legal (it arises for edgeless graphs).
//
// Complexity: O(|bag| · log |bag|)
func (d *Decomposition) AddBag(vertices []string) int {
	seen := make(map[string]struct{}, len(vertices))
	bag := make([]string, 0, len(vertices))
	for _, v := range vertices {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		bag = append(bag, v)
	}
	sort.Strings(bag)

	d.bags = append(d.bags, bag)
	d.adj = append(d.adj, make(map[int]struct{}))
	return len(d.bags) - 1
}

// AddTreeEdge connects bags i and j in the tree.
// Returns ErrBagIndex for out-of-range indices and ErrTreeEdgeLoop for
// i == j. Re-adding an existing tree edge is a no-op.
//
// Complexity: O(1)
func (d *Decomposition) AddTreeEdge(i, j int) error {
	if i < 0 || i >= len(d.bags) || j < 0 || j >= len(d.bags) {
		return fmt.Errorf("%w: (%d,%d) with %d bags", ErrBagIndex, i, j, len(d.bags))
	}
	if i == j {
		return fmt.Errorf("%w: %d", ErrTreeEdgeLoop, i)
	}
	d.adj[i][j] = struct{}{}
	d.adj[j][i] = struct{}{}
	return nil
}

// NumBags returns the number of bags.
//
// Complexity: O(1)
func (d *Decomposition) NumBags() int { return len(d.bags) }

// Bag returns a copy of the sorted vertex labels of bag i.
// Returns ErrBagIndex for an out-of-range index.
//
// Complexity: O(|bag|)
func (d *Decomposition) Bag(i int) ([]string, error) {
	if i < 0 || i >= len(d.bags) {
		return nil, fmt.Errorf("%w: %d with %d bags", ErrBagIndex, i, len(d.bags))
	}
	out := make([]string, len(d.bags[i]))
	copy(out, d.bags[i])
	return out, nil
}

// TreeEdges returns every tree edge once, as index pairs (i,j) with i<j,
// sorted lexicographically.
//
// Complexity: O(B·log B) for B bags
func (d *Decomposition) TreeEdges() [][2]int {
	var out [][2]int
	for i, nbrs := range d.adj {
		for j := range nbrs {
			if i < j {
				out = append(out, [2]int{i, j})
			}
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a][0] != out[b][0] {
			return out[a][0] < out[b][0]
		}
		return out[a][1] < out[b][1]
	})
	return out
}

// Width returns max|bag|−1, or −1 for a decomposition with no bags.
//
// Complexity: O(B)
func (d *Decomposition) Width() int {
	w := -1
	for _, bag := range d.bags {
		if len(bag)-1 > w {
			w = len(bag) - 1
		}
	}
	return w
}
