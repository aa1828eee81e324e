// Package bitgraph stores a core.Graph as a bit-adjacency matrix and
// exposes the subgraph primitives exact treewidth solvers consume.
//
// This file declares the Graph type, its constructor, and the label
// translation surface (vertex index).
package bitgraph

import (
	"github.com/katalvlaran/treedec/bitset"
	"github.com/katalvlaran/treedec/core"
)

// Graph is the frozen bit-adjacency form of a core.Graph.
//
// It owns a bijection between vertex labels and [0,n) plus one bitset row
// per vertex. All fields are written once in New and never mutated, so a
// Graph may be shared freely across goroutines.
type Graph struct {
	// src is the original label graph, kept read-only for translation.
	src *core.Graph

	// n is the number of vertices.
	n int

	// idx maps a vertex label to its dense index in [0,n).
	idx map[string]int

	// labels maps a dense index back to its vertex label.
	labels []string

	// rows[i] is the i-th row of the adjacency matrix: bit j is set iff
	// {i,j} is an edge. Symmetric and loop-free.
	rows []*bitset.Set
}

// New freezes g into its bit-adjacency form.
//
// Indices 0…n-1 follow g.Vertices() order (sorted lexicographically), so
// the same graph always yields the same engine. Neighborhoods are OR-ed
// from both endpoints, which symmetrizes any asymmetry in the input.
//
// Complexity: O(V² / 64 + E)
func New(g *core.Graph) *Graph {
	vertices := g.Vertices()
	n := len(vertices)

	bg := &Graph{
		src:    g,
		n:      n,
		idx:    make(map[string]int, n),
		labels: vertices,
		rows:   make([]*bitset.Set, n),
	}
	for i, v := range vertices {
		bg.idx[v] = i
		bg.rows[i] = bitset.New(n)
	}
	for i, v := range vertices {
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			continue // vertex vanished between Vertices and NeighborIDs; skip
		}
		for _, w := range nbrs {
			j := bg.idx[w]
			bg.rows[i].Set(j)
			bg.rows[j].Set(i)
		}
	}
	return bg
}

// N returns the number of vertices.
//
// Complexity: O(1)
func (g *Graph) N() int { return g.n }

// Source returns the original label graph the engine was built from.
//
// Complexity: O(1)
func (g *Graph) Source() *core.Graph { return g.src }

// Row returns the adjacency row of vertex v: bit j is set iff {v,j} is an
// edge. The returned set is a live view into the engine; callers must not
// mutate it.
//
// Complexity: O(1)
func (g *Graph) Row(v int) *bitset.Set { return g.rows[v] }

// IndexOf returns the dense index of the given label, or -1 for a label
// the engine does not know.
//
// Complexity: O(1)
func (g *Graph) IndexOf(label string) int {
	if i, ok := g.idx[label]; ok {
		return i
	}
	return -1
}

// LabelOf returns the label of the given dense index, or the empty string
// for an index outside [0,n).
//
// Complexity: O(1)
func (g *Graph) LabelOf(i int) string {
	if i < 0 || i >= g.n {
		return ""
	}
	return g.labels[i]
}

// BitsetOf translates a set of labels into a subset bitset.
// Labels the engine does not know are ignored.
//
// Complexity: O(|labels|)
func (g *Graph) BitsetOf(labels []string) *bitset.Set {
	s := bitset.New(g.n)
	for _, label := range labels {
		if i, ok := g.idx[label]; ok {
			s.Set(i)
		}
	}
	return s
}

// LabelsOf translates a subset bitset back into vertex labels, in
// increasing index order (which is sorted label order by construction).
//
// Complexity: O(n/64 + |S|)
func (g *Graph) LabelsOf(s *bitset.Set) []string {
	out := make([]string, 0, s.Count())
	s.ForEach(func(i int) { out = append(out, g.labels[i]) })
	return out
}

// All returns a fresh bitset with all n vertices set.
//
// Complexity: O(n/64)
func (g *Graph) All() *bitset.Set {
	s := bitset.New(g.n)
	s.Complement()
	return s
}
