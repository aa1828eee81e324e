// File: subgraph.go
// Role: set-algebraic primitives on subsets S ⊆ V — borders, saturation,
// absorbable-vertex search, and component separation of G[V∖S].
//
// Every function here is a pure query over the frozen matrix; only
// Saturate and SaturateClosure mutate their (caller-owned) argument.
package bitgraph

import "github.com/katalvlaran/treedec/bitset"

// InteriorBorder returns ∂S = { v ∈ S : N(v) ∩ (V∖S) ≠ ∅ }, the vertices
// of S that see the outside.
//
// Complexity: O(|S| · n/64)
func (g *Graph) InteriorBorder(s *bitset.Set) *bitset.Set {
	border := bitset.New(g.n)
	outside := s.Clone()
	outside.Complement()
	for v := s.NextSet(0); v >= 0; v = s.NextSet(v + 1) {
		if g.rows[v].Intersects(outside) {
			border.Set(v)
		}
	}
	return border
}

// ExteriorBorder returns N(S) = { v ∈ V∖S : N(v) ∩ S ≠ ∅ }, the
// neighborhood of S outside S.
//
// Complexity: O(|S| · n/64)
func (g *Graph) ExteriorBorder(s *bitset.Set) *bitset.Set {
	border := bitset.New(g.n)
	outside := s.Clone()
	outside.Complement()
	for v := s.NextSet(0); v >= 0; v = s.NextSet(v + 1) {
		if g.rows[v].Intersects(outside) {
			border.Or(g.rows[v])
		}
	}
	border.AndNot(s)
	return border
}

// Saturate adds to S, in place, every vertex v ∈ N(S) whose neighborhood
// is contained in S ∪ N(S).
//
// N(S) is computed once at entry and not recomputed after inclusions, so
// a vertex that only becomes eligible through another inclusion is not
// added by this call. That single-pass behavior is part of the contract;
// use SaturateClosure for the fixed point.
//
// Complexity: O(|S| · n/64 + |N(S)| · n/64)
func (g *Graph) Saturate(s *bitset.Set) {
	neighbors := g.ExteriorBorder(s)
	union := s.Clone()
	union.Or(neighbors)
	tmp := bitset.New(g.n)
	for v := neighbors.NextSet(0); v >= 0; v = neighbors.NextSet(v + 1) {
		tmp.CopyFrom(g.rows[v])
		tmp.AndNot(union)
		if tmp.None() {
			s.Set(v)
		}
	}
}

// SaturateClosure iterates Saturate until S stops growing, yielding the
// closure of S under the "all neighbors inside S ∪ N(S)" rule. The result
// is deterministic: the closure is a function of (G, S).
//
// Complexity: O(n) Saturate passes worst case.
func (g *Graph) SaturateClosure(s *bitset.Set) {
	for {
		before := s.Count()
		g.Saturate(s)
		if s.Count() == before {
			return
		}
	}
}

// Absorbable returns some vertex v ∈ N(S) whose neighborhood lies in
// S ∪ N(S), or -1 if none exists. The contract is existential; this
// implementation returns the lowest-indexed candidate.
//
// Complexity: O(|S| · n/64 + |N(S)| · n/64)
func (g *Graph) Absorbable(s *bitset.Set) int {
	neighbors := g.ExteriorBorder(s)
	outside := s.Clone()
	outside.Or(neighbors)
	outside.Complement()
	for v := neighbors.NextSet(0); v >= 0; v = neighbors.NextSet(v + 1) {
		if !g.rows[v].Intersects(outside) {
			return v
		}
	}
	return -1
}

// Separate returns the connected components of G[V∖S] as bitsets; S
// itself appears in none of them, and Separate(∅) yields the components
// of G. Components come out ordered by their smallest vertex.
//
// The walk is an iterative depth-first search over adjacency rows with an
// explicit integer stack, so deep graphs cannot overflow the goroutine
// stack.
//
// Complexity: O(n² / 64)
func (g *Graph) Separate(s *bitset.Set) []*bitset.Set {
	components := make([]*bitset.Set, 0, 4)
	visited := s.Clone()

	stack := make([]int, 0, 16)
	for start := 0; start < g.n; start++ {
		if visited.Test(start) {
			continue // inside S or an earlier component
		}
		component := bitset.New(g.n)
		component.Set(start)
		visited.Set(start)
		stack = append(stack, start)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for w := g.rows[v].NextSet(0); w >= 0; w = g.rows[v].NextSet(w + 1) {
				if visited.Test(w) {
					continue
				}
				component.Set(w)
				visited.Set(w)
				stack = append(stack, w)
			}
		}
		components = append(components, component)
	}
	return components
}
