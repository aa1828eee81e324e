// File: pmc.go
// Role: the potential-maximal-clique oracle.
//
// A vertex set S is a potential maximal clique (PMC) of G if S is a
// maximal clique in some minimal triangulation of G. Bouchitté and
// Todinca characterized PMCs locally: with C₁,…,Cₖ the components of
// G[V∖S],
//
//	(P1) no component Cᵢ has N(Cᵢ) = S, and
//	(P2) every non-edge {u,v} of S is "completable": some Cᵢ sees both
//	     u and v.
//
// Both tests reduce to the primitives in subgraph.go.
package bitgraph

import "github.com/katalvlaran/treedec/bitset"

// IsPotentialMaximalClique reports whether S is a maximal clique in some
// minimal triangulation of G, using the Bouchitté–Todinca local
// characterization. S is never modified.
//
// Degenerate inputs follow the reference behavior: S = ∅ and S = V are
// answered true without running either test; callers are expected to
// avoid those inputs.
//
// Complexity: O(n²/64 · (k + |S|²)) for k components, dominated by the
// non-edge sweep.
func (g *Graph) IsPotentialMaximalClique(s *bitset.Set) bool {
	cardinality := s.Count()
	if cardinality == 0 || cardinality == g.n {
		return true // degenerate: vacuously a PMC
	}
	components := g.Separate(s)

	// P1: a component whose exterior border has |S| vertices has exterior
	// border exactly S (N(C) ⊆ S holds for every component of G[V∖S]),
	// which disqualifies S.
	for _, c := range components {
		if g.ExteriorBorder(c).Count() == cardinality {
			return false
		}
	}

	// P2: every non-edge {v,w} inside S must be completable through a
	// single component touching both endpoints.
	for v := s.NextSet(0); v >= 0; v = s.NextSet(v + 1) {
		for w := s.NextSet(v + 1); w >= 0; w = s.NextSet(w + 1) {
			if g.rows[v].Test(w) {
				continue // edge, nothing to complete
			}
			if !g.completable(components, v, w) {
				return false
			}
		}
	}
	return true
}

// completable reports whether some component touches the neighborhoods of
// both v and w.
func (g *Graph) completable(components []*bitset.Set, v, w int) bool {
	for _, c := range components {
		if c.Intersects(g.rows[v]) && c.Intersects(g.rows[w]) {
			return true
		}
	}
	return false
}
