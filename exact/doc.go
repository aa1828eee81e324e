// Package exact computes exact treewidth by dynamic programming over
// elimination prefixes, using the bitgraph engine for all subgraph work.
//
// The recurrence is the classic one (Bodlaender, Fomin, Koster, Kratsch,
// Thilikos — "On exact algorithms for treewidth"): with S the set of
// already-eliminated vertices,
//
//	opt(S) = min over v ∉ S of max( fillDegree(S,v), opt(S ∪ {v}) )
//
// where fillDegree(S,v) is the degree v would have when eliminated after
// S in the fill graph — computed without building any fill edges, as
// |N(C)| for C the connected component of G[S ∪ {v}] containing v. The
// treewidth of G is opt(∅).
//
// Subsets are bitsets, so a subset is its own memo key; the memo table
// keeps one entry and one best-choice vertex per explored subset, and a
// greedy upper bound (elim.Greedy) prunes every branch that cannot beat
// it. When the bound is already optimal the greedy decomposition is
// returned unchanged.
//
// Running time and memory are exponential in the vertex count — that is
// the nature of exact treewidth. MaxVertices (default 32) guards against
// accidental huge inputs with ErrTooLarge; WithContext wires cancellation
// into the recursion for longer runs.
//
// Entry points:
//
//	Treewidth(g, opts…)  — the number alone
//	Order(g, opts…)      — an optimal elimination order
//	Decompose(g, opts…)  — an optimal-width td.Decomposition
package exact
