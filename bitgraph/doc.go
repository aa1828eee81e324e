// Package bitgraph implements the bitset-indexed subgraph engine that
// exact treewidth algorithms are built on.
//
// A bitgraph.Graph freezes a core.Graph into an n×n bit-adjacency matrix:
// vertices are mapped onto the dense range [0,n) (in the graph's sorted
// iteration order) and the i-th row is a bitset.Set holding the
// neighborhood of vertex i. Subgraphs are then just bitsets, which makes
// dynamic programming over subgraphs compact and fast: set algebra runs
// word-at-a-time, and a subset doubles as its own hash key.
//
// On top of the matrix the engine offers the set-algebraic primitives of
// the Bouchitté–Todinca world:
//
//   - InteriorBorder(S) — vertices of S with a neighbor outside S.
//   - ExteriorBorder(S) — N(S), vertices outside S with a neighbor in S.
//   - Saturate(S)       — in-place, adds every v ∈ N(S) whose whole
//     neighborhood lies in S ∪ N(S). Single pass over N(S) as computed at
//     entry; SaturateClosure iterates to the fixed point.
//   - Absorbable(S)     — one such v, or -1.
//   - Separate(S)       — the connected components of G[V∖S].
//   - IsPotentialMaximalClique(S) — the local PMC characterization.
//
// Immutability & concurrency: the engine never mutates its matrix after
// construction. Every query is a pure function of (engine, input bitset)
// and is safe to call from any number of goroutines without locks.
// Saturate mutates its argument — a caller-owned bitset — so the usual
// data-race discipline applies to that bitset alone.
//
// Failure semantics: the engine is total. There are no error returns; a
// bitset with bits ≥ n set is a caller bug with unspecified (but
// non-corrupting) results.
//
// Construction is O(V+E) plus the matrix allocation; all primitives cost
// O(k·n/64) for k the relevant set bits. See spec literature: Bouchitté &
// Todinca, "Treewidth and minimum fill-in: grouping the minimal
// separators", SIAM J. Comput. 31(1), 2001.
package bitgraph
