// Package treedec computes tree decompositions of undirected graphs —
// from the bitset-indexed subgraph engine at the heart of exact treewidth
// solvers up to heuristic decomposers, PACE-format I/O and rendering.
//
// 🚀 What is treedec?
//
//	A compact, thread-friendly toolkit that brings together:
//		• Core primitives: build undirected simple graphs, mutate safely under locks
//		• Bitset engine: bit-adjacency matrix, borders, saturation, component separation
//		• PMC oracle: the Bouchitté–Todinca potential-maximal-clique test
//		• Decompositions: bag trees with width and three-condition validation
//		• Solvers: greedy elimination orders (min-degree, min-fill) and exact
//		  treewidth via memoized elimination over subsets
//		• I/O: PACE 2017 DIMACS-like .gr / .td readers and writers
//		• Rendering: DOT export and SVG rendering of decompositions
//
// ✨ Why choose treedec?
//
//   - Predictable performance – word-packed bitsets on the hot path, no reflection
//   - Rock-solid guarantees – immutable engine, deterministic iteration, in-code docs
//   - Practical surface – the same primitives exact and heuristic solvers are built on
//   - Extensible – functional options with context cancellation on every solver
//
// Everything is organized under focused packages:
//
//	core/     — fundamental Graph type & thread-safe primitives
//	bitset/   — packed word bit-vectors with width-aware complement
//	bitgraph/ — the bitset-indexed subgraph engine and the PMC oracle
//	td/       — tree decomposition values: bags, tree edges, width, validation
//	elim/     — elimination orders and order→decomposition construction
//	exact/    — exact treewidth over bitgraph subsets
//	dimacs/   — .gr / .td parsing and serialization
//	viz/      — DOT export + SVG rendering
//	cmd/      — the treedec command-line interface
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    4───3        tw = 2, bags {1,2,4} and {2,3,4}
//
// Each package's doc.go and example_test.go hold its full documentation
// and runnable examples.
//
//	go get github.com/katalvlaran/treedec
package treedec
