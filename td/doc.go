// Package td defines tree decomposition values: trees of bags over the
// vertices of an undirected graph, with width computation and full
// three-condition validation.
//
// A tree decomposition of G = (V,E) is a tree whose nodes ("bags") are
// labeled with subsets of V such that
//
//  1. every vertex of G lies in at least one bag,
//  2. every edge of G has both endpoints together in some bag, and
//  3. for each vertex v the bags containing v form a connected subtree.
//
// The width of a decomposition is max|bag|−1; the treewidth of G is the
// minimum width over all its tree decompositions.
//
// A Decomposition is a plain mutable value: solvers build it bag by bag
// (AddBag, AddTreeEdge), callers read it (Bag, TreeEdges, Width) and
// check it against the graph it is supposed to decompose (Validate).
// Nothing here is concurrency-safe; a decomposition belongs to the
// goroutine building it.
//
// Errors:
//
//	ErrBagIndex          – bag index out of range
//	ErrTreeEdgeLoop      – tree edge from a bag to itself
//	ErrNotATree          – tree edges do not form a tree
//	ErrVertexNotCovered  – condition 1 violated
//	ErrEdgeNotCovered    – condition 2 violated
//	ErrBagsDisconnected  – condition 3 violated
package td
