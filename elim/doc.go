// Package elim provides elimination-order machinery: greedy heuristics
// that produce vertex elimination orders, and the standard construction
// that turns any order into a tree decomposition.
//
// Eliminating a vertex v means connecting its current neighbors into a
// clique (the "fill" edges) and removing v. An elimination order π
// induces a tree decomposition whose bags are {v} ∪ N_fill(v) at the
// moment v is eliminated; the width of that decomposition is the largest
// such neighborhood. Treewidth is exactly the minimum over all orders,
// which is why both heuristic and exact solvers live in order space.
//
// Two classic greedy strategies are provided:
//
//   - MinDegree: eliminate a vertex of minimum current degree.
//   - MinFill: eliminate a vertex whose elimination adds the fewest
//     fill edges.
//
// Ties break toward the lexicographically smallest label, so runs are
// reproducible. Both are heuristics: the resulting width is an upper
// bound on treewidth, typically a good one on sparse graphs.
//
// Entry points:
//
//	Order(g, opts…)      — compute a greedy elimination order
//	Decompose(g, order)  — turn any order into a td.Decomposition
//	Greedy(g, opts…)     — both steps in one call
//
// Order and Greedy accept functional options; WithContext wires
// cancellation into the elimination loop. Decompose takes no options.
package elim
