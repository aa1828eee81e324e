// Package bitset provides packed word bit-vectors with an explicit width,
// tuned for dense subgraph algebra.
//
// The bitset package provides:
//
//   - Set, a bit-vector of fixed width n backed by ⌈n/64⌉ machine words.
//   - In-place boolean algebra (Or, And, AndNot, Complement) where
//     Complement masks the unused tail bits, so complement-of-complement
//     round-trips exactly.
//   - Word-at-a-time queries (Intersects, Count, Equal, None) and set-bit
//     enumeration (NextSet, ForEach) via trailing-zero scans.
//
// Sets are values with reference semantics: Clone is a deep copy, and
// every mutating method works in place without allocating. Widths are fixed at construction; all binary operations
// require operands of equal width.
//
// Bitsets are best where subsets of a dense integer range [0,n) are
// created, combined, and compared in tight loops — connected components,
// border computations, dynamic programming over subgraphs.
//
// See the bitgraph package for the primary consumer.
package bitset
