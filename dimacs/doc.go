// Package dimacs reads and writes the PACE 2017 exchange formats for
// treewidth: .gr graph files and .td tree decomposition files.
//
// The .gr format:
//
//	c an optional comment
//	p tw <n> <m>
//	<u> <v>            (one line per edge, vertices 1…n)
//
// The .td format:
//
//	c an optional comment
//	s td <bags> <width+1> <n>
//	b <id> <v…>        (one line per bag, ids 1…bags)
//	<i> <j>            (one line per tree edge, bag ids)
//
// Vertices travel as their decimal numerals, which become the string
// labels of the core.Graph — so a parsed graph feeds straight into
// bitgraph.New and the solvers, and solver output serializes straight
// back.
//
// Parsers are line-based and strict about structure (header first,
// in-range endpoints) while ignoring blank lines and c-comments anywhere,
// matching how PACE tooling behaves in practice. Writers emit bags and
// edges in deterministic order.
//
// Errors:
//
//	ErrMissingHeader   – payload line before the p/s header, or no header
//	ErrDuplicateHeader – a second p/s header
//	ErrBadHeader       – malformed p/s header
//	ErrBadLine         – malformed edge or bag line
//	ErrVertexRange     – endpoint or bag id out of range
package dimacs
