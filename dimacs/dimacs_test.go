package dimacs_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/treedec/core"
	"github.com/katalvlaran/treedec/dimacs"
	"github.com/katalvlaran/treedec/elim"
	"github.com/katalvlaran/treedec/td"
)

// TestReadGraph parses a small .gr file with comments and blank lines.
func TestReadGraph(t *testing.T) {
	in := `c the P5 instance
p tw 5 4

1 2
2 3
c a mid-file comment
3 4
4 5
`
	g, err := dimacs.ReadGraph(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if g.VertexCount() != 5 || g.EdgeCount() != 4 {
		t.Fatalf("parsed V=%d E=%d; want 5 and 4", g.VertexCount(), g.EdgeCount())
	}
	if !g.HasEdge("2", "3") || g.HasEdge("1", "3") {
		t.Error("adjacency mismatch after parse")
	}
}

// TestReadGraphIsolated keeps vertices that appear in no edge line.
func TestReadGraphIsolated(t *testing.T) {
	g, err := dimacs.ReadGraph(strings.NewReader("p tw 3 1\n1 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !g.HasVertex("3") {
		t.Error("isolated vertex 3 must survive parsing")
	}
}

// TestReadGraphErrors covers the malformed-input taxonomy.
func TestReadGraphErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"no header", "1 2\n", dimacs.ErrMissingHeader},
		{"empty", "c nothing\n", dimacs.ErrMissingHeader},
		{"double header", "p tw 2 1\np tw 2 1\n", dimacs.ErrDuplicateHeader},
		{"bad header tag", "p cnf 2 1\n", dimacs.ErrBadHeader},
		{"bad header arity", "p tw 2\n", dimacs.ErrBadHeader},
		{"bad edge arity", "p tw 2 1\n1 2 3\n", dimacs.ErrBadLine},
		{"non-numeric edge", "p tw 2 1\n1 x\n", dimacs.ErrBadLine},
		{"out of range", "p tw 2 1\n1 9\n", dimacs.ErrVertexRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := dimacs.ReadGraph(strings.NewReader(tc.in)); !errors.Is(err, tc.err) {
				t.Errorf("want %v, got %v", tc.err, err)
			}
		})
	}
}

// TestGraphRoundTrip writes a parsed graph back out and re-parses it.
func TestGraphRoundTrip(t *testing.T) {
	in := "p tw 4 4\n1 2\n2 3\n3 4\n4 1\n"
	g, err := dimacs.ReadGraph(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err = dimacs.WriteGraph(&buf, g); err != nil {
		t.Fatal(err)
	}
	g2, err := dimacs.ReadGraph(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(g.Vertices(), g2.Vertices()) || g.EdgeCount() != g2.EdgeCount() {
		t.Error("graph changed across a write/read round-trip")
	}
}

// TestDecompositionRoundTrip serializes a solver decomposition and
// re-parses it into an equivalent, still-valid decomposition.
func TestDecompositionRoundTrip(t *testing.T) {
	g, err := dimacs.ReadGraph(strings.NewReader("p tw 5 4\n1 2\n2 3\n3 4\n4 5\n"))
	if err != nil {
		t.Fatal(err)
	}
	dec, err := elim.Greedy(g)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err = dimacs.WriteDecomposition(&buf, dec, g); err != nil {
		t.Fatal(err)
	}
	text := buf.String()
	if !strings.HasPrefix(text, "s td ") {
		t.Fatalf("missing s-header in output:\n%s", text)
	}

	dec2, err := dimacs.ReadDecomposition(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}
	if dec2.Width() != dec.Width() || dec2.NumBags() != dec.NumBags() {
		t.Errorf("round-trip changed shape: width %d→%d bags %d→%d",
			dec.Width(), dec2.Width(), dec.NumBags(), dec2.NumBags())
	}
	if err = dec2.Validate(g); err != nil {
		t.Errorf("round-tripped decomposition invalid: %v", err)
	}
}

// TestReadDecompositionErrors covers the .td error taxonomy.
func TestReadDecompositionErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"no header", "b 1 1 2\n", dimacs.ErrMissingHeader},
		{"double header", "s td 1 1 1\ns td 1 1 1\n", dimacs.ErrDuplicateHeader},
		{"bad header", "s td 1 1\n", dimacs.ErrBadHeader},
		{"bag id out of range", "s td 1 2 2\nb 2 1\n", dimacs.ErrVertexRange},
		{"bad tree edge", "s td 2 2 2\nb 1 1\nb 2 2\n1 5\n", dimacs.ErrVertexRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := dimacs.ReadDecomposition(strings.NewReader(tc.in)); !errors.Is(err, tc.err) {
				t.Errorf("want %v, got %v", tc.err, err)
			}
		})
	}
}

// TestWriteEmptyDecomposition pins the degenerate header.
func TestWriteEmptyDecomposition(t *testing.T) {
	var buf bytes.Buffer
	if err := dimacs.WriteDecomposition(&buf, td.New(), core.NewGraph()); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "s td 0 0 0\n" {
		t.Errorf("empty output = %q; want \"s td 0 0 0\\n\"", got)
	}
}
