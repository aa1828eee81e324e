package viz_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/treedec/td"
	"github.com/katalvlaran/treedec/viz"
)

// TestToDOT checks the emitted structure for a two-bag decomposition.
func TestToDOT(t *testing.T) {
	d := td.New()
	b0 := d.AddBag([]string{"1", "2", "4"})
	b1 := d.AddBag([]string{"2", "3", "4"})
	d.AddTreeEdge(b0, b1)

	dot := viz.ToDOT(d)
	for _, want := range []string{
		"graph td {",
		`b0 [label="B0: {1, 2, 4}"];`,
		`b1 [label="B1: {2, 3, 4}"];`,
		"b0 -- b1;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "->") {
		t.Error("tree edges must be undirected")
	}
}

// TestToDOTEmpty renders the empty decomposition without edges or nodes.
func TestToDOTEmpty(t *testing.T) {
	dot := viz.ToDOT(td.New())
	if !strings.HasPrefix(dot, "graph td {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("empty DOT malformed:\n%s", dot)
	}
	if strings.Contains(dot, "label=") {
		t.Error("empty decomposition must emit no nodes")
	}
}
