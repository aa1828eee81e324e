package elim_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/katalvlaran/treedec/core"
	"github.com/katalvlaran/treedec/elim"
)

// path builds P_n on labels "01".."0n".
func path(n int) *core.Graph {
	g := core.NewGraph()
	for i := 1; i < n; i++ {
		g.AddEdge(fmt.Sprintf("%02d", i), fmt.Sprintf("%02d", i+1))
	}
	return g
}

// cycle builds C_n on labels "01".."0n".
func cycle(n int) *core.Graph {
	g := path(n)
	g.AddEdge(fmt.Sprintf("%02d", n), "01")
	return g
}

// clique builds K_n on labels "01".."0n".
func clique(n int) *core.Graph {
	g := core.NewGraph()
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			g.AddEdge(fmt.Sprintf("%02d", i), fmt.Sprintf("%02d", j))
		}
	}
	return g
}

// TestOrderErrors verifies nil-graph and bad-option rejection.
func TestOrderErrors(t *testing.T) {
	if _, err := elim.Order(nil); !errors.Is(err, elim.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := elim.Order(path(3), elim.WithStrategy(elim.Strategy(42))); !errors.Is(err, elim.ErrOptionViolation) {
		t.Errorf("bad strategy: want ErrOptionViolation, got %v", err)
	}
}

// TestOrderIsPermutation checks that every vertex appears exactly once.
func TestOrderIsPermutation(t *testing.T) {
	g := cycle(6)
	order, err := elim.Order(g)
	if err != nil {
		t.Fatal(err)
	}
	if len(order) != 6 {
		t.Fatalf("order has %d entries; want 6", len(order))
	}
	seen := map[string]bool{}
	for _, v := range order {
		if seen[v] || !g.HasVertex(v) {
			t.Fatalf("order %v is not a permutation", order)
		}
		seen[v] = true
	}
}

// TestOrderDeterministic pins lexicographic tie-breaking: on a path every
// endpoint has degree 1 and "01" wins the first pick.
func TestOrderDeterministic(t *testing.T) {
	a, err := elim.Order(path(5))
	if err != nil {
		t.Fatal(err)
	}
	b, err := elim.Order(path(5))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("two runs disagreed: %v vs %v", a, b)
	}
	if a[0] != "01" {
		t.Errorf("first elimination = %q; want 01 (lexicographic tie-break)", a[0])
	}
}

// TestGreedyWidths checks known widths: tw(P_n)=1, tw(C_n)=2, tw(K_n)=n−1.
// MinDegree is exact on these families.
func TestGreedyWidths(t *testing.T) {
	cases := []struct {
		name  string
		graph *core.Graph
		width int
	}{
		{"path10", path(10), 1},
		{"cycle8", cycle(8), 2},
		{"clique5", clique(5), 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dec, err := elim.Greedy(tc.graph)
			if err != nil {
				t.Fatal(err)
			}
			if dec.Width() != tc.width {
				t.Errorf("width = %d; want %d", dec.Width(), tc.width)
			}
			if err = dec.Validate(tc.graph); err != nil {
				t.Errorf("decomposition invalid: %v", err)
			}
		})
	}
}

// TestMinFillOnCycle verifies the MinFill strategy end to end.
func TestMinFillOnCycle(t *testing.T) {
	g := cycle(7)
	dec, err := elim.Greedy(g, elim.WithStrategy(elim.MinFill))
	if err != nil {
		t.Fatal(err)
	}
	if dec.Width() != 2 {
		t.Errorf("width = %d; want 2", dec.Width())
	}
	if err = dec.Validate(g); err != nil {
		t.Errorf("decomposition invalid: %v", err)
	}
}

// TestDecomposeChecksPermutation covers the order validation paths.
func TestDecomposeChecksPermutation(t *testing.T) {
	g := path(3)
	if _, err := elim.Decompose(g, []string{"01", "02"}); !errors.Is(err, elim.ErrOrderMismatch) {
		t.Errorf("short order: want ErrOrderMismatch, got %v", err)
	}
	if _, err := elim.Decompose(g, []string{"01", "02", "02"}); !errors.Is(err, elim.ErrOrderMismatch) {
		t.Errorf("duplicate: want ErrOrderMismatch, got %v", err)
	}
	if _, err := elim.Decompose(g, []string{"01", "02", "xx"}); !errors.Is(err, elim.ErrOrderMismatch) {
		t.Errorf("foreign vertex: want ErrOrderMismatch, got %v", err)
	}
}

// TestDecomposeBadOrderStillValid verifies that even a poor order yields a
// valid (just wider) decomposition.
func TestDecomposeBadOrderStillValid(t *testing.T) {
	g := cycle(6)
	// eliminate in label order, which is far from optimal on a cycle
	dec, err := elim.Decompose(g, g.Vertices())
	if err != nil {
		t.Fatal(err)
	}
	if err = dec.Validate(g); err != nil {
		t.Errorf("decomposition invalid: %v", err)
	}
	if dec.Width() < 2 {
		t.Errorf("width = %d; cycle treewidth is 2", dec.Width())
	}
}

// TestDecomposeDisconnected verifies single-tree output on a forest.
func TestDecomposeDisconnected(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("a", "b")
	g.AddEdge("c", "d")
	g.AddVertex("e") // isolated vertex

	dec, err := elim.Greedy(g)
	if err != nil {
		t.Fatal(err)
	}
	if err = dec.Validate(g); err != nil {
		t.Errorf("decomposition invalid: %v", err)
	}
	if dec.Width() != 1 {
		t.Errorf("width = %d; want 1", dec.Width())
	}
}

// TestOrderCancellation verifies that a cancelled context aborts the loop.
func TestOrderCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := elim.Order(path(50), elim.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestEmptyGraph pins the trivial case.
func TestEmptyGraph(t *testing.T) {
	dec, err := elim.Greedy(core.NewGraph())
	if err != nil {
		t.Fatal(err)
	}
	if dec.NumBags() != 0 || dec.Width() != -1 {
		t.Errorf("empty graph: bags=%d width=%d; want 0 and -1", dec.NumBags(), dec.Width())
	}
}
