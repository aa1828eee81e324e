package bitgraph_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/treedec/bitgraph"
	"github.com/katalvlaran/treedec/bitset"
	"github.com/katalvlaran/treedec/core"
)

// grid builds an r×c grid graph, a standard hard-ish instance for
// separator-based algorithms.
func grid(r, c int) *core.Graph {
	g := core.NewGraph()
	id := func(i, j int) string { return fmt.Sprintf("%02d_%02d", i, j) }
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if j+1 < c {
				_ = g.AddEdge(id(i, j), id(i, j+1))
			}
			if i+1 < r {
				_ = g.AddEdge(id(i, j), id(i+1, j))
			}
		}
	}
	return g
}

// middleColumn returns the separator formed by the middle column of the grid.
func middleColumn(bg *bitgraph.Graph, r, c int) *bitset.Set {
	labels := make([]string, 0, r)
	for i := 0; i < r; i++ {
		labels = append(labels, fmt.Sprintf("%02d_%02d", i, c/2))
	}
	return bg.BitsetOf(labels)
}

// BenchmarkExteriorBorder measures N(S) on a 20×20 grid with a column separator.
func BenchmarkExteriorBorder(b *testing.B) {
	bg := bitgraph.New(grid(20, 20))
	sep := middleColumn(bg, 20, 20)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bg.ExteriorBorder(sep)
	}
}

// BenchmarkSeparate measures component separation on the same instance.
func BenchmarkSeparate(b *testing.B) {
	bg := bitgraph.New(grid(20, 20))
	sep := middleColumn(bg, 20, 20)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bg.Separate(sep)
	}
}

// BenchmarkIsPotentialMaximalClique measures the oracle on a column
// separator. Both halves of the grid have the whole column as exterior
// border, so P1 rejects on the first component and the non-edge sweep is
// not reached.
func BenchmarkIsPotentialMaximalClique(b *testing.B) {
	bg := bitgraph.New(grid(20, 20))
	sep := middleColumn(bg, 20, 20)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bg.IsPotentialMaximalClique(sep)
	}
}
