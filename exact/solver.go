// File: solver.go
// Role: memoized branch-and-bound over elimination prefixes.
package exact

import (
	"encoding/binary"
	"math"

	"github.com/katalvlaran/treedec/bitgraph"
	"github.com/katalvlaran/treedec/bitset"
	"github.com/katalvlaran/treedec/core"
	"github.com/katalvlaran/treedec/elim"
	"github.com/katalvlaran/treedec/td"
)

// Treewidth returns the exact treewidth of g (−1 for the empty graph).
//
// Complexity: exponential in |V|; see the package documentation.
func Treewidth(g *core.Graph, opts ...Option) (int, error) {
	width, _, err := solve(g, opts)
	return width, err
}

// Order returns an elimination order of g whose induced decomposition has
// width equal to the treewidth.
func Order(g *core.Graph, opts ...Option) ([]string, error) {
	_, order, err := solve(g, opts)
	return order, err
}

// Decompose returns a tree decomposition of g of minimum width.
func Decompose(g *core.Graph, opts ...Option) (*td.Decomposition, error) {
	_, order, err := solve(g, opts)
	if err != nil {
		return nil, err
	}
	return elim.Decompose(g, order)
}

// solve runs the DP and returns the treewidth plus a witnessing order.
func solve(g *core.Graph, opts []Option) (int, []string, error) {
	if g == nil {
		return 0, nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, nil, err
	}
	if g.VertexCount() > o.MaxVertices {
		return 0, nil, ErrTooLarge
	}

	// The greedy width both seeds the bound and covers the case where it
	// is already optimal.
	greedyOrder, err := elim.Order(g, elim.WithContext(o.Ctx))
	if err != nil {
		return 0, nil, err
	}
	greedyDec, err := elim.Decompose(g, greedyOrder)
	if err != nil {
		return 0, nil, err
	}
	upper := greedyDec.Width()
	if upper <= 0 {
		// edgeless or empty graph: the greedy order is trivially optimal
		return upper, greedyOrder, nil
	}

	s := &solver{
		g:      bitgraph.New(g),
		opts:   o,
		upper:  upper,
		memo:   make(map[string]int),
		choice: make(map[string]int),
	}
	width, err := s.rec(bitset.New(s.g.N()), 0)
	if err != nil {
		return 0, nil, err
	}
	if width >= upper {
		// nothing beat the greedy bound, so the bound is the treewidth
		return upper, greedyOrder, nil
	}
	return width, s.rebuild(), nil
}

// solver carries the DP state: the frozen engine, the pruning bound, and
// the memo/choice tables keyed by the eliminated-subset words.
type solver struct {
	g      *bitgraph.Graph
	opts   Options
	upper  int            // strict bound: only widths < upper are explored
	memo   map[string]int // subset → opt(S), MaxInt when every branch was pruned
	choice map[string]int // subset → vertex realizing opt(S)
}

// rec computes opt(S) for the eliminated set S holding k vertices.
func (s *solver) rec(eliminated *bitset.Set, k int) (int, error) {
	if k == s.g.N() {
		return -1, nil // nothing left: max over an empty elimination suffix
	}

	select {
	case <-s.opts.Ctx.Done():
		return 0, s.opts.Ctx.Err()
	default:
	}

	key := subsetKey(eliminated)
	if w, ok := s.memo[key]; ok {
		return w, nil
	}

	best := math.MaxInt
	bestV := -1
	remaining := eliminated.Clone()
	remaining.Complement()
	for v := remaining.NextSet(0); v >= 0; v = remaining.NextSet(v + 1) {
		deg := s.fillDegree(eliminated, v)
		if deg >= s.upper {
			continue // cannot beat the greedy bound through v
		}
		eliminated.Set(v)
		sub, err := s.rec(eliminated, k+1)
		eliminated.Clear(v)
		if err != nil {
			return 0, err
		}
		if sub > deg {
			deg = sub
		}
		if deg < best {
			best, bestV = deg, v
		}
	}

	s.memo[key] = best
	if bestV >= 0 {
		s.choice[key] = bestV
	}
	return best, nil
}

// fillDegree returns the degree v would have when eliminated after S in
// the fill graph: |N(C)| for C the component of G[S ∪ {v}] containing v.
// No fill edges are ever materialized.
func (s *solver) fillDegree(eliminated *bitset.Set, v int) int {
	sub := eliminated.Clone()
	sub.Set(v)

	// component of G[sub] containing v, by iterative DFS
	component := bitset.New(s.g.N())
	component.Set(v)
	stack := []int{v}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		row := s.g.Row(x)
		for w := row.NextSet(0); w >= 0; w = row.NextSet(w + 1) {
			if !sub.Test(w) || component.Test(w) {
				continue
			}
			component.Set(w)
			stack = append(stack, w)
		}
	}
	return s.g.ExteriorBorder(component).Count()
}

// rebuild replays the recorded choices into an elimination order.
func (s *solver) rebuild() []string {
	order := make([]string, 0, s.g.N())
	eliminated := bitset.New(s.g.N())
	for len(order) < s.g.N() {
		v, ok := s.choice[subsetKey(eliminated)]
		if !ok {
			break
		}
		order = append(order, s.g.LabelOf(v))
		eliminated.Set(v)
	}
	return order
}

// subsetKey packs the subset words into a string usable as a map key.
func subsetKey(s *bitset.Set) string {
	words := s.Words()
	buf := make([]byte, 8*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[8*i:], w)
	}
	return string(buf)
}
