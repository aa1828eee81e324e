// Package viz renders tree decompositions for human eyes: Graphviz DOT
// export plus SVG rasterization.
//
// ToDOT emits an undirected DOT graph with one box node per bag, labeled
// with the bag's vertices; RenderSVG feeds any DOT string through the
// embedded Graphviz engine. Rendering is strictly a presentation concern:
// nothing here inspects widths or validates the decomposition.
package viz

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/treedec/td"
)

// ToDOT converts a decomposition to Graphviz DOT format. Bags are
// rendered as boxes labeled "B<i>: {v…}"; tree edges are undirected.
// The resulting string can be rendered with RenderSVG or any dot(1).
//
// Complexity: O(bags · bagsize + tree edges)
func ToDOT(d *td.Decomposition) string {
	var buf bytes.Buffer
	buf.WriteString("graph td {\n")
	buf.WriteString("  node [shape=box, style=rounded, fontsize=12];\n")

	for i := 0; i < d.NumBags(); i++ {
		bag, err := d.Bag(i)
		if err != nil {
			continue // unreachable with in-range indices
		}
		fmt.Fprintf(&buf, "  b%d [label=%q];\n", i, fmt.Sprintf("B%d: {%s}", i, strings.Join(bag, ", ")))
	}
	for _, e := range d.TreeEdges() {
		fmt.Fprintf(&buf, "  b%d -- b%d;\n", e[0], e[1])
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using the embedded Graphviz.
//
// Complexity: dominated by Graphviz layout.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("viz: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("viz: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("viz: render: %w", err)
	}
	return buf.Bytes(), nil
}
