// Package dimacs implements PACE 2017 .gr / .td parsing and serialization.
//
// This file declares the sentinel errors and the .gr graph surface.
package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/treedec/core"
)

// Sentinel errors for DIMACS parsing.
var (
	// ErrMissingHeader indicates a payload line before the header, or an
	// input with no header at all.
	ErrMissingHeader = errors.New("dimacs: missing p/s header")

	// ErrDuplicateHeader indicates a second header line.
	ErrDuplicateHeader = errors.New("dimacs: duplicate header")

	// ErrBadHeader indicates a malformed header line.
	ErrBadHeader = errors.New("dimacs: malformed header")

	// ErrBadLine indicates a malformed edge or bag line.
	ErrBadLine = errors.New("dimacs: malformed line")

	// ErrVertexRange indicates a vertex or bag id outside the declared range.
	ErrVertexRange = errors.New("dimacs: id out of range")
)

// ReadGraph parses a .gr stream into a core.Graph. Vertices 1…n become
// string labels "1"…"n"; isolated vertices are preserved.
//
// Complexity: O(n + m)
func ReadGraph(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	n := -1

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] == "c" {
			continue
		}
		if fields[0] == "p" {
			if n >= 0 {
				return nil, fmt.Errorf("%w: line %d", ErrDuplicateHeader, line)
			}
			var err error
			if n, err = parseGraphHeader(fields); err != nil {
				return nil, fmt.Errorf("%w: line %d", err, line)
			}
			for v := 1; v <= n; v++ {
				if err = g.AddVertex(strconv.Itoa(v)); err != nil {
					return nil, err
				}
			}
			continue
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: line %d", ErrMissingHeader, line)
		}
		u, v, err := parseEndpoints(fields, n)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d", err, line)
		}
		if err = g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("dimacs: line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrMissingHeader
	}
	return g, nil
}

// WriteGraph serializes g as a .gr stream. Vertex labels must be the
// decimal numerals 1…n, which is what ReadGraph and the solvers produce.
//
// Complexity: O(n + m)
func WriteGraph(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p tw %d %d\n", g.VertexCount(), g.EdgeCount()); err != nil {
		return err
	}
	for _, u := range g.Vertices() {
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return err
		}
		ui, err := strconv.Atoi(u)
		if err != nil {
			return fmt.Errorf("%w: vertex %q is not numeric", ErrBadLine, u)
		}
		for _, v := range nbrs {
			vi, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: vertex %q is not numeric", ErrBadLine, v)
			}
			if ui >= vi {
				continue // each undirected edge written once
			}
			if _, err = fmt.Fprintf(bw, "%d %d\n", ui, vi); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// parseGraphHeader validates "p tw <n> <m>" and returns n.
func parseGraphHeader(fields []string) (int, error) {
	if len(fields) != 4 || fields[1] != "tw" {
		return 0, ErrBadHeader
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil || n < 0 {
		return 0, ErrBadHeader
	}
	if _, err = strconv.Atoi(fields[3]); err != nil {
		return 0, ErrBadHeader
	}
	return n, nil
}

// parseEndpoints validates an edge line "<u> <v>" against vertex count n.
func parseEndpoints(fields []string, n int) (string, string, error) {
	if len(fields) != 2 {
		return "", "", ErrBadLine
	}
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return "", "", ErrBadLine
		}
		if v < 1 || v > n {
			return "", "", ErrVertexRange
		}
	}
	return fields[0], fields[1], nil
}
