// File: decomposition.go
// Role: the .td half of the format — tree decompositions in and out.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/treedec/core"
	"github.com/katalvlaran/treedec/td"
)

// ReadDecomposition parses a .td stream. Bag ids 1…bags map onto bag
// indices 0…bags−1; bags may be declared in any order and may be empty.
//
// Complexity: O(bags · bagsize + tree edges)
func ReadDecomposition(r io.Reader) (*td.Decomposition, error) {
	numBags := -1
	var bags [][]string
	var edges [][2]int

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] == "c" {
			continue
		}
		switch fields[0] {
		case "s":
			if numBags >= 0 {
				return nil, fmt.Errorf("%w: line %d", ErrDuplicateHeader, line)
			}
			if len(fields) != 5 || fields[1] != "td" {
				return nil, fmt.Errorf("%w: line %d", ErrBadHeader, line)
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil || v < 0 {
				return nil, fmt.Errorf("%w: line %d", ErrBadHeader, line)
			}
			numBags = v
			bags = make([][]string, numBags)
		case "b":
			if numBags < 0 {
				return nil, fmt.Errorf("%w: line %d", ErrMissingHeader, line)
			}
			if len(fields) < 2 {
				return nil, fmt.Errorf("%w: line %d", ErrBadLine, line)
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d", ErrBadLine, line)
			}
			if id < 1 || id > numBags {
				return nil, fmt.Errorf("%w: line %d", ErrVertexRange, line)
			}
			bags[id-1] = append([]string{}, fields[2:]...)
		default:
			if numBags < 0 {
				return nil, fmt.Errorf("%w: line %d", ErrMissingHeader, line)
			}
			if len(fields) != 2 {
				return nil, fmt.Errorf("%w: line %d", ErrBadLine, line)
			}
			i, err1 := strconv.Atoi(fields[0])
			j, err2 := strconv.Atoi(fields[1])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("%w: line %d", ErrBadLine, line)
			}
			if i < 1 || i > numBags || j < 1 || j > numBags {
				return nil, fmt.Errorf("%w: line %d", ErrVertexRange, line)
			}
			edges = append(edges, [2]int{i - 1, j - 1})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if numBags < 0 {
		return nil, ErrMissingHeader
	}

	dec := td.New()
	for _, bag := range bags {
		dec.AddBag(bag)
	}
	for _, e := range edges {
		if err := dec.AddTreeEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return dec, nil
}

// WriteDecomposition serializes d as a .td stream, declaring g's vertex
// count in the header. Bags and tree edges come out in index order.
//
// Complexity: O(bags · bagsize + tree edges)
func WriteDecomposition(w io.Writer, d *td.Decomposition, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "s td %d %d %d\n", d.NumBags(), d.Width()+1, g.VertexCount()); err != nil {
		return err
	}
	for i := 0; i < d.NumBags(); i++ {
		bag, err := d.Bag(i)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(bw, "b %d", i+1); err != nil {
			return err
		}
		for _, v := range bag {
			if _, err = fmt.Fprintf(bw, " %s", v); err != nil {
				return err
			}
		}
		if _, err = fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	for _, e := range d.TreeEdges() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e[0]+1, e[1]+1); err != nil {
			return err
		}
	}
	return bw.Flush()
}
