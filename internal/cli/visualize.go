// File: visualize.go
// Role: the visualize command — render a .td to SVG (or DOT text).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/treedec/dimacs"
	"github.com/katalvlaran/treedec/viz"
)

// newVisualizeCmd creates the visualize command.
func newVisualizeCmd() *cobra.Command {
	var (
		output  string
		dotOnly bool
	)

	cmd := &cobra.Command{
		Use:   "visualize dec.td",
		Short: "Render a .td file to SVG via Graphviz",
		Long: `Render a tree decomposition as a picture: one box per bag, tree
edges between them. With --dot the Graphviz DOT source is emitted
instead of rendered SVG.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			in, err := openInput(args[0])
			if err != nil {
				return err
			}
			defer in.Close()
			dec, err := dimacs.ReadDecomposition(in)
			if err != nil {
				return fmt.Errorf("cli: parse %s: %w", args[0], err)
			}

			dot := viz.ToDOT(dec)
			if dotOnly {
				return writeBytes(output, []byte(dot))
			}

			svg, err := viz.RenderSVG(dot)
			if err != nil {
				return err
			}
			logger.Info("rendered decomposition", "bags", dec.NumBags(), "bytes", len(svg))
			return writeBytes(output, svg)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&dotOnly, "dot", false, "emit DOT source instead of SVG")

	return cmd
}

// writeBytes writes data to path, or stdout for "".
func writeBytes(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
