// File: solve.go
// Role: the solve and width commands — graph in, decomposition (or just
// its width) out.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/treedec/core"
	"github.com/katalvlaran/treedec/dimacs"
	"github.com/katalvlaran/treedec/elim"
	"github.com/katalvlaran/treedec/exact"
	"github.com/katalvlaran/treedec/td"
)

// newSolveCmd creates the solve command.
func newSolveCmd() *cobra.Command {
	var (
		output    string
		heuristic bool
		strategy  string
		maxExact  int
	)

	cmd := &cobra.Command{
		Use:   "solve [graph.gr]",
		Short: "Compute a tree decomposition and write it as .td",
		Long: `Compute a tree decomposition of a PACE-format .gr graph.

Small instances (up to --max-exact vertices) are solved exactly; larger
ones fall back to the greedy elimination heuristic. Pass --heuristic to
skip the exact solver regardless of size. The decomposition is written
in .td format to --output, or to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applySolverDefaults(cmd, configFromContext(cmd.Context()), &strategy, &maxExact)
			dec, g, err := runSolve(cmd.Context(), inputArg(args), heuristic, strategy, maxExact)
			if err != nil {
				return err
			}
			return writeDecomposition(output, dec, g)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output .td file (default: stdout)")
	cmd.Flags().BoolVar(&heuristic, "heuristic", false, "always use the greedy heuristic")
	cmd.Flags().StringVar(&strategy, "strategy", "", "greedy strategy: min-degree | min-fill")
	cmd.Flags().IntVar(&maxExact, "max-exact", -1, "largest vertex count solved exactly")

	return cmd
}

// newWidthCmd creates the width command.
func newWidthCmd() *cobra.Command {
	var (
		heuristic bool
		strategy  string
		maxExact  int
	)

	cmd := &cobra.Command{
		Use:   "width [graph.gr]",
		Short: "Report the decomposition width without writing a .td",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applySolverDefaults(cmd, configFromContext(cmd.Context()), &strategy, &maxExact)
			dec, _, err := runSolve(cmd.Context(), inputArg(args), heuristic, strategy, maxExact)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), dec.Width())
			return err
		},
	}

	cmd.Flags().BoolVar(&heuristic, "heuristic", false, "always use the greedy heuristic")
	cmd.Flags().StringVar(&strategy, "strategy", "", "greedy strategy: min-degree | min-fill")
	cmd.Flags().IntVar(&maxExact, "max-exact", -1, "largest vertex count solved exactly")

	return cmd
}

// inputArg maps an optional positional argument onto a path, defaulting
// to stdin.
func inputArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

// applySolverDefaults fills unset flags from the loaded config.
func applySolverDefaults(cmd *cobra.Command, cfg Config, strategy *string, maxExact *int) {
	if !cmd.Flags().Changed("strategy") || *strategy == "" {
		*strategy = cfg.Solver.Strategy
	}
	if !cmd.Flags().Changed("max-exact") {
		*maxExact = cfg.Solver.MaxExact
	}
}

// runSolve parses the graph and runs the appropriate solver.
func runSolve(ctx context.Context, input string, heuristic bool, strategyName string, maxExact int) (*td.Decomposition, *core.Graph, error) {
	logger := loggerFromContext(ctx)

	strategy, err := elim.ParseStrategy(strategyName)
	if err != nil {
		return nil, nil, err
	}

	in, err := openInput(input)
	if err != nil {
		return nil, nil, err
	}
	defer in.Close()

	g, err := dimacs.ReadGraph(in)
	if err != nil {
		return nil, nil, fmt.Errorf("cli: parse %s: %w", input, err)
	}
	logger.Debug("parsed graph", "vertices", g.VertexCount(), "edges", g.EdgeCount())

	start := time.Now()
	var dec *td.Decomposition
	if !heuristic && g.VertexCount() <= maxExact {
		logger.Info("solving exactly", "vertices", g.VertexCount())
		dec, err = exact.Decompose(g,
			exact.WithContext(ctx),
			exact.WithMaxVertices(maxExact+1))
	} else {
		logger.Info("solving greedily", "vertices", g.VertexCount(), "strategy", strategy)
		dec, err = elim.Greedy(g,
			elim.WithContext(ctx),
			elim.WithStrategy(strategy))
	}
	if err != nil {
		return nil, nil, err
	}
	logger.Info("decomposition ready",
		"width", dec.Width(),
		"bags", dec.NumBags(),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return dec, g, nil
}

// writeDecomposition serializes dec to the given path, or stdout for "".
func writeDecomposition(output string, dec *td.Decomposition, g *core.Graph) error {
	if output == "" {
		return dimacs.WriteDecomposition(os.Stdout, dec, g)
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err = dimacs.WriteDecomposition(f, dec, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
