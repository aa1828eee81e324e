// File: validate.go
// Role: the validate command — check a .td against its .gr.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/treedec/dimacs"
)

// newValidateCmd creates the validate command.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate graph.gr dec.td",
		Short: "Check that a .td file is a tree decomposition of a .gr graph",
		Long: `Check the three decomposition conditions (vertex coverage, edge
coverage, connected subtrees) plus tree shape. Exits non-zero with the
first violated condition.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			gin, err := openInput(args[0])
			if err != nil {
				return err
			}
			defer gin.Close()
			g, err := dimacs.ReadGraph(gin)
			if err != nil {
				return fmt.Errorf("cli: parse %s: %w", args[0], err)
			}

			din, err := openInput(args[1])
			if err != nil {
				return err
			}
			defer din.Close()
			dec, err := dimacs.ReadDecomposition(din)
			if err != nil {
				return fmt.Errorf("cli: parse %s: %w", args[1], err)
			}

			if err = dec.Validate(g); err != nil {
				return err
			}
			logger.Info("decomposition is valid", "width", dec.Width(), "bags", dec.NumBags())
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "valid, width %d\n", dec.Width())
			return err
		},
	}
}
