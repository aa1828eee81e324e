// Package cli implements the treedec command-line interface.
//
// Commands:
//
//   - solve: read a .gr graph, compute a tree decomposition (exact when
//     the instance is small enough, greedy otherwise), write a .td file.
//   - width: report the width the solver achieves without writing output.
//   - validate: check a .td file against its .gr graph.
//   - visualize: render a .td file to SVG via Graphviz.
//
// All commands support --verbose (-v) for debug-level logging via
// charmbracelet/log; the logger travels through context.Context. Defaults
// can be set in an optional treedec.toml next to the invocation (see
// config.go).
//
// Input files named "-" are read from stdin.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the treedec CLI and returns an error if any command fails.
//
// Logging defaults to info level on stderr; --verbose switches to debug.
// The logger is attached to the command context and retrieved by
// subcommands via loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "treedec",
		Short:        "treedec computes tree decompositions of undirected graphs",
		Long:         "treedec reads PACE-format .gr graphs and computes tree decompositions,\nexactly on small instances and greedily on large ones.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cmdCtx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(withConfig(cmdCtx, cfg))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a treedec.toml (default: ./treedec.toml if present)")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newWidthCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newVisualizeCmd())

	return root.ExecuteContext(ctx)
}

// newLogger creates a logger with timestamp formatting at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger, falling back to the default.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// withConfig returns a new context with the loaded config attached.
func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the config, falling back to defaults.
func configFromContext(ctx context.Context) Config {
	if c, ok := ctx.Value(configKey).(Config); ok {
		return c
	}
	return defaultConfig()
}

// openInput opens path for reading; "-" means stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}
