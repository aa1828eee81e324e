package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFile drops contents into a temp file and returns its path.
func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

// TestLoadConfigDefaults verifies behavior without any file.
func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err, "an explicit missing config must fail")

	// empty path probes ./treedec.toml; run inside an empty directory
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	cfg, err = loadConfig("")
	require.NoError(t, err)
	require.Equal(t, "min-degree", cfg.Solver.Strategy)
	require.Equal(t, 20, cfg.Solver.MaxExact)
}

// TestLoadConfigFile parses a full TOML file and rejects bad values.
func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()

	good := writeFile(t, dir, "good.toml", "[solver]\nstrategy = \"min-fill\"\nmax-exact = 12\n")
	cfg, err := loadConfig(good)
	require.NoError(t, err)
	require.Equal(t, "min-fill", cfg.Solver.Strategy)
	require.Equal(t, 12, cfg.Solver.MaxExact)

	bad := writeFile(t, dir, "bad.toml", "[solver]\nstrategy = \"random\"\n")
	_, err = loadConfig(bad)
	require.Error(t, err)
}

// TestRunSolveGreedy exercises the solve pipeline end to end on a path graph.
func TestRunSolveGreedy(t *testing.T) {
	gr := writeFile(t, t.TempDir(), "p5.gr", "p tw 5 4\n1 2\n2 3\n3 4\n4 5\n")

	dec, g, err := runSolve(context.Background(), gr, true, "min-degree", 0)
	require.NoError(t, err)
	require.Equal(t, 1, dec.Width())
	require.NoError(t, dec.Validate(g))
}

// TestRunSolveExact verifies the exact path kicks in under the cutoff.
func TestRunSolveExact(t *testing.T) {
	// C4 has treewidth 2
	gr := writeFile(t, t.TempDir(), "c4.gr", "p tw 4 4\n1 2\n2 3\n3 4\n4 1\n")

	dec, g, err := runSolve(context.Background(), gr, false, "min-degree", 20)
	require.NoError(t, err)
	require.Equal(t, 2, dec.Width())
	require.NoError(t, dec.Validate(g))
}

// TestRunSolveBadStrategy surfaces strategy parse errors.
func TestRunSolveBadStrategy(t *testing.T) {
	gr := writeFile(t, t.TempDir(), "p2.gr", "p tw 2 1\n1 2\n")
	_, _, err := runSolve(context.Background(), gr, true, "random", 0)
	require.Error(t, err)
}

// TestExecuteWidth drives the CLI through cobra with real arguments.
func TestExecuteWidth(t *testing.T) {
	dir := t.TempDir()
	gr := writeFile(t, dir, "k3.gr", "p tw 3 3\n1 2\n2 3\n3 1\n")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir)) // no treedec.toml here
	defer os.Chdir(wd)

	// width of K3 is 2 on both solver paths
	for _, extra := range [][]string{nil, {"--heuristic"}} {
		args := append([]string{"treedec", "width", gr}, extra...)
		os.Args = args
		require.NoError(t, Execute(context.Background()))
	}
}
