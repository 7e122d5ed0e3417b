package internal

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	flattencmd "github.com/LegacyCodeHQ/solflat/cmd/flatten"
	graphcmd "github.com/LegacyCodeHQ/solflat/cmd/graph"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// ProjectBundle returns the path of the shared compilation bundle fixture.
func ProjectBundle(t *testing.T) string {
	t.Helper()
	return filepath.Join(RepoRoot(t), "testdata", "project", "bundle.json")
}

// ProjectStandardJSON returns the paths of the shared solc standard-JSON fixtures.
func ProjectStandardJSON(t *testing.T) (input, output string) {
	t.Helper()
	dir := filepath.Join(RepoRoot(t), "testdata", "project")
	return filepath.Join(dir, "input.json"), filepath.Join(dir, "output.json")
}

func FlattenSubcommand(t *testing.T, args ...string) string {
	t.Helper()
	return execute(t, flattencmd.NewCommand(), args)
}

func GraphSubcommand(t *testing.T, format string, args ...string) string {
	t.Helper()
	out := execute(t, graphcmd.NewCommand(), append([]string{"-f", format}, args...))
	return strings.TrimRight(out, "\n")
}

func execute(t *testing.T, cmd *cobra.Command, args []string) string {
	t.Helper()

	cmd.SetArgs(args)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	require.NoError(t, err, "stderr: %s", strings.TrimSpace(stderr.String()))

	return stdout.String()
}

func RepoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)

	repoRoot := wd
	for i := 0; i < 10; i++ {
		_, err = os.Stat(filepath.Join(repoRoot, "go.mod"))
		if err == nil {
			return repoRoot
		}

		parent := filepath.Dir(repoRoot)
		if parent == repoRoot {
			break
		}
		repoRoot = parent
	}

	require.NoError(t, err, "expected repo root with go.mod, got %s", repoRoot)
	return repoRoot
}
