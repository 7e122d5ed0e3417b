package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/LegacyCodeHQ/solflat/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectBundle = "../testdata/project/bundle.json"

func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Subset(t, names, []string{"flatten", "graph", "watch", "why"})
}

func TestRootCommand_Version(t *testing.T) {
	stdout, _, err := executeRoot(t, "--version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "solflat version dev")
	assert.Contains(t, stdout, "Build date: unknown")
	assert.Contains(t, stdout, "Commit: unknown")
}

func TestRootCommand_VerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := executeRoot(t, "flatten", "-v", "-b", projectBundle)

	require.NoError(t, err)
	assert.Contains(t, stdout, "// File: contracts/Token.sol")
	assert.Contains(t, stderr, "level=DEBUG")
}

func TestRootCommand_MaxDepthFromEnvironment(t *testing.T) {
	t.Setenv("SOLFLAT_MAX_DEPTH", "2")

	_, _, err := executeRoot(t, "flatten", "-b", projectBundle)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "import chain exceeds depth limit 2")
}

func TestRootCommand_FlagOverridesEnvironment(t *testing.T) {
	t.Setenv("SOLFLAT_MAX_DEPTH", "2")

	stdout, _, err := executeRoot(t, "flatten", "--max-depth", "3", "-b", projectBundle)

	require.NoError(t, err)
	assert.Contains(t, stdout, "// File: @openzeppelin/contracts/utils/Context.sol")
}

func TestRootCommand_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "solflat.env")
	require.NoError(t, os.WriteFile(envFile, []byte("SOLFLAT_MAX_DEPTH=2\n"), 0o644))

	_, _, err := executeRoot(t, "flatten", "--env-file", envFile, "-b", projectBundle)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "depth limit 2")
}

func TestRootCommand_InvalidEnvironment(t *testing.T) {
	t.Setenv("SOLFLAT_MAX_DEPTH", "deep")

	_, _, err := executeRoot(t, "flatten", "-b", projectBundle)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SOLFLAT_MAX_DEPTH")
}

func TestApplyConfigDefaults_ReportsInvalidFlagValue(t *testing.T) {
	cmd := &cobra.Command{Use: "serve"}
	cmd.Flags().Bool("port", false, "")

	err := applyConfigDefaults(cmd, config.Config{Port: 4900})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to apply default for --port")
}

func TestApplyConfigDefaults_KeepsChangedFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "serve"}
	cmd.Flags().Int("port", 0, "")
	cmd.Flags().Int("max-depth", 0, "")
	require.NoError(t, cmd.Flags().Set("port", "8080"))

	require.NoError(t, applyConfigDefaults(cmd, config.Config{Port: 4900, MaxDepth: 7}))

	port, err := cmd.Flags().GetInt("port")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)
	depth, err := cmd.Flags().GetInt("max-depth")
	require.NoError(t, err)
	assert.Equal(t, 7, depth)
}
