package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eca-density/internal/core"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ecaeval version "+version)
}

func TestEncode(t *testing.T) {
	out, err := execute(t, "--set", "v=3", "encode", "elementary", "--param", "rule=110")
	require.NoError(t, err)
	assert.Equal(t, "01110110\n", out)

	out, err = execute(t, "encode", "gkl")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 128)

	_, err = execute(t, "encode", "nope")
	assert.ErrorIs(t, err, core.ErrUnknownRule)
}

func TestRulesListsRegistry(t *testing.T) {
	out, err := execute(t, "--set", "v=3", "rules")
	require.NoError(t, err)
	for _, name := range []string{"gkl", "majority", "parity", "zero", "one", "identity", "elementary", "table"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "01101001", "parity fingerprint at v=3")
}

func TestInvalidConfigurationFails(t *testing.T) {
	_, err := execute(t, "--set", "v=4", "rules")
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}

func TestTraceConvergesWithZeroRule(t *testing.T) {
	out, err := execute(t, "--set", "n=16,v=3", "trace", "zero", "--steps", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "   0 "))
	assert.Equal(t, "   1 0000000000000000", lines[1])
	assert.Equal(t, "converged to 0 after 1 steps", lines[2])
}

func TestTraceBudget(t *testing.T) {
	out, err := execute(t, "--set", "n=16,v=3", "trace", "identity", "--steps", "3", "--glyphs")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, lines[0][5:], lines[3][5:], "identity keeps the configuration")
	assert.NotContains(t, lines[0][5:], "0")
	assert.Equal(t, "no convergence within 3 steps", lines[4])
}

func TestRunWritesReports(t *testing.T) {
	dir := t.TempDir()
	metrics := filepath.Join(dir, "metrics.prom")
	out, err := execute(t,
		"--set", "n=21,v=3,s=6,m=30",
		"--log-level", "error",
		"run", "zero", "parity",
		"--out", dir,
		"--format", "json,yaml",
		"--sqlite", "runs.db",
		"--metrics-file", metrics,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "zero")
	assert.Contains(t, out, "parity")

	for _, f := range []string{"zero.json", "zero.yaml", "parity.json", "parity.yaml", "runs.db"} {
		assert.FileExists(t, filepath.Join(dir, f))
	}
	assert.FileExists(t, metrics)
}

func TestParams(t *testing.T) {
	out, err := execute(t, "--set", "n=77", "params")
	require.NoError(t, err)
	assert.Contains(t, out, "[Automaton]")
	assert.Regexp(t, `n\s+77\s+Cells`, out)
	assert.Contains(t, out, "seed_offset")
}
