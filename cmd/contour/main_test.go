package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isoline/contour"
)

const field = `
x: [0, 1, 2]
y: [0, 1, 2]
z:
  - [0, 0, 0]
  - [0, 4, 0]
  - [0, 0, 0]
`

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { contour.SetLogger(nil) })
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func writeField(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "field.yaml")
	require.NoError(t, os.WriteFile(path, []byte(field), 0o600))

	return path
}

func TestTrace_ExplicitLevels(t *testing.T) {
	out, _, err := run(t, "trace", writeField(t), "-l", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "level: 2")
	assert.Contains(t, out, "closed: true")
	assert.Contains(t, out, "x: [1, 0.5, 1, 1.5, 1]")
}

func TestTrace_JSONCount(t *testing.T) {
	out, _, err := run(t, "trace", writeField(t), "-n", "3", "-f", "json", "--workers", "2", "--partitions", "2")
	require.NoError(t, err)
	assert.Contains(t, out, `"level": 1`)
	assert.Contains(t, out, `"level": 3`)
}

func TestTrace_Verbose(t *testing.T) {
	_, stderr, err := run(t, "-v", "trace", writeField(t), "-l", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "contour: level traced")
}

func TestTrace_BadFlags(t *testing.T) {
	path := writeField(t)
	tests := [][]string{
		{"trace", path, "--workers", "-1"},
		{"trace", path, "--partitions", "0"},
		{"trace", path, "--decider", "coin"},
		{"trace", path, "-f", "xml"},
		{"trace", path, "-n", "0"},
		{"trace", path, "-l", "inf", "-f", "json"},
		{"trace", path, "-l", "1,-inf"},
		{"trace", path, "-l", "nan"},
		{"trace", filepath.Join(t.TempDir(), "missing.yaml")},
		{"trace"},
	}
	for _, args := range tests {
		_, _, err := run(t, args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestLevels(t *testing.T) {
	out, _, err := run(t, "levels", writeField(t), "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestTrace_NonFiniteLevelRejectedBeforeTracing(t *testing.T) {
	out, _, err := run(t, "trace", writeField(t), "-l", "inf", "-f", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not finite")
	assert.Empty(t, out)
}
