package longhike_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longhike"
	"github.com/katalvlaran/longhike/dfs"
	"github.com/katalvlaran/longhike/gridgraph"
	"github.com/katalvlaran/longhike/internal/ctxlog"
)

const examplePath = "testdata/example.txt"

// writeMap stores content in a temporary map file.
func writeMap(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLongestPathWithSlopes(t *testing.T) {
	n, err := longhike.LongestPathWithSlopes(examplePath)
	require.NoError(t, err)
	assert.Equal(t, 94, n)
}

func TestLongestPathWithoutSlopes(t *testing.T) {
	n, err := longhike.LongestPathWithoutSlopes(examplePath)
	require.NoError(t, err)
	assert.Equal(t, 154, n)
}

func TestEntryPoints_Errors(t *testing.T) {
	cases := []struct {
		name string
		path string
		want error
	}{
		{"MissingFile", filepath.Join(t.TempDir(), "absent.txt"), gridgraph.ErrMalformedInput},
		{"Ragged", writeMap(t, "#.#\n#.\n"), gridgraph.ErrMalformedInput},
		{"NoEntrance", writeMap(t, "###\n#.#\n"), gridgraph.ErrNoStartFound},
		{"Enclosed", writeMap(t, "#.#\n###\n#.#\n"), dfs.ErrNoPathFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := longhike.LongestPathWithSlopes(tc.path)
			assert.ErrorIs(t, err, tc.want)
			_, err = longhike.LongestPathWithoutSlopes(tc.path)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLongestPath_Boundary(t *testing.T) {
	n, err := longhike.LongestPathWithSlopes(writeMap(t, "#.#\n#.#\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, n, "adjacent rows are one step apart")

	n, err = longhike.LongestPathWithoutSlopes(writeMap(t, "#.#\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, n, "a single-row map is already at the goal")
}

func TestSolve_LogsRun(t *testing.T) {
	var buf bytes.Buffer
	logger, err := ctxlog.New(&buf, "debug", "text")
	require.NoError(t, err)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	res, err := longhike.Solve(ctx, examplePath, dfs.SlopesEnabled, dfs.WithTrace())
	require.NoError(t, err)
	assert.Equal(t, 94, res.Length)
	assert.Len(t, res.Path, 95)

	out := buf.String()
	assert.Contains(t, out, "run_id=")
	assert.Contains(t, out, "policy=slopes")
	assert.Contains(t, out, "length=94")
	assert.Contains(t, out, "msg=\"Map loaded.\"")
}

func TestSolve_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := longhike.Solve(ctx, examplePath, dfs.SlopesIgnored)
	assert.ErrorIs(t, err, context.Canceled)
}
