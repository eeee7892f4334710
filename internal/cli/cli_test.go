package cli_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longhike/dfs"
	"github.com/katalvlaran/longhike/internal/cli"
	"github.com/katalvlaran/longhike/internal/config"
)

func TestParse_Defaults(t *testing.T) {
	out := &bytes.Buffer{}
	opts, shouldExit, err := cli.Parse([]string{"map.txt"}, out, config.Default())
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, "map.txt", opts.MapPath)
	assert.Equal(t, []dfs.Policy{dfs.SlopesEnabled, dfs.SlopesIgnored}, opts.Policies)
	assert.Equal(t, config.Default(), opts.Config)
}

func TestParse_FlagsOverrideBase(t *testing.T) {
	base := config.Config{LogLevel: "debug", LogFormat: "json", Timeout: time.Minute}
	opts, _, err := cli.Parse([]string{
		"-policy", "noslopes", "-timeout", "5s", "-log-level", "WARN", "-log-format", "text", "map.txt",
	}, &bytes.Buffer{}, base)
	require.NoError(t, err)

	assert.Equal(t, []dfs.Policy{dfs.SlopesIgnored}, opts.Policies)
	assert.Equal(t, 5*time.Second, opts.Timeout)
	assert.Equal(t, "warn", opts.LogLevel)
	assert.Equal(t, "text", opts.LogFormat)
}

func TestParse_BaseUsedWhenFlagsAbsent(t *testing.T) {
	base := config.Config{LogLevel: "error", LogFormat: "json", Timeout: time.Minute}
	opts, _, err := cli.Parse([]string{"-policy", "slopes", "map.txt"}, &bytes.Buffer{}, base)
	require.NoError(t, err)
	assert.Equal(t, base, opts.Config)
	assert.Equal(t, []dfs.Policy{dfs.SlopesEnabled}, opts.Policies)
}

func TestParse_ShouldExit(t *testing.T) {
	out := &bytes.Buffer{}
	opts, shouldExit, err := cli.Parse([]string{"-h"}, out, config.Default())
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, opts)
	assert.Contains(t, out.String(), "Usage:")
}

// TestParse_MissingMap prints usage and fails with a usage exit code.
func TestParse_MissingMap(t *testing.T) {
	out := &bytes.Buffer{}
	opts, shouldExit, err := cli.Parse(nil, out, config.Default())
	assert.Nil(t, opts)
	assert.False(t, shouldExit)
	assert.Contains(t, out.String(), "Usage:")

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr), "want *cli.ExitError, got %v", err)
	assert.Equal(t, 2, exitErr.Code)
	assert.Equal(t, "missing MAP_FILE argument", exitErr.Message)
}

func TestParse_UsageErrors(t *testing.T) {
	cases := map[string][]string{
		"UnknownFlag":  {"-nope", "map.txt"},
		"BadPolicy":    {"-policy", "sideways", "map.txt"},
		"BadLogLevel":  {"-log-level", "loud", "map.txt"},
		"BadLogFormat": {"-log-format", "xml", "map.txt"},
		"NegativeTime": {"-timeout", "-1s", "map.txt"},
		"TwoMaps":      {"a.txt", "b.txt"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, shouldExit, err := cli.Parse(args, &bytes.Buffer{}, config.Default())
			assert.False(t, shouldExit)
			var exitErr *cli.ExitError
			require.True(t, errors.As(err, &exitErr), "want *cli.ExitError, got %v", err)
			assert.Equal(t, 2, exitErr.Code)
			assert.NotEmpty(t, exitErr.Error())
		})
	}
}
