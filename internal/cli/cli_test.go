package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{}, out)

	require.NoError(t, err)
	assert.False(t, shouldExit)
	require.NotNil(t, cfg)
	assert.Equal(t, "", cfg.InputPath, "no path means the dump comes from stdin")
	assert.Equal(t, "", cfg.Format)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Quiet)
}

func TestParse_PositionalPath(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, _, err := Parse([]string{"dump.txt"}, out)

	require.NoError(t, err)
	assert.Equal(t, "dump.txt", cfg.InputPath)
}

func TestParse_FileFlagWinsOverPositional(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, _, err := Parse([]string{"-file", "from-flag.txt", "positional.txt"}, out)

	require.NoError(t, err)
	assert.Equal(t, "from-flag.txt", cfg.InputPath)

	cfg, _, err = Parse([]string{"-f", "short.txt"}, out)
	require.NoError(t, err)
	assert.Equal(t, "short.txt", cfg.InputPath)
}

func TestParse_AllFlags(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{
		"-format", "topology",
		"-uac", "2.0",
		"-report-config", "report.hcl",
		"-log-format", "json",
		"-log-level", "debug",
		"-q",
		"dump.txt",
	}, out)

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, "topology", cfg.Format)
	assert.Equal(t, "2.0", cfg.UACVersion)
	assert.Equal(t, "report.hcl", cfg.ReportConfigPath)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Quiet)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_InvalidValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"bad format", []string{"-format", "yaml"}, "invalid format"},
		{"bad log format", []string{"-log-format", "xml"}, "invalid log-format"},
		{"bad log level", []string{"-log-level", "verbose"}, "invalid log-level"},
		{"bad uac version", []string{"-uac", "4.0"}, "invalid UAC version"},
		{"unknown flag", []string{"--bogus"}, "flag provided but not defined"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc := tc
			t.Parallel()
			out := &bytes.Buffer{}
			cfg, _, err := Parse(tc.args, out)
			require.Error(t, err)
			assert.Nil(t, cfg)

			exitErr, ok := err.(*ExitError)
			require.True(t, ok, "validation failures must carry an exit code")
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
