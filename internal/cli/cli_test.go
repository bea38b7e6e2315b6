package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/gpx-track-splitter/config"
)

func TestParse_Help(t *testing.T) {
	for _, arg := range []string{"-h", "--help", "-help"} {
		t.Run(arg, func(t *testing.T) {
			out := &bytes.Buffer{}
			opts, shouldExit, err := Parse([]string{arg}, out)

			require.NoError(t, err)
			assert.True(t, shouldExit)
			assert.Nil(t, opts)
			assert.Contains(t, out.String(), "Usage:")
			assert.Contains(t, out.String(), "input_file")
		})
	}
}

func TestParse_Version(t *testing.T) {
	out := &bytes.Buffer{}
	_, shouldExit, err := Parse([]string{"-version"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Contains(t, out.String(), "gpx-track-splitter dev")
}

func TestParse_MissingInput(t *testing.T) {
	out := &bytes.Buffer{}
	_, shouldExit, err := Parse([]string{}, out)

	assert.False(t, shouldExit)
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "input_file")
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_TooManyArguments(t *testing.T) {
	_, _, err := Parse([]string{"a.gpx", "b.gpx"}, &bytes.Buffer{})

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "b.gpx")
}

func TestParse_UnknownFlag(t *testing.T) {
	_, _, err := Parse([]string{"-frobnicate", "a.gpx"}, &bytes.Buffer{})

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
}

func TestParse_Defaults(t *testing.T) {
	opts, shouldExit, err := Parse([]string{"Current.gpx"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, "Current.gpx", opts.InputPath)
	assert.Equal(t, config.Default(), *opts.Config)
}

func TestParse_FlagsAroundInput(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantInput     string
		wantWaypoints bool
		wantIndent    int
	}{
		{name: "flags before", args: []string{"-no-waypoints", "-indent", "4", "in.gpx"}, wantInput: "in.gpx", wantIndent: 4},
		{name: "flags after", args: []string{"in.gpx", "-no-waypoints", "-indent", "4"}, wantInput: "in.gpx", wantIndent: 4},
		{name: "flags on both sides", args: []string{"-indent", "4", "in.gpx", "-no-waypoints"}, wantInput: "in.gpx", wantIndent: 4},
		{name: "terminator", args: []string{"--", "-dash.gpx"}, wantInput: "-dash.gpx", wantWaypoints: true, wantIndent: config.DefaultIndent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, shouldExit, err := Parse(tt.args, &bytes.Buffer{})
			require.NoError(t, err)
			assert.False(t, shouldExit)

			assert.Equal(t, tt.wantInput, opts.InputPath)
			assert.Equal(t, tt.wantWaypoints, opts.Config.Include.Waypoints)
			assert.Equal(t, tt.wantIndent, opts.Config.Output.Indent)
		})
	}
}

func TestParse_ExtraArgumentAfterFlags(t *testing.T) {
	_, _, err := Parse([]string{"a.gpx", "-no-waypoints", "b.gpx"}, &bytes.Buffer{})

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "b.gpx")
}

func TestParse_FlagsOverrideConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "split.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
output:
  naming: name
  indent: 4
  dir: from-config
logging:
  format: json
`), 0o644))

	opts, _, err := Parse([]string{
		"-config", cfgPath,
		"-out", "from-flag",
		"-indent", "0",
		"-no-waypoints",
		"-no-overwrite",
		"-log-level", "debug",
		"Current.gpx",
	}, &bytes.Buffer{})
	require.NoError(t, err)

	cfg := opts.Config
	assert.Equal(t, "from-flag", cfg.Output.Dir)
	assert.Equal(t, 0, cfg.Output.Indent)
	assert.Equal(t, config.NamingName, cfg.Output.Naming, "unset flag keeps the config value")
	assert.False(t, cfg.Include.Waypoints)
	assert.False(t, cfg.Output.Overwrite)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestParse_InvalidFlagValues(t *testing.T) {
	tests := [][]string{
		{"-naming", "random", "a.gpx"},
		{"-log-level", "loud", "a.gpx"},
		{"-log-format", "xml", "a.gpx"},
		{"-indent", "20", "a.gpx"},
	}
	for _, args := range tests {
		t.Run(args[0], func(t *testing.T) {
			_, _, err := Parse(args, &bytes.Buffer{})

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "expected ExitError, got %v", err)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}

func TestParse_MissingConfigFile(t *testing.T) {
	_, _, err := Parse([]string{"-config", filepath.Join(t.TempDir(), "nope.yml"), "a.gpx"}, &bytes.Buffer{})

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
}
