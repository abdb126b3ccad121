package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stmtcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("output", "", "")
	fs.String("continue-in-switch", "", "")
	fs.Bool("report-unreachable", false, "")
	fs.Int("jobs", 0, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultSeverity, cfg.ContinueInSwitch)
	assert.Equal(t, DefaultTransform, cfg.Transform)
	assert.False(t, cfg.ReportUnreachable)
	assert.Positive(t, cfg.Jobs)
	assert.Empty(t, cfg.File)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeFile(t, `
output: table
report_unreachable: true
continue_in_switch: warning
fold_ranges: true
constants:
  N: 8
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.File)
	assert.Equal(t, OutputTable, cfg.Output)
	assert.True(t, cfg.ReportUnreachable)
	assert.True(t, cfg.FoldRanges)
	assert.Equal(t, "warning", cfg.ContinueInSwitch)
	assert.Equal(t, map[string]int64{"N": 8}, cfg.Constants)

	t.Setenv("STMTCHECK_OUTPUT", "source")
	t.Setenv("STMTCHECK_REPORT_UNREACHABLE", "false")
	cfg, err = Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, OutputSource, cfg.Output)
	assert.False(t, cfg.ReportUnreachable)

	cfg, err = Load(path, newFlags(t, "--output", "text", "--jobs", "2"))
	require.NoError(t, err)
	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, 2, cfg.Jobs)
	// Unset flags do not override the file.
	assert.Equal(t, "warning", cfg.ContinueInSwitch)
}

func TestLoadReadsDefaultFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("transform: all\n"), 0o644))
	t.Chdir(dir)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultFile, cfg.File)
	assert.Equal(t, TransformAll, cfg.Transform)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		errSubstr string
	}{
		{"bad output", "output: json", "unknown output"},
		{"bad transform", "transform: inline", "unknown transform"},
		{"bad level", "log_level: loud", "invalid log_level"},
		{"bad severity", "continue_in_switch: fatal", "continue_in_switch"},
		{"no jobs", "jobs: 0", "jobs must be at least 1"},
		{"bad yaml", "output: [", "error reading config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLevel(t *testing.T) {
	cfg := &Config{LogLevel: "debug"}
	l, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)
}
