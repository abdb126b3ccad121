// Package config loads stmtcheck settings from defaults, a YAML file,
// STMTCHECK_ environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/t14raptor/go-stmt/checker"
)

const (
	DefaultFile     = "stmtcheck.yaml"
	DefaultOutput   = "text"
	DefaultLogLevel = "warn"
	DefaultSeverity = "error"
	EnvPrefix       = "STMTCHECK_"
)

const (
	OutputText   = "text"
	OutputTable  = "table"
	OutputSource = "source"
)

const (
	TransformNone     = "none"
	TransformSimplify = "simplify"
	TransformDCE      = "deadcode"
	TransformAll      = "all"
	DefaultTransform  = TransformNone
)

type Config struct {
	LogLevel string `koanf:"log_level"`
	Output   string `koanf:"output"`
	Jobs     int    `koanf:"jobs"`

	// ContinueInSwitch is the severity of a continue inside a switch that
	// has no loop around it.
	ContinueInSwitch  string `koanf:"continue_in_switch"`
	ReportUnreachable bool   `koanf:"report_unreachable"`
	FoldRanges        bool   `koanf:"fold_ranges"`

	// Transform selects the rewrites applied before printing.
	Transform    string `koanf:"transform"`
	DropBindings bool   `koanf:"drop_bindings"`

	// Constants are the names compile-time range bounds may refer to.
	Constants map[string]int64 `koanf:"constants"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

func defaults() map[string]any {
	return map[string]any{
		"log_level":          DefaultLogLevel,
		"output":             DefaultOutput,
		"jobs":               runtime.GOMAXPROCS(0),
		"continue_in_switch": DefaultSeverity,
		"report_unreachable": false,
		"fold_ranges":        false,
		"transform":          DefaultTransform,
		"drop_bindings":      false,
	}
}

// Load builds the configuration. cfgFile may be empty, in which case
// DefaultFile is read when it exists. flags may be nil; only flags that
// were set on the command line take part.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	path := cfgFile
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// STMTCHECK_FOLD_RANGES -> fold_ranges
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputTable, OutputSource:
	default:
		return fmt.Errorf("unknown output %q (want %s, %s or %s)", c.Output, OutputText, OutputTable, OutputSource)
	}
	switch c.Transform {
	case TransformNone, TransformSimplify, TransformDCE, TransformAll:
	default:
		return fmt.Errorf("unknown transform %q", c.Transform)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := checker.ParseSeverity(c.ContinueInSwitch); err != nil {
		return fmt.Errorf("continue_in_switch: %w", err)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
