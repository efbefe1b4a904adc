// Package config loads the command-line driver's settings from YAML or TOML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shortestpath/graphio"
	"github.com/katalvlaran/shortestpath/report"
)

// ErrBadConfig wraps every validation and decoding failure.
var ErrBadConfig = errors.New("config: invalid configuration")

// Format names a configuration file syntax.
type Format int

const (
	YAML Format = iota
	TOML
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return YAML, fmt.Errorf("%w: unsupported extension %q", ErrBadConfig, filepath.Ext(path))
	}
}

// Config holds driver settings. Zero-valued fields in a file keep their defaults.
type Config struct {
	Workers     int    `yaml:"workers" toml:"workers"`           // solver pool size
	Rounding    string `yaml:"rounding" toml:"rounding"`         // truncate | round | exact
	LogLevel    string `yaml:"log_level" toml:"log_level"`       // debug | info | warn | error
	Strict      bool   `yaml:"strict" toml:"strict"`             // reject negative/asymmetric matrices up front
	MaxVertices int    `yaml:"max_vertices" toml:"max_vertices"` // parser limit on N
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Workers:     runtime.GOMAXPROCS(0),
		Rounding:    report.Truncate.String(),
		LogLevel:    "warn",
		MaxVertices: graphio.DefaultMaxVertices,
	}
}

// Load reads path, overlaying its values on Default, and validates the result.
func Load(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Decode(f, format)
}

// Decode reads a configuration in the given format from r.
// Unknown keys are rejected. An empty document yields Default().
func Decode(r io.Reader, format Format) (Config, error) {
	cfg := Default()
	switch format {
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&cfg)
		if err != nil {
			return Config{}, fmt.Errorf("%w: toml: %v", ErrBadConfig, err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return Config{}, fmt.Errorf("%w: unknown key %q", ErrBadConfig, keys[0].String())
		}
	default:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("%w: yaml: %v", ErrBadConfig, err)
		}
	}

	return cfg, cfg.Validate()
}

// Validate checks ranges and enum values.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrBadConfig, c.Workers)
	}
	if c.MaxVertices < 2 {
		return fmt.Errorf("%w: max_vertices must be >= 2, got %d", ErrBadConfig, c.MaxVertices)
	}
	if _, err := c.Policy(); err != nil {
		return fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	return nil
}

// Policy parses Rounding.
func (c Config) Policy() (report.Policy, error) {
	return report.ParsePolicy(c.Rounding)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}

	return l, nil
}
