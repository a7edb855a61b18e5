// Package config loads haxxor CLI settings.
//
// Sources are merged with increasing priority: built-in defaults, an optional
// YAML file, HAXXOR_* environment variables, then explicitly set flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/zoobzio/haxxor"
)

// DefaultEnvPrefix is the default environment variable prefix.
const DefaultEnvPrefix = "HAXXOR_"

// Configuration keys.
const (
	KeyOutput     = "output"
	KeyLogLevel   = "log_level"
	KeyModule     = "module"
	KeyIncludeTag = "include_tag"
)

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

var logLevels = []string{"trace", "debug", "info", "warn", "error", "off"}

// Config holds the CLI settings.
type Config struct {
	Output     string `koanf:"output"`      // text, json, yaml, xml, msgpack or bson
	LogLevel   string `koanf:"log_level"`   // hclog level name
	Module     string `koanf:"module"`      // starting module of the shell
	IncludeTag bool   `koanf:"include_tag"` // encrypt writes the tag layer
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Output:     "text",
		LogLevel:   "warn",
		Module:     haxxor.SHA1.String(),
		IncludeTag: true,
	}
}

func (c Config) toMap() map[string]any {
	return map[string]any{
		KeyOutput:     c.Output,
		KeyLogLevel:   c.LogLevel,
		KeyModule:     c.Module,
		KeyIncludeTag: c.IncludeTag,
	}
}

// Validate checks the log level and module name.
// The output format is checked by the renderer that consumes it.
func (c Config) Validate() error {
	level := strings.ToLower(c.LogLevel)
	valid := false
	for _, l := range logLevels {
		if l == level {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}

	if algo, ok := haxxor.ParseAlgorithm(c.Module); !ok || algo == haxxor.Unset {
		return fmt.Errorf("%w: module %q", ErrInvalidConfig, c.Module)
	}
	return nil
}

// Loader merges configuration sources.
type Loader struct {
	k         *koanf.Koanf
	envPrefix string
	filePath  string
}

// Option configures a Loader.
type Option func(*Loader)

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithConfigFile sets the YAML file path. An empty path skips the file.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

// NewLoader creates a loader seeded with Default.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load merges defaults, file, environment and overrides, then validates.
// overrides holds explicitly set flags keyed by configuration key.
func (l *Loader) Load(overrides map[string]any) (Config, error) {
	if err := l.LoadMap(Default().toMap()); err != nil {
		return Config{}, err
	}

	if l.filePath != "" {
		if err := l.LoadFile(l.filePath); err != nil {
			return Config{}, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := l.LoadEnv(); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	if len(overrides) > 0 {
		if err := l.LoadMap(overrides); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile loads a YAML file.
func (l *Loader) LoadFile(path string) error {
	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("load file %s: %w", path, err)
	}
	return nil
}

// LoadEnv loads prefixed environment variables.
// HAXXOR_LOG_LEVEL=debug becomes log_level.
func (l *Loader) LoadEnv() error {
	transform := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, l.envPrefix))
	}

	if err := l.k.Load(env.Provider(l.envPrefix, ".", transform), nil); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// LoadMap loads values from a map.
func (l *Loader) LoadMap(data map[string]any) error {
	if err := l.k.Load(mapProvider(data), nil); err != nil {
		return fmt.Errorf("load map: %w", err)
	}
	return nil
}

// GetString returns a raw string value by key.
func (l *Loader) GetString(key string) string {
	return l.k.String(key)
}
