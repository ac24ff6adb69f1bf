package config

import (
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"

	"github.com/dshills/stormcmd/internal/config/loader"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "STORMCMD_"

// Config is the resolved application configuration.
type Config struct {
	// Platform selects label normalization and keystroke rendering.
	Platform string `toml:"platform" yaml:"platform" json:"platform" env:"PLATFORM"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"logLevel" yaml:"logLevel" json:"logLevel" env:"LOG_LEVEL"`

	// MenuPaths are menu fragment files merged in order.
	MenuPaths []string `toml:"menus" yaml:"menus" json:"menus" env:"MENUS" envSeparator:","`

	// PluginPaths are Lua plugin files loaded in order.
	PluginPaths []string `toml:"plugins" yaml:"plugins" json:"plugins" env:"PLUGINS" envSeparator:","`

	// Tree is the chain of element tags built for dispatch, root first.
	Tree []string `toml:"tree" yaml:"tree" json:"tree" env:"TREE" envSeparator:","`

	// Keymap binds command names to keystrokes such as "ctrl-s". It feeds
	// menu accelerators and command listings.
	Keymap map[string]string `toml:"keymap" yaml:"keymap" json:"keymap"`

	// Watch reloads menu fragments when their files change.
	Watch bool `toml:"watch" yaml:"watch" json:"watch" env:"WATCH"`

	// Debounce coalesces bursts of file changes.
	Debounce Duration `toml:"debounce" yaml:"debounce" json:"debounce" env:"DEBOUNCE"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Platform: runtime.GOOS,
		LogLevel: "info",
		Tree:     []string{"workspace", "pane", "text-editor"},
		Debounce: Duration(200 * time.Millisecond),
	}
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	fs          loader.FileSystem
	environment map[string]string
}

// WithFS reads the config file from fsys.
func WithFS(fsys loader.FileSystem) LoadOption {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithEnvironment reads variables from environ instead of the process
// environment.
func WithEnvironment(environ map[string]string) LoadOption {
	return func(o *loadOptions) {
		o.environment = environ
	}
}

// Load resolves defaults, the file at path (if path is non-empty and the file
// exists) and the environment, then validates the result.
func Load(path string, opts ...LoadOption) (Config, error) {
	o := loadOptions{fs: loader.DefaultFS()}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := Default()

	if path != "" {
		l, err := loader.ForPathWithFS(o.fs, path)
		if err != nil {
			return Config{}, err
		}
		if _, err := l.LoadInto(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("loading config: %w", err)
		}
	}

	envOpts := env.Options{Prefix: EnvPrefix}
	if o.environment != nil {
		envOpts.Environment = o.environment
	}
	if err := env.ParseWithOptions(&cfg, envOpts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for unusable values.
func (c Config) Validate() error {
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	if len(c.Tree) == 0 {
		return ErrEmptyTree
	}
	if c.Debounce < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDebounce, c.Debounce)
	}
	return nil
}

// Level returns the log level as understood by the logger.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
