// Package config loads pydown settings from a TOML file.
//
//	[generate]
//	provider = "auto"      # auto, go, manifest, python
//	format   = "markdown"  # markdown, html
//	workers  = 4
//
//	[python]
//	interpreter = "python3"
//
//	[log]
//	level = "info"
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// Provider names.
const (
	ProviderAuto     = "auto"
	ProviderGo       = "go"
	ProviderManifest = "manifest"
	ProviderPython   = "python"
)

// Output formats.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Config holds the complete pydown configuration.
type Config struct {
	Generate GenerateConfig `toml:"generate"`
	Python   PythonConfig   `toml:"python"`
	Log      LogConfig      `toml:"log"`
}

// GenerateConfig controls document generation.
type GenerateConfig struct {
	Provider string `toml:"provider"`
	Format   string `toml:"format"`
	// Workers bounds concurrent symbol rendering; 0 means GOMAXPROCS.
	Workers int `toml:"workers"`
}

// PythonConfig configures the Python introspection provider.
type PythonConfig struct {
	Interpreter string `toml:"interpreter"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Generate: GenerateConfig{
			Provider: ProviderAuto,
			Format:   FormatMarkdown,
		},
		Python: PythonConfig{Interpreter: "python3"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. Keys that Config does not define are
// an error, so typos are not silently ignored.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config: %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every setting has an allowed value.
func (c Config) Validate() error {
	switch c.Generate.Provider {
	case ProviderAuto, ProviderGo, ProviderManifest, ProviderPython:
	default:
		return fmt.Errorf("unknown provider %q (want auto, go, manifest or python)", c.Generate.Provider)
	}
	switch c.Generate.Format {
	case FormatMarkdown, FormatHTML:
	default:
		return fmt.Errorf("unknown format %q (want markdown or html)", c.Generate.Format)
	}
	if c.Generate.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Generate.Workers)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// LogLevel returns the configured log level.
func (c Config) LogLevel() logrus.Level {
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
