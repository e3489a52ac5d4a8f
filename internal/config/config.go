package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ian-shakespeare/minicc/pkg/array"
)

const EnvVar = "MINICC_CONFIG"

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")

	formats = []string{"text", "yaml"}
)

// Config holds the driver settings. Flags override these values.
type Config struct {
	Output OutputConfig `toml:"output" yaml:"output"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

type OutputConfig struct {
	Format     string `toml:"format" yaml:"format"`
	Color      bool   `toml:"color" yaml:"color"`
	ShowTokens bool   `toml:"show_tokens" yaml:"show_tokens"`
}

type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format:     "text",
			Color:      true,
			ShowTokens: true,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load decodes a TOML or YAML file, chosen by extension, on top of Default.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by MINICC_CONFIG, or the defaults when it
// is unset.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

func (c *Config) Validate() error {
	if !array.Contains(formats, c.Output.Format) {
		return fmt.Errorf("invalid output format %q: must be one of %s", c.Output.Format, strings.Join(formats, ", "))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}
