package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the complete CLI configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Cache   CacheConfig   `yaml:"cache"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig controls how images and integer matrices are read.
type InputConfig struct {
	PathValue int   `yaml:"path_value"`
	Invert    bool  `yaml:"invert"`
	Threshold uint8 `yaml:"threshold"`
}

// OutputConfig controls the rendered solution image.
type OutputConfig struct {
	Scale  int `yaml:"scale"`
	Margin int `yaml:"margin"`
}

// CacheConfig contains solution cache settings.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input:   InputConfig{PathValue: 1, Threshold: 128},
		Output:  OutputConfig{Scale: 1},
		Cache:   CacheConfig{Enabled: false, Dir: ".mazecache"},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(filename string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadEnv loads .env style files into the process environment. Missing files
// are skipped; variables already set are never overwritten.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	return nil
}

// ApplyEnv overrides fields from MAZE_* variables using lookup
// (os.LookupEnv in production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("MAZE_CACHE_DIR"); ok {
		c.Cache.Dir = v
	}
	if v, ok := lookup("MAZE_CACHE_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MAZE_CACHE_ENABLED: %w", err)
		}
		c.Cache.Enabled = b
	}
	if v, ok := lookup("MAZE_LOG_LEVEL"); ok {
		c.Logging.Level = v
	}
	if v, ok := lookup("MAZE_LOG_FORMAT"); ok {
		c.Logging.Format = v
	}
	if v, ok := lookup("MAZE_OUTPUT_SCALE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MAZE_OUTPUT_SCALE: %w", err)
		}
		c.Output.Scale = n
	}

	return c.Validate()
}

// Validate rejects settings the CLI cannot honor.
func (c *Config) Validate() error {
	if c.Output.Scale < 1 {
		return fmt.Errorf("config: output.scale must be at least 1, got %d", c.Output.Scale)
	}
	if c.Output.Margin < 0 {
		return fmt.Errorf("config: output.margin must not be negative, got %d", c.Output.Margin)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown logging.level %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown logging.format %q", c.Logging.Format)
	}
	if c.Cache.Enabled && strings.TrimSpace(c.Cache.Dir) == "" {
		return errors.New("config: cache.dir is empty")
	}

	return nil
}
