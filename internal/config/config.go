package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".csstok.toml"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSS  = "css"
)

// Config holds the options of the csstok command.
type Config struct {
	// Format is one of "text", "json" or "css".
	Format string `toml:"format"`

	// SkipComments and SkipWhitespace drop those tokens from the output.
	SkipComments   bool `toml:"skip_comments"`
	SkipWhitespace bool `toml:"skip_whitespace"`

	// Decode prints token values with escapes decoded.
	Decode bool `toml:"decode"`

	// LogLevel is a zap level name such as "debug" or "info".
	LogLevel string `toml:"log_level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Format:   FormatText,
		LogLevel: "info",
	}
}

// Load reads a configuration file. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	c := Default()
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return c, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the format and log level.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatCSS:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level, or info if it is invalid.
func (c *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
