package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// EnvConfig names the environment variable holding a config path
const EnvConfig = "LOX_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Parser  ParserConfig  `toml:"parser"`
	REPL    REPLConfig    `toml:"repl"`
}

// GeneralConfig holds logging and output settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	NoColor   bool   `toml:"no_color"`
}

// ParserConfig holds parser limits
type ParserConfig struct {
	MaxDepth int `toml:"max_depth"`
}

// REPLConfig holds interactive prompt settings
type REPLConfig struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads path when given, then the file named by LOX_CONFIG,
// then ./lox.toml. Without any of them the defaults are returned.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return Load(env)
	}
	if _, err := os.Stat("lox.toml"); err == nil {
		return Load("lox.toml")
	}
	return Default(), nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warning"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.Parser.MaxDepth == 0 {
		c.Parser.MaxDepth = 255
	}

	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "> "
	}
	if c.REPL.HistoryFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		c.REPL.HistoryFile = filepath.Join(home, ".lox_history")
	}
	c.REPL.HistoryFile = os.ExpandEnv(c.REPL.HistoryFile)
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.General.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	switch c.General.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q: must be text or json", c.General.LogFormat)
	}
	if c.Parser.MaxDepth < 1 {
		return fmt.Errorf("invalid max_depth %d: must be at least 1", c.Parser.MaxDepth)
	}
	return nil
}
