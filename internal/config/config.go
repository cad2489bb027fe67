package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/jask/agebook/internal/directory"
)

// Config holds application configuration.
type Config struct {
	Seed SeedConfig
	Log  LogConfig
	UI   UIConfig
}

// SeedConfig controls which people a session starts with.
type SeedConfig struct {
	Path    string
	Samples bool
}

// LogConfig holds logger settings. An empty path disables logging.
type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Sort            string
	SuggestDistance int  `mapstructure:"suggest_distance"`
	AltScreen       bool `mapstructure:"alt_screen"`
}

// Path returns the config file location. AGEBOOK_CONFIG wins over the default.
func Path() string {
	if p := os.Getenv("AGEBOOK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(configHome(), "agebook", "config.toml")
}

func configHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(os.Getenv("HOME"), ".config")
}

// Load reads configuration from file and env. Env var overrides use prefix AGEBOOK_.
// An explicit path takes precedence over AGEBOOK_CONFIG.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("seed.path", "")
	v.SetDefault("seed.samples", true)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.sort", "")
	v.SetDefault("ui.suggest_distance", 3)
	v.SetDefault("ui.alt_screen", true)

	v.SetConfigType("toml")
	if path == "" {
		path = Path()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("AGEBOOK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file just means defaults and env
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the app cannot honour.
func (c Config) Validate() error {
	if c.UI.Sort != "" {
		if _, err := directory.ParseSortOption(c.UI.Sort); err != nil {
			return fmt.Errorf("ui.sort: %w", err)
		}
	}
	if c.UI.SuggestDistance < 0 {
		return fmt.Errorf("ui.suggest_distance must not be negative, got %d", c.UI.SuggestDistance)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Save writes the provided config to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("seed.path", cfg.Seed.Path)
	v.Set("seed.samples", cfg.Seed.Samples)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("ui.sort", cfg.UI.Sort)
	v.Set("ui.suggest_distance", cfg.UI.SuggestDistance)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
