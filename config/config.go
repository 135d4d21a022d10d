// Package config loads staticproof configuration from staticproof.toml,
// environment variables, and defaults, in that precedence order.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/staticproof/errors"
)

// ConfigFileName is the project configuration file discovered by walking up
// the directory tree from the working directory.
const ConfigFileName = "staticproof.toml"

// Config is the full staticproof configuration.
type Config struct {
	Check CheckConfig `mapstructure:"check"`
	Watch WatchConfig `mapstructure:"watch"`
}

// CheckConfig controls how proof obligations are evaluated.
type CheckConfig struct {
	// GOOS/GOARCH/Compiler select the platform whose storage sizes the
	// size-equivalence obligations are evaluated against. They default to
	// the host platform.
	GOOS     string `mapstructure:"goos"`
	GOARCH   string `mapstructure:"goarch"`
	Compiler string `mapstructure:"compiler"`

	// DeprecationNotices emits an informational notice when a renamed
	// assertion is used under its old name. Notices never fail a run.
	DeprecationNotices bool `mapstructure:"deprecation_notices"`

	// Packages are the default patterns checked when none are given on the
	// command line.
	Packages []string `mapstructure:"packages"`
}

// WatchConfig controls check --watch behavior.
type WatchConfig struct {
	// DebounceMS is the quiet period after a file change before re-checking.
	DebounceMS int `mapstructure:"debounce_ms"`
}

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the staticproof configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	// Environment variable binding: STATICPROOF_CHECK_GOARCH etc.
	v.SetEnvPrefix("STATICPROOF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	// Project config, if present, overrides defaults
	if path := findProjectConfig(); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		// Missing or unreadable project config falls back to defaults
		_ = v.ReadInConfig()
	}

	viperInstance = v
	return v
}

// findProjectConfig searches for staticproof.toml by walking up the
// directory tree. Returns the path to the first config file found, or empty
// string if none found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
