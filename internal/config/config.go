package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Output formats understood by the CLI.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// Config represents the complete digitsplit configuration
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Cache  CacheConfig  `mapstructure:"cache"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	// Format is one of "text", "table" or "yaml"
	Format string `mapstructure:"format"`
	// Color enables coloured terminal output
	Color bool `mapstructure:"color"`
}

// CacheConfig controls the decomposition cache
type CacheConfig struct {
	// Size is the number of decompositions kept in memory (0 disables the cache)
	Size int `mapstructure:"size"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: FormatText,
			Color:  true,
		},
		Cache: CacheConfig{
			Size: 256,
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("output.color", defaults.Output.Color)
	v.SetDefault("cache.size", defaults.Cache.Size)
}

// NewViper prepares a viper instance with defaults, environment overrides
// (DIGITSPLIT_OUTPUT_FORMAT etc.) and, when present, the config file.
// An explicit cfgFile must exist; the default location may be absent.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
	}

	v.SetEnvPrefix("DIGITSPLIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return v, nil
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "digitsplit")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".digitsplit"
	}
	return filepath.Join(home, ".config", "digitsplit")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
