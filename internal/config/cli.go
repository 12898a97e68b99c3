package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/ytget/langlearn/internal/export"
	"github.com/ytget/langlearn/internal/platform"
	"github.com/ytget/langlearn/internal/vocab"
)

// EnvPrefix is the prefix of environment overrides, e.g. LANGLEARN_FILE
const EnvPrefix = "LANGLEARN"

// Config is the command-line configuration
type Config struct {
	File         string `yaml:"file" mapstructure:"file"`
	LoadPolicy   string `yaml:"load_policy" mapstructure:"load_policy"`
	ExportFormat string `yaml:"export_format" mapstructure:"export_format"`
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() *Config {
	return &Config{
		File:         platform.DefaultVocabularyPath(),
		LoadPolicy:   DefaultLoadPolicy,
		ExportFormat: string(export.FormatLang),
	}
}

// Load reads configuration from configFile, or from langlearn.yaml in the
// working directory or the user config directory when configFile is empty.
// Environment variables override file values; a missing file is not an error.
func Load(configFile string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetDefault("file", cfg.File)
	v.SetDefault("load_policy", cfg.LoadPolicy)
	v.SetDefault("export_format", cfg.ExportFormat)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("langlearn")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "langlearn"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "langlearn"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: failed to read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode: %w", err)
	}

	cfg.File = expandHome(cfg.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return fmt.Errorf("config: file is required")
	}
	if _, err := vocab.ParseLoadPolicy(c.LoadPolicy); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := export.ParseFormat(c.ExportFormat); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Policy returns the parsed load policy; call after Validate
func (c *Config) Policy() vocab.LoadPolicy {
	policy, _ := vocab.ParseLoadPolicy(c.LoadPolicy)
	return policy
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
