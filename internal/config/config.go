// Package config loads tasklist settings from defaults, config files, a
// .env file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable the service reads.
const EnvPrefix = "TASKLIST_"

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

// Configuration represents the tasklist service configuration
type Configuration struct {
	ListenAddr       string  `koanf:"listen_addr" json:"listen_addr" yaml:"listen_addr" validate:"required"`
	Store            string  `koanf:"store" json:"store" yaml:"store" validate:"oneof=file memory postgres"`
	StateDir         string  `koanf:"state_dir" json:"state_dir" yaml:"state_dir" validate:"required_if=Store file"`
	DatabaseURL      string  `koanf:"database_url" json:"database_url" yaml:"database_url" validate:"required_if=Store postgres"`
	ReferenceURL     string  `koanf:"reference_url" json:"reference_url" yaml:"reference_url" validate:"omitempty,url"`
	ReferenceTimeout int     `koanf:"reference_timeout" json:"reference_timeout" yaml:"reference_timeout" validate:"min=1,max=300"`
	ReferenceRate    float64 `koanf:"reference_rate" json:"reference_rate" yaml:"reference_rate" validate:"min=0"`
	LogLevel         string  `koanf:"log_level" json:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat        string  `koanf:"log_format" json:"log_format" yaml:"log_format" validate:"oneof=text json"`
}

// ReferenceTimeoutDuration is the reference client timeout as a duration.
func (c *Configuration) ReferenceTimeoutDuration() time.Duration {
	return time.Duration(c.ReferenceTimeout) * time.Second
}

// Load loads configuration from global, local, .env and environment sources
// Priority: Environment variables > .env > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	return load(localConfigPath, DotEnvFile)
}

func load(localConfigPath, dotEnvPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if globalPath := GlobalConfigPath(); globalPath != "" {
		if err := loadFile(k, globalPath); err != nil {
			return nil, fmt.Errorf("failed to load global config: %w", err)
		}
	}

	if localConfigPath != "" {
		if err := loadFile(k, localConfigPath); err != nil {
			return nil, fmt.Errorf("failed to load local config: %w", err)
		}
	}

	// .env values sit below real environment variables and are never
	// exported into the process environment.
	if dotEnvPath != "" {
		vars, err := godotenv.Read(dotEnvPath)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", dotEnvPath, err)
		}
		for name, value := range vars {
			if strings.HasPrefix(name, EnvPrefix) {
				k.Set(envTransform(name), value)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.StateDir = expandHomePath(cfg.StateDir)

	if err := ValidateConfigValues(&cfg, localConfigPath); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GlobalConfigPath returns the per-user config file, or "" when none exists.
func GlobalConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	for _, name := range []string{"config.yml", "config.yaml", "config.json"} {
		path := filepath.Join(homeDir, ".tasklist", name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadFile merges a JSON or YAML file into k. Missing files are skipped.
func loadFile(k *koanf.Koanf, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := ValidateSyntax(data, path); err != nil {
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if isYAML(path) {
		return k.Load(file.Provider(path), yaml.Parser())
	}
	return k.Load(file.Provider(path), json.Parser())
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return true
	}
	return false
}

// envTransform converts environment variable names to config keys
// Example: TASKLIST_LOG_LEVEL -> log_level
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
