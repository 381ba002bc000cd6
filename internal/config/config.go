package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/communityshift/scheduler/pkg/core/assign"
)

// EngineSettings holds the assignment engine thresholds. Zero values fall
// back to the engine defaults before validation.
type EngineSettings struct {
	SoftTarget       int  `yaml:"softTarget" validate:"min=1"`
	HardCeiling      int  `yaml:"hardCeiling" validate:"min=1,gtefield=SoftTarget"`
	MaxPasses        int  `yaml:"maxPasses" validate:"min=1"`
	SplitWeekday     *int `yaml:"splitWeekday,omitempty" validate:"omitempty,min=0,max=6"`
	EveningStartHour *int `yaml:"eveningStartHour,omitempty" validate:"omitempty,min=0,max=23"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string         `yaml:"databaseURL" validate:"required"`
	Engine      EngineSettings `yaml:"engine"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from shift_config.yaml,
// searching the current directory first, then the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEngineDefaults(&cfg.Engine)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// EngineConfig converts the settings into the engine's config struct
func (c *Config) EngineConfig() assign.EngineConfig {
	return assign.EngineConfig{
		SoftTarget:       c.Engine.SoftTarget,
		HardCeiling:      c.Engine.HardCeiling,
		MaxPasses:        c.Engine.MaxPasses,
		SplitWeekday:     *c.Engine.SplitWeekday,
		EveningStartHour: *c.Engine.EveningStartHour,
	}
}

// applyEngineDefaults fills unset engine settings with the engine defaults
func applyEngineDefaults(settings *EngineSettings) {
	defaults := assign.DefaultEngineConfig()

	if settings.SoftTarget == 0 {
		settings.SoftTarget = defaults.SoftTarget
	}
	if settings.HardCeiling == 0 {
		settings.HardCeiling = defaults.HardCeiling
	}
	if settings.MaxPasses == 0 {
		settings.MaxPasses = defaults.MaxPasses
	}
	if settings.SplitWeekday == nil {
		settings.SplitWeekday = &defaults.SplitWeekday
	}
	if settings.EveningStartHour == nil {
		settings.EveningStartHour = &defaults.EveningStartHour
	}
}

// findConfigFile searches for shift_config.yaml in the current directory and
// the user's home directory
func findConfigFile() (string, error) {
	configFileName := "shift_config.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
