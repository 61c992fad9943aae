package config

import (
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	// Step 1: Start with defaults (already done in NewConfig)

	// Step 2: Load from environment variables
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	// Step 3: Validate the configuration
	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	// Load base configuration
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	// Apply command line overrides
	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Database overrides
	DBDir          *string
	DBFilename     *string
	DBQueryTimeout *time.Duration
	DBWriteTimeout *time.Duration

	// Display overrides
	NoColor    *bool
	DateFormat *string

	// Validation overrides
	TaskNameMinLength *int
	TaskNameMaxLength *int

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	// Database overrides
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.DBQueryTimeout != nil {
		config.Database.QueryTimeout = *overrides.DBQueryTimeout
	}
	if overrides.DBWriteTimeout != nil {
		config.Database.WriteTimeout = *overrides.DBWriteTimeout
	}

	// Display overrides
	if overrides.NoColor != nil {
		config.Display.NoColor = *overrides.NoColor
	}
	if overrides.DateFormat != nil {
		config.Display.DateFormat = *overrides.DateFormat
	}

	// Validation overrides
	if overrides.TaskNameMinLength != nil {
		config.Validation.TaskNameMinLength = *overrides.TaskNameMinLength
	}
	if overrides.TaskNameMaxLength != nil {
		config.Validation.TaskNameMaxLength = *overrides.TaskNameMaxLength
	}

	// Application overrides
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
