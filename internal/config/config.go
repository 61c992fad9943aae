package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the task desk application
type Config struct {
	Database    DatabaseConfig
	Display     DisplayConfig
	Validation  ValidationConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TD_DB_DIR"`
	Filename       string        `env:"TD_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TD_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TD_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TD_DB_DIR_PERMISSIONS"`
}

// DisplayConfig holds dashboard display configuration
type DisplayConfig struct {
	NoColor    bool   `env:"TD_DISPLAY_NO_COLOR"`
	DateFormat string `env:"TD_DISPLAY_DATE_FORMAT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskNameMinLength int `env:"TD_VALIDATION_TASK_NAME_MIN"`
	TaskNameMaxLength int `env:"TD_VALIDATION_TASK_NAME_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TD_APP_TIMEOUT"`
	Verbose bool          `env:"TD_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".td")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "td.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			NoColor:    false,
			DateFormat: "2006-01-02",
		},
		Validation: ValidationConfig{
			TaskNameMinLength: 1,
			TaskNameMaxLength: 255,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("TD_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TD_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TD_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("TD_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("TD_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Display configuration
	if noColor := os.Getenv("TD_DISPLAY_NO_COLOR"); noColor != "" {
		if b, err := strconv.ParseBool(noColor); err == nil {
			c.Display.NoColor = b
		}
	}
	if format := os.Getenv("TD_DISPLAY_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}

	// Validation configuration
	if minLen := os.Getenv("TD_VALIDATION_TASK_NAME_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.TaskNameMinLength = n
		}
	}
	if maxLen := os.Getenv("TD_VALIDATION_TASK_NAME_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TaskNameMaxLength = n
		}
	}

	// Application configuration
	if timeout := os.Getenv("TD_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TD_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate display configuration
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}

	// Validate validation configuration
	if c.Validation.TaskNameMinLength < 1 {
		return &ConfigError{Field: "validation.task_name_min_length", Message: "task name minimum length must be at least 1"}
	}
	if c.Validation.TaskNameMaxLength < c.Validation.TaskNameMinLength {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length must be greater than minimum length"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
