package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "td.db", cfg.Database.Filename)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 5*time.Second, cfg.Database.WriteTimeout)
	assert.Equal(t, uint32(0755), cfg.Database.DirPermissions)
	assert.False(t, cfg.Display.NoColor)
	assert.Equal(t, "2006-01-02", cfg.Display.DateFormat)
	assert.Equal(t, 1, cfg.Validation.TaskNameMinLength)
	assert.Equal(t, 255, cfg.Validation.TaskNameMaxLength)
	assert.Equal(t, 60*time.Second, cfg.Application.Timeout)
	assert.False(t, cfg.Application.Verbose)
}

func TestConfig_GetDatabasePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = "/data/td"
	cfg.Database.Filename = "tasks.db"

	assert.Equal(t, filepath.Join("/data/td", "tasks.db"), cfg.GetDatabasePath())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Run("should override defaults from the environment", func(t *testing.T) {
		t.Setenv("TD_DB_DIR", "/custom/dir")
		t.Setenv("TD_DB_FILENAME", "custom.db")
		t.Setenv("TD_DB_QUERY_TIMEOUT", "20s")
		t.Setenv("TD_DISPLAY_NO_COLOR", "true")
		t.Setenv("TD_DISPLAY_DATE_FORMAT", "02/01/2006")
		t.Setenv("TD_VALIDATION_TASK_NAME_MAX", "100")
		t.Setenv("TD_APP_TIMEOUT", "90s")
		t.Setenv("TD_APP_VERBOSE", "true")

		cfg := NewConfig()
		require.NoError(t, cfg.LoadFromEnvironment())

		assert.Equal(t, "/custom/dir", cfg.Database.Dir)
		assert.Equal(t, "custom.db", cfg.Database.Filename)
		assert.Equal(t, 20*time.Second, cfg.Database.QueryTimeout)
		assert.True(t, cfg.Display.NoColor)
		assert.Equal(t, "02/01/2006", cfg.Display.DateFormat)
		assert.Equal(t, 100, cfg.Validation.TaskNameMaxLength)
		assert.Equal(t, 90*time.Second, cfg.Application.Timeout)
		assert.True(t, cfg.Application.Verbose)
	})

	t.Run("should ignore malformed values", func(t *testing.T) {
		t.Setenv("TD_DB_QUERY_TIMEOUT", "not-a-duration")
		t.Setenv("TD_DISPLAY_NO_COLOR", "not-a-bool")
		t.Setenv("TD_VALIDATION_TASK_NAME_MAX", "not-a-number")

		cfg := NewConfig()
		require.NoError(t, cfg.LoadFromEnvironment())

		assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
		assert.False(t, cfg.Display.NoColor)
		assert.Equal(t, 255, cfg.Validation.TaskNameMaxLength)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:   "should accept the defaults",
			mutate: func(c *Config) {},
		},
		{
			name:      "should reject an empty database dir",
			mutate:    func(c *Config) { c.Database.Dir = "" },
			wantField: "database.dir",
		},
		{
			name:      "should reject an empty database filename",
			mutate:    func(c *Config) { c.Database.Filename = "" },
			wantField: "database.filename",
		},
		{
			name:      "should reject a non-positive query timeout",
			mutate:    func(c *Config) { c.Database.QueryTimeout = 0 },
			wantField: "database.query_timeout",
		},
		{
			name:      "should reject a non-positive write timeout",
			mutate:    func(c *Config) { c.Database.WriteTimeout = -time.Second },
			wantField: "database.write_timeout",
		},
		{
			name:      "should reject an empty date format",
			mutate:    func(c *Config) { c.Display.DateFormat = "" },
			wantField: "display.date_format",
		},
		{
			name:      "should reject a zero minimum name length",
			mutate:    func(c *Config) { c.Validation.TaskNameMinLength = 0 },
			wantField: "validation.task_name_min_length",
		},
		{
			name: "should reject a maximum below the minimum",
			mutate: func(c *Config) {
				c.Validation.TaskNameMinLength = 10
				c.Validation.TaskNameMaxLength = 5
			},
			wantField: "validation.task_name_max_length",
		},
		{
			name:      "should reject a non-positive application timeout",
			mutate:    func(c *Config) { c.Application.Timeout = 0 },
			wantField: "application.timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			configErr, ok := err.(*ConfigError)
			require.True(t, ok)
			assert.Equal(t, tt.wantField, configErr.Field)
		})
	}
}

func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{Field: "database.dir", Message: "cannot be empty"}
	assert.Equal(t, "database.dir: cannot be empty", err.Error())
}
