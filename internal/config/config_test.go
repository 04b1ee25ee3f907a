package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	vars := map[string]string{
		"CUSTODY_PRIMARY__ENV":                  "development",
		"CUSTODY_SERVER__PORT":                  "8080",
		"CUSTODY_SERVER__READ_TIMEOUT":          "30",
		"CUSTODY_SERVER__WRITE_TIMEOUT":         "30",
		"CUSTODY_SERVER__IDLE_TIMEOUT":          "60",
		"CUSTODY_SERVER__CORS_ALLOWED_ORIGINS":  "http://localhost:3000,http://localhost:5173",
		"CUSTODY_DATABASE__HOST":                "localhost",
		"CUSTODY_DATABASE__PORT":                "5432",
		"CUSTODY_DATABASE__USER":                "postgres",
		"CUSTODY_DATABASE__PASSWORD":            "p@ss:word",
		"CUSTODY_DATABASE__NAME":                "custody",
		"CUSTODY_DATABASE__SSL_MODE":            "disable",
		"CUSTODY_DATABASE__MAX_OPEN_CONNS":      "25",
		"CUSTODY_DATABASE__MAX_IDLE_CONNS":      "5",
		"CUSTODY_DATABASE__CONN_MAX_LIFETIME":   "300",
		"CUSTODY_DATABASE__CONN_MAX_IDLE_TIME":  "60",
		"CUSTODY_REDIS__ADDRESS":                "localhost:6379",
		"CUSTODY_INTEGRATION__RESEND_API_KEY":   "re_test",
		"CUSTODY_INTEGRATION__EMAIL_FROM":       "custody@example.com",
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, "re_test", cfg.Integration.ResendAPIKey)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, 100*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CUSTODY_DATABASE__HOST", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "::1",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:word",
		Name:     "custody",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://postgres:p%40ss%3Aword@[::1]:5432/custody?sslmode=disable", d.DSN())
}

func TestObservabilityConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ObservabilityConfig)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(c *ObservabilityConfig) {}},
		{
			name:    "unknown level",
			mutate:  func(c *ObservabilityConfig) { c.Logging.Level = "verbose" },
			wantErr: "invalid logging level",
		},
		{
			name:    "unknown format",
			mutate:  func(c *ObservabilityConfig) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format",
		},
		{
			name:    "negative slow query threshold",
			mutate:  func(c *ObservabilityConfig) { c.Logging.SlowQueryThreshold = -time.Second },
			wantErr: "slow_query_threshold",
		},
		{
			name:    "health check timeout too small",
			mutate:  func(c *ObservabilityConfig) { c.HealthChecks.Timeout = 10 * time.Millisecond },
			wantErr: "health_checks timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultObservabilityConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	c := DefaultObservabilityConfig()
	c.Logging.Level = ""

	c.Environment = "production"
	assert.Equal(t, "info", c.GetLogLevel())

	c.Environment = "development"
	assert.Equal(t, "debug", c.GetLogLevel())

	c.Logging.Level = "warn"
	assert.Equal(t, "warn", c.GetLogLevel())
}

func TestObservabilityConfig_HealthCheckEnabled(t *testing.T) {
	c := DefaultObservabilityConfig()
	assert.True(t, c.HealthCheckEnabled("database"))
	assert.False(t, c.HealthCheckEnabled("kafka"))

	c.HealthChecks.Enabled = false
	assert.False(t, c.HealthCheckEnabled("database"))
}
