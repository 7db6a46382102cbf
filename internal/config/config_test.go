package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
		assert.False(t, cfg.UsesSQLite())
		assert.Equal(t, ConfigPathBalance, cfg.BalancePath)
		assert.Equal(t, DefaultWorkerCount, cfg.WorkerCount)
		assert.Equal(t, DefaultJournalRetentionDays, cfg.JournalRetentionDays)
		assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
		assert.Empty(t, cfg.AdminAPIKey)
		assert.Empty(t, cfg.TrustedProxies)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "3000")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_MAX_CONNS", "50")
		t.Setenv("DB_MAX_IDLE", "10m")
		t.Setenv("WINE_API_URL", "https://wines.example.com/api")
		t.Setenv("WINE_API_TIMEOUT", "3s")
		t.Setenv("WORKER_COUNT", "8")
		t.Setenv("JOURNAL_RETENTION_DAYS", "7")
		t.Setenv("ADMIN_API_KEY", "admin")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1,10.0.0.2")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "db.example.com", cfg.DBHost)
		assert.Equal(t, 50, cfg.DBMaxConns)
		assert.Equal(t, 10*time.Minute, cfg.DBMaxIdle)
		assert.Equal(t, "https://wines.example.com/api", cfg.WineAPIURL)
		assert.Equal(t, 3*time.Second, cfg.WineAPITimeout)
		assert.Equal(t, 8, cfg.WorkerCount)
		assert.Equal(t, 7, cfg.JournalRetentionDays)
		assert.Equal(t, "admin", cfg.AdminAPIKey)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	})

	t.Run("sqlite driver needs no database host", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("STORAGE_DRIVER", "sqlite")
		t.Setenv("DB_HOST", "")
		t.Setenv("SQLITE_PATH", "/tmp/vineyard.db")

		cfg, err := Load()

		require.NoError(t, err)
		assert.True(t, cfg.UsesSQLite())
		assert.Equal(t, "/tmp/vineyard.db", cfg.SQLitePath)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		tests := []struct {
			name  string
			key   string
			value string
		}{
			{"non numeric port", "PORT", "not-a-number"},
			{"empty port", "PORT", ""},
			{"port out of range", "PORT", "65536"},
			{"unknown storage driver", "STORAGE_DRIVER", "mongo"},
			{"unknown log format", "LOG_FORMAT", "xml"},
			{"unknown environment", "ENVIRONMENT", "qa"},
			{"wine api not a url", "WINE_API_URL", "wines"},
			{"postgres without host", "DB_HOST", ""},
			{"retention below one day", "JOURNAL_RETENTION_DAYS", "0"},
			{"cleanup interval too short", "JOURNAL_CLEANUP_INTERVAL", "5s"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv(tt.key, tt.value)

				cfg, err := Load()

				assert.Error(t, err)
				assert.Nil(t, cfg)
			})
		}
	})
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "user",
		DBPassword: "p@ss:word",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "vineyard",
	}

	assert.Equal(t, "postgres://user:p@ss:word@db:5433/vineyard?sslmode=disable", cfg.GetDBConnString())
}

// clearEnvVars unsets every variable Load reads
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		"PORT", "ENVIRONMENT", "VERSION", "LOG_LEVEL", "LOG_FORMAT", "LOG_DIR",
		"STORAGE_DRIVER", "DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
		"DB_MAX_CONNS", "DB_MAX_IDLE", "DB_MAX_LIFE", "SQLITE_PATH",
		"BALANCE_PATH", "BALANCE_SCHEMA_PATH",
		"WINE_API_URL", "WINE_API_KEY", "WINE_API_TIMEOUT", "WINE_CACHE_SIZE", "WINE_CACHE_TTL",
		"QUIZ_MAX_SESSIONS", "QUIZ_SESSION_TTL",
		"WORKER_COUNT", "WORKER_QUEUE_SIZE", "WORKER_JOB_TIMEOUT",
		"JOURNAL_RETENTION_DAYS", "JOURNAL_CLEANUP_INTERVAL",
		"EVENT_MAX_RETRIES", "EVENT_RETRY_DELAY", "EVENT_DEADLETTER_PATH",
		"ADMIN_API_KEY", "TRUSTED_PROXIES",
	}

	for _, key := range envVars {
		// t.Setenv restores the original value on cleanup
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
