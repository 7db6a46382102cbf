package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	Environment string `validate:"oneof=dev staging prod test"`
	Version     string
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string

	// Storage
	StorageDriver string `validate:"oneof=postgres sqlite"`
	DBUser        string `validate:"required_if=StorageDriver postgres"`
	DBPassword    string
	DBHost        string `validate:"required_if=StorageDriver postgres"`
	DBPort        string
	DBName        string        `validate:"required_if=StorageDriver postgres"`
	DBMaxConns    int           `validate:"min=1"`
	DBMaxIdle     time.Duration `validate:"min=0"`
	DBMaxLife     time.Duration `validate:"min=0"`
	SQLitePath    string        `validate:"required_if=StorageDriver sqlite"`

	// Game balance
	BalancePath       string
	BalanceSchemaPath string

	// Remote wine service
	WineAPIURL      string `validate:"omitempty,url"`
	WineAPIKey      string
	WineAPITimeout  time.Duration
	WineCacheSize   int `validate:"min=0"`
	WineCacheTTL    time.Duration
	QuizMaxSessions int `validate:"min=1"`
	QuizSessionTTL  time.Duration

	// Background work
	WorkerCount            int           `validate:"min=1,max=256"`
	WorkerQueueSize        int           `validate:"min=1"`
	WorkerJobTimeout       time.Duration `validate:"min=0"`
	JournalRetentionDays   int           `validate:"min=1"`
	JournalCleanupInterval time.Duration `validate:"min=1m"`

	// Event publishing
	EventMaxRetries     int `validate:"min=0"`
	EventRetryDelay     time.Duration
	EventDeadLetterPath string

	// Security
	AdminAPIKey    string
	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:     getEnv("VERSION", DefaultVersion),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverPostgres)),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", "vineyard"),
		DBMaxConns:    getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxIdle:     getEnvAsDuration("DB_MAX_IDLE", DefaultDBMaxIdle),
		DBMaxLife:     getEnvAsDuration("DB_MAX_LIFE", DefaultDBMaxLife),
		SQLitePath:    getEnv("SQLITE_PATH", DefaultSQLitePath),

		BalancePath:       getEnv("BALANCE_PATH", ConfigPathBalance),
		BalanceSchemaPath: getEnv("BALANCE_SCHEMA_PATH", ConfigPathBalanceSchema),

		WineAPIURL:      getEnv("WINE_API_URL", ""),
		WineAPIKey:      getEnv("WINE_API_KEY", ""),
		WineAPITimeout:  getEnvAsDuration("WINE_API_TIMEOUT", DefaultWineAPITimeout),
		WineCacheSize:   getEnvAsInt("WINE_CACHE_SIZE", DefaultWineCacheSize),
		WineCacheTTL:    getEnvAsDuration("WINE_CACHE_TTL", DefaultWineCacheTTL),
		QuizMaxSessions: getEnvAsInt("QUIZ_MAX_SESSIONS", DefaultQuizMaxSessions),
		QuizSessionTTL:  getEnvAsDuration("QUIZ_SESSION_TTL", DefaultQuizSessionTTL),

		WorkerCount:            getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize:        getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),
		WorkerJobTimeout:       getEnvAsDuration("WORKER_JOB_TIMEOUT", DefaultWorkerJobTimeout),
		JournalRetentionDays:   getEnvAsInt("JOURNAL_RETENTION_DAYS", DefaultJournalRetentionDays),
		JournalCleanupInterval: getEnvAsDuration("JOURNAL_CLEANUP_INTERVAL", DefaultJournalCleanupInterval),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterPath),

		AdminAPIKey:    getEnv("ADMIN_API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// UsesSQLite reports whether the single-file store is selected
func (c *Config) UsesSQLite() bool {
	return c.StorageDriver == StorageDriverSQLite
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the default for unset or unparseable values
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
