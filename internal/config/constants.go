package config

import "time"

const (
	// Configuration file paths
	ConfigPathBalance       = "configs/balance.yaml"
	ConfigPathBalanceSchema = "configs/schemas/balance.schema.json"
)

// Storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
)

// Defaults
const (
	DefaultEnvironment = "dev"
	DefaultVersion     = "dev"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"

	DefaultDBMaxConns = 10
	DefaultDBMaxIdle  = 5 * time.Minute
	DefaultDBMaxLife  = time.Hour
	DefaultSQLitePath = "data/vineyard.db"

	DefaultWineAPITimeout  = 10 * time.Second
	DefaultWineCacheSize   = 256
	DefaultWineCacheTTL    = 10 * time.Minute
	DefaultQuizMaxSessions = 1024
	DefaultQuizSessionTTL  = time.Hour

	DefaultWorkerCount            = 4
	DefaultWorkerQueueSize        = 256
	DefaultWorkerJobTimeout       = 30 * time.Second
	DefaultJournalRetentionDays   = 30
	DefaultJournalCleanupInterval = 6 * time.Hour

	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"
)
