package database

import "time"

const (
	DefaultMinConnections = 2
	ConnectTimeout        = 10 * time.Second

	// goose reads migrations from the root of the embedded FS
	MigrationDialect = "postgres"
	MigrationDir     = "."
)

const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToSetDialect      = "failed to set migration dialect"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
	ErrMsgFailedToReadVersion     = "failed to read schema version"
)

const (
	LogMsgConnected         = "Connected to PostgreSQL"
	LogMsgMigrationsApplied = "Database migrations applied"
)
