package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept, including the new one
	LogFileRetentionCount = 10
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting vineyard service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"

	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgJournalSubscribed          = "Game journal subscribed"
	LogMsgSSESubscribed              = "SSE bridge subscribed"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedSubscribeJournal     = "failed to subscribe game journal"
)

// =============================================================================
// Storage and Balance
// =============================================================================

const (
	LogMsgStorageReady         = "Storage ready"
	LogMsgBalanceLoaded        = "Game balance loaded"
	LogMsgBalanceFileMissing   = "Balance file not found, using built-in defaults"
	ErrMsgFailedOpenStorage    = "failed to open storage"
	ErrMsgFailedMigrate        = "failed to migrate storage"
	ErrMsgInvalidBalanceFile   = "balance file does not match schema"
	ErrMsgFailedLoadBalance    = "failed to load game balance"
	ErrMsgUnknownStorageDriver = "unknown storage driver"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgStoppingScheduler          = "Stopping scheduler..."
	LogMsgStoppingWorkers            = "Stopping worker pool..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)

// ShutdownTimeout bounds the whole graceful shutdown sequence
const ShutdownTimeout = 30 * time.Second
