package sqlite

// Driver settings
const (
	DriverName = "sqlite"
	MemoryPath = ":memory:"
)

// Log messages
const (
	LogMsgOpened      = "SQLite store opened"
	LogMsgCloseFailed = "Failed to close SQLite store"
)
