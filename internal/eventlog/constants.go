package eventlog

import "github.com/osse101/VineyardSim_Go/internal/event"

// JournaledTypes lists the event types persisted to a game's journal
var JournaledTypes = []event.Type{
	event.GameCreated,
	event.DayAdvanced,
	event.NotificationRaised,
	event.WineProduced,
	event.WineSold,
	event.GameEnded,
}

// Query limits
const (
	DefaultJournalLimit = 50
	MaxJournalLimit     = 500
)

// Log messages - service events
const (
	LogMsgEventWithoutGame   = "Event has no game id, skipping journal"
	LogMsgFailedToEncode     = "Failed to encode event payload for journal"
	LogMsgFailedToLogEvent   = "Failed to log event to journal"
	LogMsgEventLogged        = "Event logged to journal"
	LogMsgCleanupJobStarting = "Starting journal cleanup job"
	LogMsgCleanupJobFailed   = "Journal cleanup failed"
	LogMsgCleanupJobDone     = "Journal cleanup completed"
)
