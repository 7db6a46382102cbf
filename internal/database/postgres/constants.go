package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Game Operations
const (
	ErrMsgInvalidGameID          = "invalid game id"
	ErrMsgFailedToMarshalState   = "failed to marshal game state"
	ErrMsgFailedToUnmarshalState = "failed to unmarshal game state"
	ErrMsgFailedToInsertGame     = "failed to insert game"
	ErrMsgFailedToGetGame        = "failed to get game"
	ErrMsgFailedToSaveGame       = "failed to save game"
	ErrMsgFailedToListGames      = "failed to list games"
	ErrMsgFailedToDeleteGame     = "failed to delete game"
	ErrMsgGameAlreadyExists      = "game already exists"
)

// Error Messages - Session State Operations
const (
	ErrMsgFailedToGetSessionValue    = "failed to get session value"
	ErrMsgFailedToPutSessionValue    = "failed to put session value"
	ErrMsgFailedToDeleteSessionValue = "failed to delete session value"
)

// Error Messages - Journal Operations
const (
	ErrMsgFailedToMarshalPayload = "failed to marshal journal payload"
	ErrMsgFailedToLogEvent       = "failed to log journal event"
	ErrMsgFailedToQueryJournal   = "failed to query journal"
	ErrMsgFailedToCleanupJournal = "failed to clean up journal"
)
