package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgMissingGameID     = "Missing game ID"
	ErrMsgInvalidGameID     = "Invalid game ID"
	ErrMsgMissingSessionID  = "Missing X-Session-ID header"
	ErrMsgInvalidSessionID  = "Invalid X-Session-ID header"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Image upload error messages
	ErrMsgImageTooLarge   = "Image is too large"
	ErrMsgImageRequired   = "An image file is required"
	ErrMsgUnsupportedType = "Unsupported image type"

	// Tasting form error messages
	ErrMsgInvalidFormAction = "Invalid form action"
)

// Success messages for API responses
const (
	MsgGameDeleted          = "Game deleted"
	MsgAutoAdvanceStarted   = "Auto-advance started"
	MsgAutoAdvanceStopped   = "Auto-advance stopped"
	MsgPreferencesSaved     = "Preferences saved"
	MsgHistoryCleared       = "Search history cleared"
	MsgQuizAbandoned        = "Quiz abandoned"
	MsgTastingNoteSubmitted = "Tasting note recorded"
	MsgAnnouncementSent     = "Announcement sent"
)

// Log messages
const (
	LogMsgServiceCallFailed = "Service call failed"
	LogMsgDraftLoadFailed   = "Failed to load tasting draft"
	LogMsgJournalPruned     = "Journal pruned"
	LogMsgDecodeFailed      = "Failed to decode request body"
	LogMsgValidationFailed  = "Request failed validation"
)
