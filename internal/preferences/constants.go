package preferences

// Storage keys
const (
	KeyPreferences   = "preferences"
	KeySearchHistory = "search_history"
	KeyTheme         = "theme"
	KeyDraftPrefix   = "draft:"
)

// MaxHistory is how many distinct searches are remembered
const MaxHistory = 20

// Themes
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Log messages
const (
	LogMsgCorruptValue     = "Ignoring unreadable session value"
	LogMsgDraftSaveFailed  = "Failed to save draft"
	LogMsgPreferencesSaved = "Preferences saved"
)

// Error messages
const (
	ErrMsgReadValue   = "failed to read session value"
	ErrMsgWriteValue  = "failed to write session value"
	ErrMsgEncodeValue = "failed to encode session value"
)
