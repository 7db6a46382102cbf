package quiz

import "time"

// Session store limits
const (
	DefaultMaxSessions = 1024
	DefaultSessionTTL  = time.Hour
)

// Log messages
const (
	LogMsgQuizStarted      = "Quiz started"
	LogMsgQuizFinished     = "Quiz finished"
	LogMsgSubmissionFailed = "Failed to submit quiz result"
)
