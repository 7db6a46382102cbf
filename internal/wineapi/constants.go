package wineapi

import "time"

// Endpoints of the remote wine service
const (
	PathSearch        = "/wines/search"
	PathSearchImage   = "/wines/search-image"
	PathQuizQuestions = "/quiz/questions"
	PathQuizSubmit    = "/quiz/submit"
	PathStats         = "/stats"
)

// Endpoint labels for metrics
const (
	EndpointSearch      = "search"
	EndpointSearchImage = "search_image"
	EndpointQuiz        = "quiz_questions"
	EndpointQuizSubmit  = "quiz_submit"
	EndpointStats       = "stats"
)

// Client defaults
const (
	DefaultTimeout   = 10 * time.Second
	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * time.Minute
	MaxRetries       = 3
	RetryBaseDelay   = 200 * time.Millisecond

	// MaxImageBytes bounds photos accepted for image search
	MaxImageBytes = 5 << 20

	DefaultQuizQuestions = 10
	MaxQuizQuestions     = 50
)

// StatusNetworkError labels requests that never got a response
const StatusNetworkError = "network_error"

// Log messages
const (
	LogMsgRetrying      = "Retrying wine API request"
	LogMsgRequestFailed = "Wine API request failed"
)

// Error messages
const (
	ErrMsgEncodeRequest  = "failed to encode request"
	ErrMsgBuildRequest   = "failed to build request"
	ErrMsgDecodeResponse = "failed to decode response"
)
