package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameGameOperations        = "vineyard_operations_total"
	MetricNameGameOperationDuration = "vineyard_operation_duration_seconds"
	MetricNameGamesCreated          = "vineyard_games_created_total"
	MetricNameGamesEnded            = "vineyard_games_ended_total"
	MetricNameDaysAdvanced          = "vineyard_days_advanced_total"
	MetricNameWinesProduced         = "vineyard_wines_produced_total"
	MetricNameWineSalesValue        = "vineyard_wine_sales_value_total"
	MetricNameNotifications         = "vineyard_notifications_total"
	MetricNameAutoAdvanceActive     = "vineyard_auto_advance_active"
)

// Collaborator metric names
const (
	MetricNameWineAPIRequests = "wineapi_requests_total"
	MetricNameWineAPICache    = "wineapi_cache_lookups_total"
	MetricNameSSEClients      = "sse_clients_connected"
	MetricNameSSEDropped      = "sse_events_dropped_total"
	MetricNameWorkerJobs      = "worker_jobs_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextGameOperations        = "Total number of game operations by outcome"
	HelpTextGameOperationDuration = "Game operation latency in seconds, including storage"
	HelpTextGamesCreated          = "Total number of games started"
	HelpTextGamesEnded            = "Total number of games finished"
	HelpTextDaysAdvanced          = "Total number of simulated days"
	HelpTextWinesProduced         = "Total number of wines bottled"
	HelpTextWineSalesValue        = "Total money earned from wine sales"
	HelpTextNotifications         = "Total number of player notifications raised"
	HelpTextAutoAdvanceActive     = "Number of games with auto-advance running"
)

// Collaborator metric help text
const (
	HelpTextWineAPIRequests = "Total number of remote wine API requests"
	HelpTextWineAPICache    = "Wine search cache lookups by result"
	HelpTextSSEClients      = "Current number of connected SSE clients"
	HelpTextSSEDropped      = "SSE events dropped before reaching a client"
	HelpTextWorkerJobs      = "Background jobs run by the worker pool, by outcome"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelOperation = "operation"
	LabelResult    = "result"
	LabelReason    = "reason"
	LabelKind      = "kind"
	LabelSpecial   = "special"
	LabelEndpoint  = "endpoint"
)

// Label values
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultPanic   = "panic"
	CacheHit      = "hit"
	CacheMiss     = "miss"
	UnmatchedPath = "unmatched"
	DropHubFull   = "hub_full"
	DropSlowPeer  = "slow_client"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets spans 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// OperationLatencyBuckets spans 100µs to 1s
var OperationLatencyBuckets = []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, 1}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnknownPayload  = "Event payload has unexpected type"
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
