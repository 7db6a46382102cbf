package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	GameOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGameOperations,
			Help: HelpTextGameOperations,
		},
		[]string{LabelOperation, LabelResult},
	)

	GameOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameGameOperationDuration,
			Help:    HelpTextGameOperationDuration,
			Buckets: OperationLatencyBuckets,
		},
		[]string{LabelOperation},
	)

	GamesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGamesCreated,
			Help: HelpTextGamesCreated,
		},
		[]string{LabelType},
	)

	GamesEnded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGamesEnded,
			Help: HelpTextGamesEnded,
		},
		[]string{LabelStatus, LabelReason},
	)

	DaysAdvanced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDaysAdvanced,
			Help: HelpTextDaysAdvanced,
		},
	)

	WinesProduced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWinesProduced,
			Help: HelpTextWinesProduced,
		},
		[]string{LabelSpecial},
	)

	WineSalesValue = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWineSalesValue,
			Help: HelpTextWineSalesValue,
		},
	)

	Notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotifications,
			Help: HelpTextNotifications,
		},
		[]string{LabelKind},
	)

	AutoAdvanceActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameAutoAdvanceActive,
			Help: HelpTextAutoAdvanceActive,
		},
	)
)

// Collaborator Metrics
var (
	WineAPIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWineAPIRequests,
			Help: HelpTextWineAPIRequests,
		},
		[]string{LabelEndpoint, LabelStatus},
	)

	WineAPICache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWineAPICache,
			Help: HelpTextWineAPICache,
		},
		[]string{LabelResult},
	)

	SSEClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClients,
			Help: HelpTextSSEClients,
		},
	)

	SSEDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSSEDropped,
			Help: HelpTextSSEDropped,
		},
		[]string{LabelReason},
	)

	WorkerJobs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWorkerJobs,
			Help: HelpTextWorkerJobs,
		},
		[]string{LabelResult},
	)
)
