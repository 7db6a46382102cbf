package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/VineyardSim_Go/internal/eventlog"
	"github.com/osse101/VineyardSim_Go/internal/game"
	"github.com/osse101/VineyardSim_Go/internal/handler"
	"github.com/osse101/VineyardSim_Go/internal/logger"
	"github.com/osse101/VineyardSim_Go/internal/metrics"
	"github.com/osse101/VineyardSim_Go/internal/preferences"
	"github.com/osse101/VineyardSim_Go/internal/quiz"
	"github.com/osse101/VineyardSim_Go/internal/sse"
	"github.com/osse101/VineyardSim_Go/internal/vineyard"
	"github.com/osse101/VineyardSim_Go/internal/wineapi"
)

// Dependencies carries everything the router mounts
type Dependencies struct {
	Games       game.Service
	Journal     eventlog.Service
	Preferences preferences.Service
	Quiz        quiz.Service
	Wines       wineapi.Client
	Balance     *vineyard.Config
	Hub         *sse.Hub
	Timers      handler.TimerCounter
	Checks      map[string]handler.HealthChecker
}

// Options holds listener and security settings
type Options struct {
	Port           int
	AdminAPIKey    string
	TrustedProxies []string
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter builds the HTTP route tree
func NewRouter(opts Options, deps Dependencies) chi.Router {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	monitor := NewActivityMonitor(RateLimitMaxRequests, RateLimitWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, monitor))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Checks))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	gameHandler := handler.NewGameHandler(deps.Games)
	journalHandler := handler.NewJournalHandler(deps.Journal)
	sessionHandler := handler.NewSessionHandler(deps.Preferences)
	wineHandler := handler.NewWineHandler(deps.Wines, deps.Preferences)
	quizHandler := handler.NewQuizHandler(deps.Quiz)
	adminHandler := handler.NewAdminHandler(deps.Journal, deps.Hub, deps.Timers)

	r.Route("/api/v1", func(r chi.Router) {
		// Event streams and image uploads manage their own bodies
		r.Get("/games/{id}/events", sse.Handler(deps.Hub))
		r.Post("/wines/search-image", wineHandler.HandleSearchImage)

		r.Group(func(r chi.Router) {
			r.Use(RequestSizeLimitMiddleware(MaxJSONBodyBytes))

			r.Get("/catalog", handler.HandleGetCatalog(deps.Balance))
			r.Get("/stats", wineHandler.HandleStats)
			r.Get("/wines/search", wineHandler.HandleSearch)

			r.Route("/games", func(r chi.Router) {
				r.Get("/", gameHandler.HandleList)
				r.Post("/", gameHandler.HandleCreate)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", gameHandler.HandleGet)
					r.Delete("/", gameHandler.HandleDelete)
					r.Get("/mastery", gameHandler.HandleMastery)
					r.Get("/journal", journalHandler.HandleGetJournal)

					r.Post("/advance", gameHandler.HandleAdvance)
					r.Post("/plant", gameHandler.HandlePlant)
					r.Post("/water", gameHandler.HandleWater)
					r.Post("/fertilize", gameHandler.HandleFertilize)
					r.Post("/water-all", gameHandler.HandleWaterAll)
					r.Post("/fertilize-all", gameHandler.HandleFertilizeAll)
					r.Post("/harvest", gameHandler.HandleHarvest)
					r.Post("/sell", gameHandler.HandleSellWine)
					r.Post("/treat", gameHandler.HandleTreat)
					r.Post("/upgrade", gameHandler.HandleUpgrade)
					r.Post("/expand", gameHandler.HandleExpand)
					r.Post("/supplies", gameHandler.HandleSupplies)
					r.Post("/region", gameHandler.HandleRegion)
					r.Put("/settings", gameHandler.HandleSettings)

					r.Post("/auto-advance", gameHandler.HandleStartAutoAdvance)
					r.Delete("/auto-advance", gameHandler.HandleStopAutoAdvance)
				})
			})

			r.Route("/quiz", func(r chi.Router) {
				r.Get("/", quizHandler.HandleGet)
				r.Delete("/", quizHandler.HandleAbandon)
				r.Post("/start", quizHandler.HandleStart)
				r.Post("/answer", quizHandler.HandleAnswer)
				r.Post("/next", quizHandler.HandleNext)
			})

			r.Route("/session", func(r chi.Router) {
				r.Get("/preferences", sessionHandler.HandleGetPreferences)
				r.Put("/preferences", sessionHandler.HandleSavePreferences)
				r.Get("/history", sessionHandler.HandleGetHistory)
				r.Delete("/history", sessionHandler.HandleClearHistory)
				r.Get("/theme", sessionHandler.HandleGetTheme)
				r.Put("/theme", sessionHandler.HandleSetTheme)
				r.Get("/forms/tasting", sessionHandler.HandleGetTastingForm)
				r.Post("/forms/tasting", sessionHandler.HandleTastingAction)
				r.Delete("/forms/tasting", sessionHandler.HandleDiscardTastingForm)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(AuthMiddleware(opts.AdminAPIKey, opts.TrustedProxies, monitor))
				r.Post("/journal/cleanup", adminHandler.HandleCleanupJournal)
				r.Post("/games/{id}/announce", adminHandler.HandleAnnounce)
				r.Get("/runtime", adminHandler.HandleRuntime)
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush lets event streams pass through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		w.Header().Set(HeaderRequestID, requestID)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
