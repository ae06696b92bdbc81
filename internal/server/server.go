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

	"github.com/mlavell/sproutlog/internal/calendar"
	"github.com/mlavell/sproutlog/internal/database"
	"github.com/mlavell/sproutlog/internal/handler"
	"github.com/mlavell/sproutlog/internal/journal"
	"github.com/mlavell/sproutlog/internal/logger"
	"github.com/mlavell/sproutlog/internal/metrics"
	"github.com/mlavell/sproutlog/internal/planting"
	"github.com/mlavell/sproutlog/internal/seed"
	"github.com/mlavell/sproutlog/internal/wiki"
)

type Server struct {
	httpServer      *http.Server
	dbPool          database.Pool
	seedService     seed.Service
	plantingService planting.Service
	calendarService calendar.Service
	journalService  journal.Service
	wikiService     wiki.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, dbPool database.Pool, seedService seed.Service, plantingService planting.Service, calendarService calendar.Service, journalService journal.Service, wikiService wiki.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/seeds", func(r chi.Router) {
			r.Post("/", handler.HandleCreateSeed(seedService))
			r.Get("/", handler.HandleListSeeds(seedService))
			r.Get("/{seedID}", handler.HandleGetSeed(seedService))
			r.Patch("/{seedID}", handler.HandleUpdateSeed(seedService))
			r.Delete("/{seedID}", handler.HandleDeleteSeed(seedService))
			r.Post("/{seedID}/quantity", handler.HandleAdjustSeedQuantity(seedService))
		})

		r.Route("/plantings", func(r chi.Router) {
			r.Post("/", handler.HandlePlant(plantingService))
			r.Post("/remove", handler.HandleUnplant(plantingService))
			r.Get("/", handler.HandleListPlantings(plantingService))
		})

		r.Get("/calendar", handler.HandleGetCalendar(calendarService))

		r.Route("/journal", func(r chi.Router) {
			r.Post("/", handler.HandleAppendJournal(journalService))
			r.Get("/", handler.HandleListJournal(journalService))
		})

		r.Route("/wiki", func(r chi.Router) {
			r.Get("/", handler.HandleListWiki(wikiService))
			r.Get("/{entryID}", handler.HandleGetWikiEntry(wikiService))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:          dbPool,
		seedService:     seedService,
		plantingService: plantingService,
		calendarService: calendarService,
		journalService:  journalService,
		wikiService:     wikiService,
	}
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
		statusCode:     http.StatusOK,
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
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

		// Sanitize headers for logging
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
