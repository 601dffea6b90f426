// Package http wires the chi router for the REST API surface.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"mindwell-backend/internal/config"
	"mindwell-backend/internal/infrastructure/observability"
	"mindwell-backend/internal/interfaces/http/handlers"
	"mindwell-backend/internal/middleware"
	"mindwell-backend/internal/repository"
	"mindwell-backend/internal/service/journal"
	"mindwell-backend/internal/service/mood"
	"mindwell-backend/internal/service/progress"
)

// Router creates and configures the HTTP router.
type Router struct {
	cfg       *config.Config
	store     repository.Store
	progress  progress.Service
	moods     mood.Service
	journal   journal.Service
	auth      *supabase.Client
	collector *observability.Collector
	logger    *zap.Logger
}

// NewRouter creates a new router instance. The Supabase client may be nil
// when running against the in-memory store.
func NewRouter(
	cfg *config.Config,
	store repository.Store,
	progressService progress.Service,
	moodService mood.Service,
	journalService journal.Service,
	authClient *supabase.Client,
	collector *observability.Collector,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:       cfg,
		store:     store,
		progress:  progressService,
		moods:     moodService,
		journal:   journalService,
		auth:      authClient,
		collector: collector,
		logger:    logger,
	}
}

// Setup configures all routes and middleware.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.cfg.Features.EnableMetrics {
		router.Use(middleware.Metrics(rt.collector))
	}
	if rt.cfg.Features.EnableCircuitBreaker {
		router.Use(middleware.CircuitBreaker(middleware.DefaultCircuitBreakerConfig("api"), rt.logger))
	}

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Probes and metrics
	healthHandler := handlers.NewHealthHandler(rt.store, rt.logger)
	router.Get("/health", healthHandler.Live)
	router.Get("/ready", healthHandler.Ready)
	if rt.cfg.Features.EnableMetrics {
		router.Handle("/metrics", rt.collector.Handler())
	}

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		auth := middleware.NewAuthenticator(rt.cfg.Supabase.JWTSecret)
		r.Use(auth.Middleware)

		r.Get("/me", handlers.NewUserHandler(rt.auth, rt.logger).GetMe)

		r.Route("/progress", func(r chi.Router) {
			progressHandler := handlers.NewProgressHandler(rt.progress, rt.collector, rt.logger)
			r.Get("/summary", progressHandler.GetSummary)
			r.Get("/stats", progressHandler.GetStats)
		})

		r.Route("/moods", func(r chi.Router) {
			moodHandler := handlers.NewMoodHandler(rt.moods, rt.collector, rt.logger)
			r.Post("/", moodHandler.SaveMood)
			r.Get("/week", moodHandler.GetWeekHistory)
			r.Get("/grid", moodHandler.GetWeekGrid)
		})

		r.Route("/journal", func(r chi.Router) {
			journalHandler := handlers.NewJournalHandler(rt.journal, rt.logger)
			r.Post("/", journalHandler.Save)
			r.Get("/", journalHandler.List)
		})
	})

	return router
}
