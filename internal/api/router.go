// Package api provides the HTTP API for the calendar service.
package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/civicalnyc/civicalnyc/internal/api/handler"
	"github.com/civicalnyc/civicalnyc/internal/api/middleware"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version         string
	Logger          zerolog.Logger
	CalendarService handler.CalendarService
	CacheTTL        time.Duration
	ScrubDefault    bool

	// RateLimit is the per-IP request budget per minute. Default: 60.
	RateLimit int
}

// NewRouter creates a chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	rateLimit := cfg.RateLimit
	if rateLimit == 0 {
		rateLimit = 60
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction

	calendarHandler := handler.NewCalendarHandler(handler.CalendarHandlerConfig{
		Service:      cfg.CalendarService,
		CacheTTL:     cfg.CacheTTL,
		ScrubDefault: cfg.ScrubDefault,
	})
	opsHandler := handler.NewOpsHandler(cfg.Version)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
		})

		r.Route("/calendar", func(r chi.Router) {
			r.Use(middleware.RateLimitByIP(rateLimit))
			r.Get("/", calendarHandler.GetCalendar)
			r.Get("/days-ahead", calendarHandler.GetDaysAhead)
			r.Get("/next-exceptions", calendarHandler.GetNextExceptions)
		})
	})

	return r
}
