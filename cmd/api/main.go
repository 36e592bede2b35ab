// Package main provides the entrypoint for the calendar API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/civicalnyc/civicalnyc/internal/api"
	"github.com/civicalnyc/civicalnyc/internal/calendar"
	"github.com/civicalnyc/civicalnyc/internal/calendar/nyc311"
	"github.com/civicalnyc/civicalnyc/internal/config"
	"github.com/civicalnyc/civicalnyc/internal/provider/resilience"
)

// Version is set at compile time via ldflags.
var Version = "dev"

func main() {
	const serviceName = "civicalnyc-api"

	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	log.Info().Msg("starting calendar API")

	// The server is the caller of the calendar library, so retry policy
	// lives here: a resilient transport injected into the 311 client.
	httpClient := resilience.NewClient(resilience.ClientConfig{
		Name:       "nyc311",
		Timeout:    cfg.NYC311.Timeout,
		MaxRetries: cfg.NYC311.Retries,
	})

	client := nyc311.NewClient(nyc311.ClientConfig{
		APIKey:     cfg.NYC311.APIKey,
		BaseURL:    cfg.NYC311.BaseURL,
		HTTPClient: httpClient,
		Logger:     log.With().Str("component", "nyc311").Logger(),
	})

	service := calendar.NewService(calendar.ServiceConfig{
		Fetcher: client,
		Logger:  log.With().Str("component", "calendar").Logger(),
	})

	router := api.NewRouter(api.RouterConfig{
		Version:         Version,
		Logger:          log,
		CalendarService: service,
		CacheTTL:        cfg.Server.CacheTTL,
		ScrubDefault:    cfg.NYC311.ScrubEventNames,
		RateLimit:       cfg.Server.RateLimit,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second, // upstream fetch may take up to 60s
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("stopped")
}
