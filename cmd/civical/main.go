// Package main provides a CLI that prints the next service exception for
// each city service category.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/civicalnyc/civicalnyc/internal/calendar"
	"github.com/civicalnyc/civicalnyc/internal/calendar/nyc311"
	"github.com/civicalnyc/civicalnyc/internal/config"
	"github.com/civicalnyc/civicalnyc/internal/provider/resilience"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	httpClient := resilience.NewClient(resilience.ClientConfig{
		Name:       "nyc311",
		Timeout:    cfg.NYC311.Timeout,
		MaxRetries: cfg.NYC311.Retries,
	})

	client := nyc311.NewClient(nyc311.ClientConfig{
		APIKey:     cfg.NYC311.APIKey,
		BaseURL:    cfg.NYC311.BaseURL,
		HTTPClient: httpClient,
		Logger:     log,
	})

	service := calendar.NewService(calendar.ServiceConfig{
		Fetcher: client,
		Logger:  log,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	set, err := service.GetCalendar(ctx, []calendar.ViewType{calendar.ViewNextExceptions}, cfg.NYC311.ScrubEventNames)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get calendar")
	}

	for _, serviceType := range calendar.ServiceTypes {
		entry, ok := set.NextExceptions[serviceType]
		if !ok {
			fmt.Printf("%-12s no upcoming exception in the next 90 days\n", serviceType.Name()+":")
			continue
		}

		reason := entry.ExceptionReason
		if reason == "" {
			reason = entry.Status.DisplayName
		}
		fmt.Printf("%-12s %s %s (%s)\n", serviceType.Name()+":", entry.Date, serviceType.ExceptionName(), reason)
	}
}
