package calendar

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/civicalnyc/civicalnyc/pkg/civictime"
)

// Fetch window relative to today. The window starts at yesterday so the
// days-ahead view's -1 bucket is always covered, and reaches 90 days out so
// a next exception is nearly always found.
const (
	fetchWindowStart = -1
	fetchWindowDays  = 90
)

// Fetcher retrieves the raw calendar for an inclusive date range. It is the
// transport collaborator; internal/calendar/nyc311 provides the real one.
type Fetcher interface {
	FetchCalendar(ctx context.Context, from, to civictime.Date) (*RawResponse, error)
}

// ServiceConfig holds configuration for the calendar service.
type ServiceConfig struct {
	// Fetcher retrieves raw calendar data (required).
	Fetcher Fetcher

	// Logger for service operations.
	Logger zerolog.Logger

	// Clock returns "today" in the reference timezone. Defaults to
	// civictime.Today; override in tests.
	Clock func() civictime.Date
}

// Service derives consumer-facing calendar views from the raw 311 feed.
// Each GetCalendar call performs exactly one fetch and holds no state
// between calls.
type Service struct {
	fetcher Fetcher
	logger  zerolog.Logger
	clock   func() civictime.Date
}

// NewService creates a calendar service.
func NewService(cfg ServiceConfig) *Service {
	clock := cfg.Clock
	if clock == nil {
		clock = civictime.Today
	}
	return &Service{
		fetcher: cfg.Fetcher,
		logger:  cfg.Logger,
		clock:   clock,
	}
}

// GetCalendar fetches the [yesterday, today+90] window, normalizes it, and
// derives the requested views. An empty views slice requests all three.
// The full window is always fetched regardless of which views are
// requested; deriving views is cheap once the data is normalized. Any
// error is terminal for the call and no partial result is returned.
func (s *Service) GetCalendar(ctx context.Context, views []ViewType, scrubEvents bool) (*CalendarSet, error) {
	if len(views) == 0 {
		views = []ViewType{ViewByDate, ViewDaysAhead, ViewNextExceptions}
	}

	today := s.clock()
	from := today.AddDays(fetchWindowStart)
	to := from.AddDays(fetchWindowDays)

	raw, err := s.fetcher.FetchCalendar(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetch calendar: %w", err)
	}

	cal, err := Normalize(raw.Days, scrubEvents)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int("days", cal.Len()).
		Stringer("from", from).
		Stringer("to", to).
		Msg("normalized calendar")

	set := &CalendarSet{}
	for _, view := range views {
		switch view {
		case ViewByDate:
			set.ByDate = cal
		case ViewDaysAhead:
			daysAhead, err := BuildDaysAhead(cal, today)
			if err != nil {
				return nil, err
			}
			set.DaysAhead = daysAhead
		case ViewNextExceptions:
			nextExceptions, err := BuildNextExceptions(cal, today)
			if err != nil {
				return nil, err
			}
			set.NextExceptions = nextExceptions
		default:
			return nil, fmt.Errorf("unknown view type %q", string(view))
		}
	}

	s.logger.Info().Int("days", cal.Len()).Msg("got calendar")

	return set, nil
}
