// Package handler contains the HTTP handlers for the calendar API.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/civicalnyc/civicalnyc/internal/api/models"
	"github.com/civicalnyc/civicalnyc/internal/api/response"
	"github.com/civicalnyc/civicalnyc/internal/calendar"
)

// CalendarService derives calendar views. Implemented by calendar.Service.
type CalendarService interface {
	GetCalendar(ctx context.Context, views []calendar.ViewType, scrub bool) (*calendar.CalendarSet, error)
}

// allViews requests every view on each upstream fetch so one cached fetch
// serves any view combination.
var allViews = []calendar.ViewType{calendar.ViewByDate, calendar.ViewDaysAhead, calendar.ViewNextExceptions}

// cachedSet is one cache slot, keyed by the scrub flag.
type cachedSet struct {
	set    *calendar.CalendarSet
	expiry time.Time
}

// CalendarHandler serves the derived calendar views. The library performs
// one upstream fetch per call and holds no state, so the handler caches
// fetched sets for a short TTL to keep the 311 API out of the request hot
// path. Caching here is a caller concern; the library stays cache-free.
type CalendarHandler struct {
	service      CalendarService
	cacheTTL     time.Duration
	scrubDefault bool

	mu    sync.Mutex
	cache map[bool]cachedSet
}

// CalendarHandlerConfig holds configuration for the calendar handler.
type CalendarHandlerConfig struct {
	// Service derives the views (required).
	Service CalendarService

	// CacheTTL is how long a fetched set is reused. Zero disables caching.
	CacheTTL time.Duration

	// ScrubDefault is the scrub behavior when the request does not set the
	// scrub query parameter.
	ScrubDefault bool
}

// NewCalendarHandler creates a calendar handler.
func NewCalendarHandler(cfg CalendarHandlerConfig) *CalendarHandler {
	return &CalendarHandler{
		service:      cfg.Service,
		cacheTTL:     cfg.CacheTTL,
		scrubDefault: cfg.ScrubDefault,
		cache:        make(map[bool]cachedSet),
	}
}

// GetCalendar handles GET /v1/calendar. Query parameters:
//
//	views: comma-separated subset of by_date, days_ahead, next_exceptions
//	       (default: all)
//	scrub: true/false (default: handler config)
func (h *CalendarHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	views, err := parseViews(r.URL.Query().Get("views"))
	if err != nil {
		response.BadRequest(w, r, err.Error())
		return
	}
	h.serve(w, r, views)
}

// GetDaysAhead handles GET /v1/calendar/days-ahead.
func (h *CalendarHandler) GetDaysAhead(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, []calendar.ViewType{calendar.ViewDaysAhead})
}

// GetNextExceptions handles GET /v1/calendar/next-exceptions.
func (h *CalendarHandler) GetNextExceptions(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, []calendar.ViewType{calendar.ViewNextExceptions})
}

func (h *CalendarHandler) serve(w http.ResponseWriter, r *http.Request, views []calendar.ViewType) {
	scrub := h.scrubDefault
	if raw := r.URL.Query().Get("scrub"); raw != "" {
		switch raw {
		case "true", "1":
			scrub = true
		case "false", "0":
			scrub = false
		default:
			response.BadRequest(w, r, "scrub must be true or false")
			return
		}
	}

	set, err := h.getSet(r.Context(), scrub)
	if err != nil {
		writeCalendarError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.NewCalendarResponse(set, views))
}

// getSet returns a cached calendar set for the scrub flag, fetching from
// upstream when the slot is empty or expired.
func (h *CalendarHandler) getSet(ctx context.Context, scrub bool) (*calendar.CalendarSet, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if cached, ok := h.cache[scrub]; ok && time.Now().Before(cached.expiry) {
		return cached.set, nil
	}

	set, err := h.service.GetCalendar(ctx, allViews, scrub)
	if err != nil {
		return nil, err
	}

	if h.cacheTTL > 0 {
		h.cache[scrub] = cachedSet{set: set, expiry: time.Now().Add(h.cacheTTL)}
	}
	return set, nil
}

// parseViews parses the views query parameter. Empty means all views.
func parseViews(raw string) ([]calendar.ViewType, error) {
	if raw == "" {
		return allViews, nil
	}

	parts := strings.Split(raw, ",")
	views := make([]calendar.ViewType, 0, len(parts))
	for _, part := range parts {
		view, ok := calendar.ParseViewType(strings.TrimSpace(part))
		if !ok {
			return nil, errors.New("unknown view: " + part)
		}
		views = append(views, view)
	}
	return views, nil
}

// writeCalendarError maps library errors onto problem responses.
func writeCalendarError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, calendar.ErrInvalidAuth):
		response.UpstreamAuth(w, r, "the 311 API rejected the configured subscription key")
	case errors.Is(err, calendar.ErrCannotConnect):
		response.ServiceUnavailable(w, r, "the 311 API is unreachable")
	case errors.Is(err, calendar.ErrUnexpectedEntry),
		errors.Is(err, calendar.ErrMalformedResponse),
		errors.Is(err, calendar.ErrDateOrderViolation),
		errors.Is(err, calendar.ErrMissingDate):
		response.UpstreamData(w, r, err.Error())
	default:
		response.InternalError(w, r, "an unexpected error occurred")
	}
}
