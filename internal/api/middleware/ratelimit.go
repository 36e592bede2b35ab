package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"

	"github.com/civicalnyc/civicalnyc/internal/api/models"
)

// RateLimitByIP creates a per-IP rate limiter allowing requestsPerMinute
// requests in a one-minute window. Uses X-Forwarded-For when present
// (extracted by chi's RealIP middleware).
func RateLimitByIP(requestsPerMinute int) func(http.Handler) http.Handler {
	return httprate.Limit(
		requestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(rateLimitExceededHandler),
	)
}

// rateLimitExceededHandler writes an RFC7807 Problem response when the
// limit is exceeded.
func rateLimitExceededHandler(w http.ResponseWriter, r *http.Request) {
	problem := models.NewTooManyRequests(GetRequestID(r.Context()), "Rate limit exceeded. Please try again later.")
	problem.Instance = r.URL.Path

	// httprate does not expose the exact reset time; use the window size.
	w.Header().Set("Retry-After", strconv.Itoa(60))

	problem.Write(w)
}
