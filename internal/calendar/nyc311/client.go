// Package nyc311 provides a client for the NYC 311 public-services
// calendar API.
package nyc311

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/civicalnyc/civicalnyc/internal/calendar"
	"github.com/civicalnyc/civicalnyc/pkg/civictime"
)

const (
	// DefaultBaseURL is the NYC API Portal base URL.
	DefaultBaseURL = "https://api.nyc.gov"

	// calendarPath is the GetCalendar endpoint path.
	calendarPath = "/public/api/GetCalendar"

	// subscriptionKeyHeader carries the API Portal subscription key.
	subscriptionKeyHeader = "Ocp-Apim-Subscription-Key"

	// RequestDateLayout is the date format for the fromdate/todate query
	// parameters.
	RequestDateLayout = "01/02/2006"

	// DefaultTimeout bounds a single calendar request.
	DefaultTimeout = 60 * time.Second
)

// HTTPDoer abstracts HTTP request execution so callers can inject their own
// transport, e.g. a resilient client with retries. The library itself never
// retries; a failed fetch is terminal for the call.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the 311 client.
type ClientConfig struct {
	// APIKey is the NYC API Portal subscription key (required).
	APIKey string

	// BaseURL is the API base URL (optional, defaults to the NYC portal).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional). If nil, a plain
	// http.Client with DefaultTimeout is used.
	HTTPClient HTTPDoer

	// Timeout for the default HTTP client. Ignored when HTTPClient is set.
	Timeout time.Duration

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client fetches raw calendar data from the 311 API. It implements
// calendar.Fetcher.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPDoer
	logger     zerolog.Logger
}

// NewClient creates a new 311 calendar client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// FetchCalendar retrieves the raw calendar for an inclusive date range.
// A 4xx response means the subscription key was rejected and fails with
// calendar.ErrInvalidAuth; network failures and 5xx responses fail with
// calendar.ErrCannotConnect.
func (c *Client) FetchCalendar(ctx context.Context, from, to civictime.Date) (*calendar.RawResponse, error) {
	params := url.Values{}
	params.Set("fromdate", from.Format(RequestDateLayout))
	params.Set("todate", to.Format(RequestDateLayout))

	reqURL := c.baseURL + calendarPath + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(subscriptionKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", calendar.ErrCannotConnect, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, fmt.Errorf("%w: status %d", calendar.ErrInvalidAuth, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d", calendar.ErrCannotConnect, resp.StatusCode)
	}

	var raw calendar.RawResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &calendar.MalformedResponseError{Field: "body", Value: "", Err: err}
	}

	c.logger.Debug().
		Stringer("from", from).
		Stringer("to", to).
		Int("days", len(raw.Days)).
		Msg("fetched calendar")

	return &raw, nil
}
