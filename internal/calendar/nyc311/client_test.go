package nyc311_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicalnyc/civicalnyc/internal/calendar"
	"github.com/civicalnyc/civicalnyc/internal/calendar/nyc311"
	"github.com/civicalnyc/civicalnyc/pkg/civictime"
)

var (
	from = civictime.Date{Year: 2022, Month: time.May, Day: 19}
	to   = civictime.Date{Year: 2022, Month: time.August, Day: 17}
)

func TestClient_FetchCalendar(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/public/api/GetCalendar", r.URL.Path)
		assert.Equal(t, "05/19/2022", r.URL.Query().Get("fromdate"))
		assert.Equal(t, "08/17/2022", r.URL.Query().Get("todate"))
		assert.Equal(t, "test-key", r.Header.Get("Ocp-Apim-Subscription-Key"))

		response := map[string]interface{}{
			"days": []map[string]interface{}{
				{
					"today_id": "20220519",
					"items": []map[string]interface{}{
						{"type": "Schools", "status": "OPEN", "details": "Schools are open."},
						{
							"type":          "Alternate Side Parking",
							"status":        "SUSPENDED",
							"details":       "Rules suspended.",
							"exceptionName": "Memorial Day (Observed) 2022",
						},
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := nyc311.NewClient(nyc311.ClientConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})

	raw, err := client.FetchCalendar(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, raw.Days, 1)

	day := raw.Days[0]
	assert.Equal(t, "20220519", day.TodayID)
	require.Len(t, day.Items, 2)
	assert.Equal(t, "Schools", day.Items[0].Type)
	assert.Equal(t, "OPEN", day.Items[0].Status)
	assert.Equal(t, "Memorial Day (Observed) 2022", day.Items[1].ExceptionName)
}

func TestClient_FetchCalendar_InvalidAuth(t *testing.T) {
	statuses := []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound}

	for _, status := range statuses {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		client := nyc311.NewClient(nyc311.ClientConfig{APIKey: "bad-key", BaseURL: server.URL})
		_, err := client.FetchCalendar(context.Background(), from, to)
		assert.True(t, errors.Is(err, calendar.ErrInvalidAuth), "status %d", status)

		server.Close()
	}
}

func TestClient_FetchCalendar_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := nyc311.NewClient(nyc311.ClientConfig{APIKey: "test-key", BaseURL: server.URL})
	_, err := client.FetchCalendar(context.Background(), from, to)
	assert.True(t, errors.Is(err, calendar.ErrCannotConnect))
}

func TestClient_FetchCalendar_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := nyc311.NewClient(nyc311.ClientConfig{APIKey: "test-key", BaseURL: server.URL})
	_, err := client.FetchCalendar(context.Background(), from, to)
	assert.True(t, errors.Is(err, calendar.ErrCannotConnect))
}

func TestClient_FetchCalendar_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := nyc311.NewClient(nyc311.ClientConfig{APIKey: "test-key", BaseURL: server.URL})
	_, err := client.FetchCalendar(context.Background(), from, to)
	assert.True(t, errors.Is(err, calendar.ErrMalformedResponse))
}

func TestClient_FetchCalendar_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := nyc311.NewClient(nyc311.ClientConfig{APIKey: "test-key", BaseURL: server.URL})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.FetchCalendar(ctx, from, to)
	assert.Error(t, err)
}
