package calendar

import (
	"github.com/civicalnyc/civicalnyc/pkg/civictime"
	"github.com/civicalnyc/civicalnyc/pkg/scrub"
)

// ResponseDateLayout is the date format used in the API response body.
const ResponseDateLayout = "20060102"

// RawResponse is the wire format of the GetCalendar endpoint.
type RawResponse struct {
	Days []RawDay `json:"days"`
}

// RawDay is one calendar day as returned by the API.
type RawDay struct {
	TodayID string    `json:"today_id"`
	Items   []RawItem `json:"items"`
}

// RawItem is one service's status on one day as returned by the API.
type RawItem struct {
	Type          string `json:"type"`
	Status        string `json:"status"`
	Details       string `json:"details"`
	ExceptionName string `json:"exceptionName,omitempty"`
}

// Normalize folds raw API days into a normalized calendar, resolving each
// item's status through the service vocabularies. When scrubEvents is true,
// exception names are cleaned of "(Observed)" and year markers.
//
// Normalize is pure: it either returns a complete calendar or the first
// error encountered, never a partial result.
func Normalize(days []RawDay, scrubEvents bool) (*Calendar, error) {
	cal := NewCalendar()

	for _, rawDay := range days {
		date, err := civictime.Parse(ResponseDateLayout, rawDay.TodayID)
		if err != nil {
			return nil, &MalformedResponseError{Field: "today_id", Value: rawDay.TodayID, Err: err}
		}

		services := make(map[ServiceType]DayServiceEntry, len(rawDay.Items))
		for _, item := range rawDay.Items {
			service, ok := ParseServiceType(item.Type)
			if !ok {
				return nil, &UnexpectedEntryError{RawType: item.Type}
			}

			detail, err := ResolveStatus(service, item.Status)
			if err != nil {
				return nil, err
			}

			reason := item.ExceptionName
			if scrubEvents {
				reason = scrub.Event(reason)
			}

			// Last write wins if the API ever repeats a service within a
			// day; the feed is not expected to.
			services[service] = DayServiceEntry{
				ServiceName:     service.Name(),
				Status:          &detail,
				ExceptionReason: reason,
				RawDescription:  item.Details,
				Date:            date,
			}
		}

		cal.Add(Day{Date: date, Services: services})
	}

	return cal, nil
}
