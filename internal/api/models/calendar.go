package models

import (
	"github.com/civicalnyc/civicalnyc/internal/calendar"
	"github.com/civicalnyc/civicalnyc/pkg/civictime"
)

// CalendarResponse is the JSON body for calendar view requests. Only the
// requested views are populated.
type CalendarResponse struct {
	ByDate         map[civictime.Date]map[calendar.ServiceType]calendar.DayServiceEntry `json:"by_date,omitempty"`
	DaysAhead      calendar.DaysAheadView                                               `json:"days_ahead,omitempty"`
	NextExceptions calendar.NextExceptionsView                                          `json:"next_exceptions,omitempty"`
}

// NewCalendarResponse projects the requested views of a CalendarSet into
// the response shape.
func NewCalendarResponse(set *calendar.CalendarSet, views []calendar.ViewType) *CalendarResponse {
	resp := &CalendarResponse{}
	for _, view := range views {
		switch view {
		case calendar.ViewByDate:
			if set.ByDate == nil {
				continue
			}
			byDate := make(map[civictime.Date]map[calendar.ServiceType]calendar.DayServiceEntry, set.ByDate.Len())
			for _, day := range set.ByDate.Days() {
				byDate[day.Date] = day.Services
			}
			resp.ByDate = byDate
		case calendar.ViewDaysAhead:
			resp.DaysAhead = set.DaysAhead
		case calendar.ViewNextExceptions:
			resp.NextExceptions = set.NextExceptions
		}
	}
	return resp
}

// HealthResponse is the JSON body for the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
