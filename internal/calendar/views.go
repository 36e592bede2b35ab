package calendar

import (
	"github.com/civicalnyc/civicalnyc/pkg/civictime"
)

// Days-ahead window bounds, relative to today.
const (
	daysAheadStart = -1
	daysAheadEnd   = 6
)

// BuildDaysAhead projects the calendar onto a fixed window of day offsets,
// yesterday through six days out, keyed by offset from today. The fetch
// window ([today-1, today+90]) always covers these dates; a miss means the
// fetched and derived windows disagree and fails with ErrMissingDate.
func BuildDaysAhead(cal *Calendar, today civictime.Date) (DaysAheadView, error) {
	view := make(DaysAheadView, daysAheadEnd-daysAheadStart+1)

	for offset := daysAheadStart; offset <= daysAheadEnd; offset++ {
		date := today.AddDays(offset)
		day, ok := cal.Lookup(date)
		if !ok {
			return nil, &MissingDateError{Date: date}
		}

		services := make(map[ServiceType]DayServiceEntry, len(day.Services))
		for service, entry := range day.Services {
			services[service] = entry
		}

		view[offset] = DaysAheadEntry{Date: date, Services: services}
	}

	return view, nil
}

// BuildNextExceptions scans the calendar in date order and records, per
// service, the first upcoming entry whose status is exceptional. Yesterday
// is skipped: a past exception is not a "next" exception even when the
// fetch window includes it. The scan stops once every service is resolved.
//
// Days must be strictly increasing by date; a violation fails with
// ErrDateOrderViolation rather than re-sorting, since out-of-order data
// means an upstream or transport bug.
func BuildNextExceptions(cal *Calendar, today civictime.Date) (NextExceptionsView, error) {
	view := make(NextExceptionsView, len(ServiceTypes))
	yesterday := today.AddDays(-1)

	var prev civictime.Date
	for _, day := range cal.Days() {
		if !prev.IsZero() && !day.Date.After(prev) {
			return nil, &DateOrderError{Previous: prev, Current: day.Date}
		}
		prev = day.Date

		if day.Date == yesterday {
			continue
		}

		for _, service := range ServiceTypes {
			if _, done := view[service]; done {
				continue
			}
			entry, ok := day.Services[service]
			if !ok || !entry.Exceptional() {
				continue
			}
			view[service] = entry
		}

		if len(view) == len(ServiceTypes) {
			break
		}
	}

	return view, nil
}
