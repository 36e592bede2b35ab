// Package calendar normalizes the NYC 311 public-services calendar into a
// shared status taxonomy and derives consumer-facing views from it.
package calendar

import (
	"github.com/civicalnyc/civicalnyc/pkg/civictime"
)

// ServiceType identifies a city service category reported on the calendar.
// Values are the raw keys emitted by the API. Do not change unless the API
// changes.
type ServiceType string

const (
	ServiceParking    ServiceType = "Alternate Side Parking"
	ServiceSchool     ServiceType = "Schools"
	ServiceSanitation ServiceType = "Collections"
)

// ServiceTypes lists every known service category in a stable order.
var ServiceTypes = []ServiceType{ServiceParking, ServiceSchool, ServiceSanitation}

// ParseServiceType resolves a raw API type string to a ServiceType.
func ParseServiceType(raw string) (ServiceType, bool) {
	switch ServiceType(raw) {
	case ServiceParking, ServiceSchool, ServiceSanitation:
		return ServiceType(raw), true
	}
	return "", false
}

// Name returns the short human-readable service name.
func (s ServiceType) Name() string {
	switch s {
	case ServiceParking:
		return "Parking"
	case ServiceSchool:
		return "School"
	case ServiceSanitation:
		return "Sanitation"
	}
	return string(s)
}

// ExceptionName returns the term used when this service is suspended.
func (s ServiceType) ExceptionName() string {
	switch s {
	case ServiceParking:
		return "Rule Suspension"
	case ServiceSchool:
		return "Closure"
	case ServiceSanitation:
		return "Collection Suspension"
	}
	return "Suspension"
}

// ExceptionType classifies the semantic impact of a status independently of
// which service reported it.
type ExceptionType string

const (
	// ExceptionNormalActive: school open, garbage collected, parking rules
	// in effect.
	ExceptionNormalActive ExceptionType = "NORMAL_ACTIVE"
	// ExceptionNormalSuspended: expected non-operation, e.g. no collection
	// on Sundays.
	ExceptionNormalSuspended ExceptionType = "NORMAL_SUSPENDED"
	// ExceptionSuspended: unexpected suspension, e.g. a holiday.
	ExceptionSuspended ExceptionType = "SUSPENDED"
	// ExceptionDelayed: service running late, e.g. a snow delay.
	ExceptionDelayed ExceptionType = "DELAYED"
	// ExceptionPartial: partial operation, e.g. school open for staff only.
	ExceptionPartial ExceptionType = "PARTIAL"
	// ExceptionUnsure: schedule not yet determined.
	ExceptionUnsure ExceptionType = "UNSURE"
	// ExceptionRecess: summer recess. School only.
	ExceptionRecess ExceptionType = "RECESS"
	// ExceptionRemote: remote protocols in effect. School only.
	ExceptionRemote ExceptionType = "REMOTE"
)

// Exceptional reports whether the type represents a deviation from the
// regular schedule. Expected non-operation (Sundays, weekends) is not
// exceptional.
func (e ExceptionType) Exceptional() bool {
	return e != ExceptionNormalActive && e != ExceptionNormalSuspended
}

// StatusDetail describes the impact of one raw status on one service.
// Instances are defined statically in the taxonomy and never mutated.
type StatusDetail struct {
	DisplayName   string        `json:"display_name"`
	ExceptionType ExceptionType `json:"exception_type"`
	Description   string        `json:"description"`
}

// DayServiceEntry is the normalized record for one service on one date.
type DayServiceEntry struct {
	ServiceName     string         `json:"service_name"`
	Status          *StatusDetail  `json:"status,omitempty"`
	ExceptionReason string         `json:"exception_reason"`
	RawDescription  string         `json:"raw_description"`
	Date            civictime.Date `json:"date"`
}

// Exceptional reports whether this entry's status deviates from the regular
// schedule. Entries without a status are not exceptional.
func (e DayServiceEntry) Exceptional() bool {
	return e.Status != nil && e.Status.ExceptionType.Exceptional()
}

// Day holds the normalized entries for one calendar date.
type Day struct {
	Date     civictime.Date                  `json:"date"`
	Services map[ServiceType]DayServiceEntry `json:"services"`
}

// Calendar is the normalized day-by-day calendar. Days are kept in API
// response order; the API contract is that the order is strictly increasing
// by date, and the view builders verify it rather than re-sort.
type Calendar struct {
	days  []Day
	index map[civictime.Date]int
}

// NewCalendar returns an empty normalized calendar.
func NewCalendar() *Calendar {
	return &Calendar{index: make(map[civictime.Date]int)}
}

// Add appends a day in response order. Adding the same date twice replaces
// the earlier day.
func (c *Calendar) Add(day Day) {
	if i, ok := c.index[day.Date]; ok {
		c.days[i] = day
		return
	}
	c.index[day.Date] = len(c.days)
	c.days = append(c.days, day)
}

// Lookup returns the day for a date, if present.
func (c *Calendar) Lookup(date civictime.Date) (Day, bool) {
	i, ok := c.index[date]
	if !ok {
		return Day{}, false
	}
	return c.days[i], true
}

// Days returns the days in API response order. The slice is shared; callers
// must not modify it.
func (c *Calendar) Days() []Day {
	return c.days
}

// Len returns the number of days.
func (c *Calendar) Len() int {
	return len(c.days)
}

// DaysAheadEntry is one bucket of the days-ahead view.
type DaysAheadEntry struct {
	Date     civictime.Date                  `json:"date"`
	Services map[ServiceType]DayServiceEntry `json:"services"`
}

// DaysAheadView maps a day offset relative to today (-1 through 6) to that
// day's services. It always holds exactly eight entries.
type DaysAheadView map[int]DaysAheadEntry

// NextExceptionsView maps each service to its nearest upcoming exceptional
// entry. Services with no exception in the fetched window are absent.
type NextExceptionsView map[ServiceType]DayServiceEntry

// ViewType selects which derived calendars GetCalendar returns.
type ViewType string

const (
	ViewByDate         ViewType = "by_date"
	ViewDaysAhead      ViewType = "days_ahead"
	ViewNextExceptions ViewType = "next_exceptions"
)

// ParseViewType resolves a view name, case-sensitively.
func ParseViewType(raw string) (ViewType, bool) {
	switch ViewType(raw) {
	case ViewByDate, ViewDaysAhead, ViewNextExceptions:
		return ViewType(raw), true
	}
	return "", false
}

// CalendarSet holds the views produced by a single GetCalendar call. Views
// that were not requested are nil.
type CalendarSet struct {
	ByDate         *Calendar
	DaysAhead      DaysAheadView
	NextExceptions NextExceptionsView
}
