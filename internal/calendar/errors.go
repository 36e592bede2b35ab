package calendar

import (
	"errors"
	"fmt"

	"github.com/civicalnyc/civicalnyc/pkg/civictime"
)

// Sentinel errors. Callers match with errors.Is; the typed wrappers below
// carry the offending values for bug reports.
var (
	// ErrUnexpectedEntry: the API emitted a service type or status string
	// outside the static vocabulary. Usually means the upstream contract
	// changed.
	ErrUnexpectedEntry = errors.New("unexpected calendar entry")

	// ErrMalformedResponse: a response field could not be parsed.
	ErrMalformedResponse = errors.New("malformed calendar response")

	// ErrDateOrderViolation: calendar days were not strictly increasing by
	// date. Never silently re-sorted.
	ErrDateOrderViolation = errors.New("calendar dates out of order")

	// ErrMissingDate: the days-ahead view needed a date the fetched window
	// does not contain.
	ErrMissingDate = errors.New("date missing from calendar")

	// ErrCannotConnect: transport failure or upstream 5xx.
	ErrCannotConnect = errors.New("cannot connect to calendar API")

	// ErrInvalidAuth: upstream rejected the subscription key (4xx).
	ErrInvalidAuth = errors.New("calendar API rejected credentials")
)

// UnexpectedEntryError reports an unrecognized raw service type or status.
type UnexpectedEntryError struct {
	Service   ServiceType // empty when the service type itself was unknown
	RawType   string
	RawStatus string
}

func (e *UnexpectedEntryError) Error() string {
	if e.Service == "" {
		return fmt.Sprintf("unexpected calendar entry: unknown service type %q", e.RawType)
	}
	return fmt.Sprintf("unexpected calendar entry: unknown status %q for service %q", e.RawStatus, string(e.Service))
}

func (e *UnexpectedEntryError) Unwrap() error { return ErrUnexpectedEntry }

// MalformedResponseError reports an unparseable response field.
type MalformedResponseError struct {
	Field string
	Value string
	Err   error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed calendar response: field %s value %q: %v", e.Field, e.Value, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return ErrMalformedResponse }

// DateOrderError reports the pair of dates that broke strict ordering.
type DateOrderError struct {
	Previous civictime.Date
	Current  civictime.Date
}

func (e *DateOrderError) Error() string {
	return fmt.Sprintf("calendar dates out of order: %s followed by %s", e.Previous, e.Current)
}

func (e *DateOrderError) Unwrap() error { return ErrDateOrderViolation }

// MissingDateError reports the date the fetched window lacked.
type MissingDateError struct {
	Date civictime.Date
}

func (e *MissingDateError) Error() string {
	return fmt.Sprintf("date missing from calendar: %s", e.Date)
}

func (e *MissingDateError) Unwrap() error { return ErrMissingDate }
