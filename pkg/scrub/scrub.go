// Package scrub cleans up human-readable exception names returned by the
// 311 calendar API.
package scrub

import "regexp"

// Matches "(Observed)" markers and 4-digit year tokens, including any
// whitespace around them, so removal does not leave double spaces behind.
var eventNoise = regexp.MustCompile(`( *\(Observed\) *)|( *\d{4} *)`)

// Event strips "(Observed)" and calendar-year tokens from an event name.
// "Christmas Day (Observed) 2021" becomes "Christmas Day". Names without
// markers pass through unchanged; the function is pure and idempotent.
func Event(name string) string {
	return eventNoise.ReplaceAllString(name, "")
}
