package scrub_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/civicalnyc/civicalnyc/pkg/scrub"
)

func TestEvent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"observed and year", "Christmas Day (Observed) 2021", "Christmas Day"},
		{"year only", "Memorial Day 2022", "Memorial Day"},
		{"observed only", "Juneteenth (Observed)", "Juneteenth"},
		{"no markers", "Regular Day", "Regular Day"},
		{"empty", "", ""},
		{"year mid-name", "Election Day 2021 General", "Election DayGeneral"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scrub.Event(tc.input))
		})
	}
}

func TestEventIdempotent(t *testing.T) {
	once := scrub.Event("Christmas Day (Observed) 2021")
	assert.Equal(t, once, scrub.Event(once))
}
