package calendar_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicalnyc/civicalnyc/internal/calendar"
	"github.com/civicalnyc/civicalnyc/pkg/civictime"
)

func TestNormalize_FullDay(t *testing.T) {
	days := []calendar.RawDay{
		{
			TodayID: "20220519",
			Items: []calendar.RawItem{
				{Type: "Schools", Status: "OPEN", Details: "Schools are open."},
				{Type: "Alternate Side Parking", Status: "IN EFFECT", Details: "Rules in effect."},
				{Type: "Collections", Status: "ON SCHEDULE", Details: "Collections on schedule."},
			},
		},
	}

	cal, err := calendar.Normalize(days, false)
	require.NoError(t, err)
	require.Equal(t, 1, cal.Len())

	date := civictime.Date{Year: 2022, Month: time.May, Day: 19}
	day, ok := cal.Lookup(date)
	require.True(t, ok)
	assert.Len(t, day.Services, 3)

	school := day.Services[calendar.ServiceSchool]
	assert.Equal(t, "School", school.ServiceName)
	require.NotNil(t, school.Status)
	assert.Equal(t, calendar.ExceptionNormalActive, school.Status.ExceptionType)
	assert.Equal(t, "Schools are open.", school.RawDescription)
	assert.Equal(t, date, school.Date)
}

func TestNormalize_MissingServiceYieldsNoEntry(t *testing.T) {
	days := []calendar.RawDay{
		{
			TodayID: "20220519",
			Items: []calendar.RawItem{
				{Type: "Schools", Status: "OPEN"},
			},
		},
	}

	cal, err := calendar.Normalize(days, false)
	require.NoError(t, err)

	day, ok := cal.Lookup(civictime.Date{Year: 2022, Month: time.May, Day: 19})
	require.True(t, ok)
	assert.Len(t, day.Services, 1)

	_, hasParking := day.Services[calendar.ServiceParking]
	assert.False(t, hasParking, "no default entry injected for absent services")
}

func TestNormalize_ScrubsExceptionName(t *testing.T) {
	// Matches the documented upstream sample: school open, parking
	// suspended for Memorial Day.
	days := []calendar.RawDay{
		{
			TodayID: "20220519",
			Items: []calendar.RawItem{
				{Type: "Schools", Status: "OPEN", Details: "Schools are open."},
				{
					Type:          "Alternate Side Parking",
					Status:        "SUSPENDED",
					Details:       "Rules suspended.",
					ExceptionName: "Memorial Day (Observed) 2022",
				},
			},
		},
	}

	cal, err := calendar.Normalize(days, true)
	require.NoError(t, err)

	day, ok := cal.Lookup(civictime.Date{Year: 2022, Month: time.May, Day: 19})
	require.True(t, ok)

	school := day.Services[calendar.ServiceSchool]
	require.NotNil(t, school.Status)
	assert.Equal(t, calendar.ExceptionNormalActive, school.Status.ExceptionType)

	parking := day.Services[calendar.ServiceParking]
	require.NotNil(t, parking.Status)
	assert.Equal(t, calendar.ExceptionSuspended, parking.Status.ExceptionType)
	assert.Equal(t, "Memorial Day", parking.ExceptionReason)
}

func TestNormalize_NoScrubKeepsExceptionName(t *testing.T) {
	days := []calendar.RawDay{
		{
			TodayID: "20220519",
			Items: []calendar.RawItem{
				{Type: "Alternate Side Parking", Status: "SUSPENDED", ExceptionName: "Memorial Day (Observed) 2022"},
			},
		},
	}

	cal, err := calendar.Normalize(days, false)
	require.NoError(t, err)

	day, _ := cal.Lookup(civictime.Date{Year: 2022, Month: time.May, Day: 19})
	assert.Equal(t, "Memorial Day (Observed) 2022", day.Services[calendar.ServiceParking].ExceptionReason)
}

func TestNormalize_MalformedDate(t *testing.T) {
	days := []calendar.RawDay{{TodayID: "May 19, 2022"}}

	_, err := calendar.Normalize(days, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, calendar.ErrMalformedResponse))

	var malformed *calendar.MalformedResponseError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "today_id", malformed.Field)
	assert.Equal(t, "May 19, 2022", malformed.Value)
}

func TestNormalize_UnknownServiceType(t *testing.T) {
	days := []calendar.RawDay{
		{
			TodayID: "20220519",
			Items:   []calendar.RawItem{{Type: "Ferries", Status: "ON SCHEDULE"}},
		},
	}

	_, err := calendar.Normalize(days, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, calendar.ErrUnexpectedEntry))

	var entryErr *calendar.UnexpectedEntryError
	require.True(t, errors.As(err, &entryErr))
	assert.Equal(t, "Ferries", entryErr.RawType)
}

func TestNormalize_UnknownStatus(t *testing.T) {
	days := []calendar.RawDay{
		{
			TodayID: "20220519",
			Items:   []calendar.RawItem{{Type: "Schools", Status: "HALF DAY"}},
		},
	}

	_, err := calendar.Normalize(days, false)
	assert.True(t, errors.Is(err, calendar.ErrUnexpectedEntry))
}

func TestNormalize_DuplicateServiceLastWriteWins(t *testing.T) {
	days := []calendar.RawDay{
		{
			TodayID: "20220519",
			Items: []calendar.RawItem{
				{Type: "Schools", Status: "OPEN"},
				{Type: "Schools", Status: "CLOSED"},
			},
		},
	}

	cal, err := calendar.Normalize(days, false)
	require.NoError(t, err)

	day, _ := cal.Lookup(civictime.Date{Year: 2022, Month: time.May, Day: 19})
	require.NotNil(t, day.Services[calendar.ServiceSchool].Status)
	assert.Equal(t, calendar.ExceptionSuspended, day.Services[calendar.ServiceSchool].Status.ExceptionType)
}

func TestNormalize_PreservesResponseOrder(t *testing.T) {
	days := []calendar.RawDay{
		{TodayID: "20220519"},
		{TodayID: "20220520"},
		{TodayID: "20220521"},
	}

	cal, err := calendar.Normalize(days, false)
	require.NoError(t, err)
	require.Equal(t, 3, cal.Len())

	got := cal.Days()
	assert.Equal(t, "2022-05-19", got[0].Date.String())
	assert.Equal(t, "2022-05-20", got[1].Date.String())
	assert.Equal(t, "2022-05-21", got[2].Date.String())
}

func TestNormalize_Empty(t *testing.T) {
	cal, err := calendar.Normalize(nil, false)
	require.NoError(t, err)
	assert.Equal(t, 0, cal.Len())
}
