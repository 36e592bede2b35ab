package calendar_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicalnyc/civicalnyc/internal/calendar"
)

func TestResolveStatus_ParkingVocabulary(t *testing.T) {
	tests := []struct {
		raw  string
		want calendar.ExceptionType
	}{
		{"IN EFFECT", calendar.ExceptionNormalActive},
		{"NOT IN EFFECT", calendar.ExceptionNormalSuspended},
		{"SUSPENDED", calendar.ExceptionSuspended},
		{"NO INFORMATION", calendar.ExceptionUnsure},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			detail, err := calendar.ResolveStatus(calendar.ServiceParking, tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, detail.ExceptionType)
			assert.NotEmpty(t, detail.DisplayName)
			assert.NotEmpty(t, detail.Description)
		})
	}
}

func TestResolveStatus_SchoolVocabulary(t *testing.T) {
	tests := []struct {
		raw  string
		want calendar.ExceptionType
	}{
		{"OPEN", calendar.ExceptionNormalActive},
		{"CLOSED", calendar.ExceptionSuspended},
		{"NOT IN SESSION", calendar.ExceptionSuspended},
		{"PARTLY OPEN", calendar.ExceptionPartial},
		{"STAFF ONLY", calendar.ExceptionPartial},
		{"REMOTE ONLY", calendar.ExceptionRemote},
		{"NO INFORMATION", calendar.ExceptionUnsure},
		{"TENTATIVE", calendar.ExceptionUnsure},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			detail, err := calendar.ResolveStatus(calendar.ServiceSchool, tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, detail.ExceptionType)
		})
	}
}

func TestResolveStatus_SanitationVocabulary(t *testing.T) {
	tests := []struct {
		raw  string
		want calendar.ExceptionType
	}{
		{"ON SCHEDULE", calendar.ExceptionNormalActive},
		{"NOT IN EFFECT", calendar.ExceptionNormalSuspended},
		{"SUSPENDED", calendar.ExceptionSuspended},
		{"DELAYED", calendar.ExceptionDelayed},
		{"COMPOST SUSPENDED", calendar.ExceptionPartial},
		{"COLLECTION AND RECYCLING SUSPENDED", calendar.ExceptionPartial},
		{"NO INFORMATION", calendar.ExceptionUnsure},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			detail, err := calendar.ResolveStatus(calendar.ServiceSanitation, tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, detail.ExceptionType)
		})
	}
}

func TestResolveStatus_SameRawStringDifferentServices(t *testing.T) {
	// "NOT IN EFFECT" exists in two vocabularies with different wording;
	// resolution must be keyed by (service, status), not status alone.
	parking, err := calendar.ResolveStatus(calendar.ServiceParking, "NOT IN EFFECT")
	require.NoError(t, err)
	sanitation, err := calendar.ResolveStatus(calendar.ServiceSanitation, "NOT IN EFFECT")
	require.NoError(t, err)

	assert.Equal(t, calendar.ExceptionNormalSuspended, parking.ExceptionType)
	assert.Equal(t, calendar.ExceptionNormalSuspended, sanitation.ExceptionType)
	assert.NotEqual(t, parking.Description, sanitation.Description)
}

func TestResolveStatus_UnknownStatus(t *testing.T) {
	_, err := calendar.ResolveStatus(calendar.ServiceParking, "OPEN")
	require.Error(t, err)
	assert.True(t, errors.Is(err, calendar.ErrUnexpectedEntry))

	var entryErr *calendar.UnexpectedEntryError
	require.True(t, errors.As(err, &entryErr))
	assert.Equal(t, calendar.ServiceParking, entryErr.Service)
	assert.Equal(t, "OPEN", entryErr.RawStatus)
}

func TestResolveStatus_UnknownService(t *testing.T) {
	_, err := calendar.ResolveStatus(calendar.ServiceType("Ferries"), "ON SCHEDULE")
	assert.True(t, errors.Is(err, calendar.ErrUnexpectedEntry))
}

func TestExceptionType_Exceptional(t *testing.T) {
	assert.False(t, calendar.ExceptionNormalActive.Exceptional())
	assert.False(t, calendar.ExceptionNormalSuspended.Exceptional())

	for _, e := range []calendar.ExceptionType{
		calendar.ExceptionSuspended,
		calendar.ExceptionDelayed,
		calendar.ExceptionPartial,
		calendar.ExceptionUnsure,
		calendar.ExceptionRecess,
		calendar.ExceptionRemote,
	} {
		assert.True(t, e.Exceptional(), string(e))
	}
}

func TestParseServiceType(t *testing.T) {
	for _, raw := range []string{"Alternate Side Parking", "Schools", "Collections"} {
		service, ok := calendar.ParseServiceType(raw)
		assert.True(t, ok)
		assert.Equal(t, raw, string(service))
	}

	_, ok := calendar.ParseServiceType("Ferries")
	assert.False(t, ok)
}

func TestServiceType_Names(t *testing.T) {
	assert.Equal(t, "Parking", calendar.ServiceParking.Name())
	assert.Equal(t, "School", calendar.ServiceSchool.Name())
	assert.Equal(t, "Sanitation", calendar.ServiceSanitation.Name())

	assert.Equal(t, "Rule Suspension", calendar.ServiceParking.ExceptionName())
	assert.Equal(t, "Closure", calendar.ServiceSchool.ExceptionName())
	assert.Equal(t, "Collection Suspension", calendar.ServiceSanitation.ExceptionName())
}
