package calendar

// Raw status vocabularies, one per service. Keys are the exact strings the
// API emits. Do not change unless the API changes.

var parkingStatuses = map[string]StatusDetail{
	"IN EFFECT": {
		DisplayName:   "In Effect",
		ExceptionType: ExceptionNormalActive,
		Description:   "Alternate side parking and meters are in effect.",
	},
	"NO INFORMATION": {
		DisplayName:   "No Information",
		ExceptionType: ExceptionUnsure,
		Description:   "Information is not available for this date.",
	},
	"NOT IN EFFECT": {
		DisplayName:   "Not In Effect",
		ExceptionType: ExceptionNormalSuspended,
		Description:   "Alternate side parking and meters are not in effect on Sundays.",
	},
	"SUSPENDED": {
		DisplayName:   "Suspended",
		ExceptionType: ExceptionSuspended,
		Description:   "Alternate side parking and meters are suspended.",
	},
}

var schoolStatuses = map[string]StatusDetail{
	"CLOSED": {
		DisplayName:   "Closed",
		ExceptionType: ExceptionSuspended,
		Description:   "School is closed for the summer.",
	},
	"NO INFORMATION": {
		DisplayName:   "No Information",
		ExceptionType: ExceptionUnsure,
		Description:   "Information is not available for this date.",
	},
	"NOT IN SESSION": {
		DisplayName:   "Not In Session",
		ExceptionType: ExceptionSuspended,
		Description:   "Schools are closed.",
	},
	"OPEN": {
		DisplayName:   "Open",
		ExceptionType: ExceptionNormalActive,
		Description:   "School is open as usual.",
	},
	"PARTLY OPEN": {
		DisplayName:   "Partly Open",
		ExceptionType: ExceptionPartial,
		Description:   "School is open for some students and not others.",
	},
	"REMOTE ONLY": {
		DisplayName:   "Remote Only",
		ExceptionType: ExceptionRemote,
		Description:   "Students are scheduled for remote learning.",
	},
	"STAFF ONLY": {
		DisplayName:   "Closed for Students",
		ExceptionType: ExceptionPartial,
		Description:   "Schools are closed for students but open for staff.",
	},
	"TENTATIVE": {
		DisplayName:   "Tentative",
		ExceptionType: ExceptionUnsure,
		Description:   "Schedule for this day has not yet been determined.",
	},
}

var sanitationStatuses = map[string]StatusDetail{
	"COMPOST SUSPENDED": {
		DisplayName:   "Compost Collection Suspended",
		ExceptionType: ExceptionPartial,
		Description:   "Compost collection is suspended. Trash and recycling collections are on schedule.",
	},
	"DELAYED": {
		DisplayName:   "Delayed",
		ExceptionType: ExceptionDelayed,
		Description:   "Trash, recycling, and compost collections are delayed.",
	},
	"NO INFORMATION": {
		DisplayName:   "To Be Determined",
		ExceptionType: ExceptionUnsure,
		Description:   "Schedule for this day has not yet been determined.",
	},
	"NOT IN EFFECT": {
		DisplayName:   "Not In Effect",
		ExceptionType: ExceptionNormalSuspended,
		Description:   "Trash, recycling, and compost collections are not in effect on Sundays.",
	},
	"ON SCHEDULE": {
		DisplayName:   "On Schedule",
		ExceptionType: ExceptionNormalActive,
		Description:   "Trash, recycling, and compost collection are operating as usual.",
	},
	"SUSPENDED": {
		DisplayName:   "Suspended",
		ExceptionType: ExceptionSuspended,
		Description:   "Trash, recycling, and compost collections are suspended.",
	},
	"COLLECTION AND RECYCLING SUSPENDED": {
		DisplayName:   "Trash and Recycling Collection Suspended",
		ExceptionType: ExceptionPartial,
		Description:   "Trash and recycling collections are suspended. Compost collection is on schedule.",
	},
}

// vocabularies keys each service's status table. The same raw string may
// appear in more than one table with a different meaning, so resolution is
// always by (service, status).
var vocabularies = map[ServiceType]map[string]StatusDetail{
	ServiceParking:    parkingStatuses,
	ServiceSchool:     schoolStatuses,
	ServiceSanitation: sanitationStatuses,
}

// ResolveStatus maps a raw API status for a service to its StatusDetail.
// Unknown strings indicate an upstream contract change and fail with
// ErrUnexpectedEntry; they are never defaulted.
func ResolveStatus(service ServiceType, rawStatus string) (StatusDetail, error) {
	vocab, ok := vocabularies[service]
	if !ok {
		return StatusDetail{}, &UnexpectedEntryError{RawType: string(service)}
	}
	detail, ok := vocab[rawStatus]
	if !ok {
		return StatusDetail{}, &UnexpectedEntryError{Service: service, RawStatus: rawStatus}
	}
	return detail, nil
}
