package dateparse

import "github.com/cacack/caldate"

// Era distinguishes a short/long era designator matched by the parser.
type Era int

const (
	// EraUnknown means no era designator was present in the input.
	EraUnknown Era = iota
	// EraBC means an AD-negative era designator (BC, BCE, and variants).
	EraBC
	// EraAD means an AD-positive era designator (AD, CE, and variants).
	EraAD
)

// Meridiem distinguishes AM/PM matched by the parser, in any of the
// locale forms the format grammar supports (AM/PM, am/pm, a.m./p.m., a/p).
type Meridiem int

const (
	// MeridiemNone means no meridiem marker was present in the input.
	MeridiemNone Meridiem = iota
	// MeridiemAM is a morning marker.
	MeridiemAM
	// MeridiemPM is an afternoon/evening marker.
	MeridiemPM
)

// ParsedFields is the record the parser fills in while consuming a
// pattern's segments against input text. Every field is optional; the
// Has* flags distinguish "not present in the input" from a present zero
// value. Reconcile merges this record into a caldate.ZonedDateTime.
type ParsedFields struct {
	YearUnsigned    int
	HasYearUnsigned bool

	Era Era

	YearSigned    int
	HasYearSigned bool

	Month    caldate.Month
	HasMonth bool

	ISOWeek    int
	HasISOWeek bool

	DayOfWeek    caldate.Weekday
	HasDayOfWeek bool

	DayOfMonth    int
	HasDayOfMonth bool

	DayOfYear    int
	HasDayOfYear bool

	Meridiem Meridiem

	Hour12    int
	HasHour12 bool

	Hour24    int
	HasHour24 bool

	Minute    int
	HasMinute bool

	Second    int
	HasSecond bool

	Nano    int
	HasNano bool

	Zone    caldate.TimeZone
	HasZone bool
}
