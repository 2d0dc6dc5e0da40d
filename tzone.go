package caldate

import "fmt"

// Time is a wall-clock time of day, independent of any calendar date.
type Time struct {
	Hour   int
	Minute int
	Second int
	Nano   int
}

// NewTime validates and constructs a Time.
func NewTime(hour, minute, second, nano int) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, &InvalidInputError{Segment: "Time", Input: fmt.Sprintf("%d", hour), Reason: "hour out of range 0..23"}
	}
	if minute < 0 || minute > 59 {
		return Time{}, &InvalidInputError{Segment: "Time", Input: fmt.Sprintf("%d", minute), Reason: "minute out of range 0..59"}
	}
	if second < 0 || second > 59 {
		return Time{}, &InvalidInputError{Segment: "Time", Input: fmt.Sprintf("%d", second), Reason: "second out of range 0..59"}
	}
	if nano < 0 || nano > 999_999_999 {
		return Time{}, &InvalidInputError{Segment: "Time", Input: fmt.Sprintf("%d", nano), Reason: "nano out of range 0..999999999"}
	}
	return Time{Hour: hour, Minute: minute, Second: second, Nano: nano}, nil
}

// Midnight is 00:00:00.000000000.
var Midnight = Time{}

// TimeZone is a fixed UTC offset with an optional display label. Only
// fixed offsets are modeled; there is no Olson/DST-aware zone database.
type TimeZone struct {
	offsetMinutes int
	label         string
}

// NewTimeZone validates and constructs a TimeZone from an explicit sign and
// unsigned hours/minutes magnitude, mirroring the ± sign field kept
// alongside the offset components. Taking the sign as its own parameter
// (rather than folding it into a signed hours value) means a zero-hour
// negative offset such as -00:30 is distinguishable from +00:30, which a
// signed-hours encoding cannot represent since -0 == 0. Fails with
// InvalidZoneError when hours > 14 or minutes > 59.
func NewTimeZone(negative bool, hours, minutes int, label string) (TimeZone, error) {
	if hours < 0 || hours > 14 {
		return TimeZone{}, &InvalidZoneError{Hours: hours, Minutes: minutes, Reason: "hours out of range 0..14"}
	}
	if minutes < 0 || minutes > 59 {
		return TimeZone{}, &InvalidZoneError{Hours: hours, Minutes: minutes, Reason: "minutes out of range 0..59"}
	}
	total := hours*60 + minutes
	if negative {
		total = -total
	}
	return TimeZone{offsetMinutes: total, label: label}, nil
}

// UTC is the zero offset, no label.
var UTC = TimeZone{offsetMinutes: 0, label: ""}

// GMT is the zero offset, labeled "GMT".
var GMT = TimeZone{offsetMinutes: 0, label: "GMT"}

// OffsetMinutes returns the zone's signed offset from UTC, in minutes.
func (z TimeZone) OffsetMinutes() int { return z.offsetMinutes }

// Label returns the zone's optional display label.
func (z TimeZone) Label() string { return z.label }

// Equal reports whether z and other have the same offset; labels are
// display-only and play no part in equality.
func (z TimeZone) Equal(other TimeZone) bool {
	return z.offsetMinutes == other.offsetMinutes
}

func (z TimeZone) String() string {
	sign := "+"
	m := z.offsetMinutes
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%02d:%02d", sign, m/60, m%60)
}

// ZonedDateTime combines a Gregorian date, a time of day, and a timezone.
type ZonedDateTime struct {
	Date GregorianDate
	Time Time
	Zone TimeZone
}
