package dateparse

import (
	"strconv"
	"strings"

	"github.com/cacack/caldate"
	"golang.org/x/text/cases"
)

var fold = cases.Fold()

// foldEqual reports whether a and b are equal under Unicode case folding.
func foldEqual(a, b string) bool {
	return fold.String(a) == fold.String(b)
}

// foldHasPrefix reports whether s starts with prefix under Unicode case
// folding.
func foldHasPrefix(s, prefix string) bool {
	if len(s) < len(prefix) {
		// An s shorter than prefix in bytes never matches, even where
		// case folding would map the two to equal strings.
		return foldEqual(s, prefix) && len(s) == len(prefix)
	}
	return foldEqual(s[:len(prefix)], prefix)
}

// consumeDigits consumes up to maxWidth ASCII digits from the start of s.
// Fails if zero digits are found.
func consumeDigits(s string, maxWidth int) (value int, rest string, err error) {
	n := 0
	for n < len(s) && n < maxWidth && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, s, &caldate.InvalidInputError{Segment: "digits", Input: s, Reason: "expected at least one digit"}
	}
	v, convErr := strconv.Atoi(s[:n])
	if convErr != nil {
		return 0, s, &caldate.InvalidInputError{Segment: "digits", Input: s, Reason: "digits overflow"}
	}
	return v, s[n:], nil
}

// consumeSignedInt consumes an optional leading sign (+ or -) then
// digits, per the "signed integer" rule.
func consumeSignedInt(s string, maxWidth int) (value int, rest string, err error) {
	neg := false
	r := s
	if len(r) > 0 && (r[0] == '+' || r[0] == '-') {
		neg = r[0] == '-'
		r = r[1:]
	}
	v, r, err := consumeDigits(r, maxWidth)
	if err != nil {
		return 0, s, err
	}
	if neg {
		v = -v
	}
	return v, r, nil
}

// consumeYearSigned implements the `Y` directive: an optional leading
// `-`, then the magnitude. Width 1 means effectively unbounded (up to 250
// digits).
func consumeYearSigned(s string, runLen int) (value int, rest string, err error) {
	width := runLen
	if width <= 1 {
		width = 250
	}
	neg := false
	r := s
	if len(r) > 0 && r[0] == '-' {
		neg = true
		r = r[1:]
	}
	v, r, err := consumeDigits(r, width)
	if err != nil {
		return 0, s, err
	}
	if neg {
		v = -v
	}
	return v, r, nil
}

// consumeYearUnsigned implements the `y` directive: unsigned magnitude,
// with a +2000 shift when the run length is 2 or 3.
func consumeYearUnsigned(s string, runLen int) (value int, rest string, err error) {
	v, r, err := consumeDigits(s, 250)
	if err != nil {
		return 0, s, err
	}
	if runLen == 2 || runLen == 3 {
		v += 2000
	}
	return v, r, nil
}

var eraShortTable = []struct {
	text string
	era  Era
}{
	{"b.c.e.", EraBC}, {"bce", EraBC}, {"b.c.", EraBC}, {"bc", EraBC},
	{"c.e.", EraAD}, {"ce", EraAD}, {"a.d.", EraAD}, {"ad", EraAD},
}

// consumeEraShort matches a case-sensitive era designator: ad, a.d., ce,
// c.e., bc, b.c., bce, b.c.e., and their uppercase variants.
func consumeEraShort(s string) (era Era, rest string, err error) {
	for _, variant := range eraShortTable {
		for _, text := range []string{variant.text, strings.ToUpper(variant.text)} {
			if strings.HasPrefix(s, text) {
				return variant.era, s[len(text):], nil
			}
		}
	}
	return EraUnknown, s, &caldate.InvalidInputError{Segment: "EraDesignatorShort", Input: s, Reason: "no era designator matched"}
}

var eraLongTable = []struct {
	text string
	era  Era
}{
	{"before current era", EraBC},
	{"before christ", EraBC},
	// Corrected spelling of the source's "current erra" typo (see
	// DESIGN.md); "current era" means AD/CE.
	{"current era", EraAD},
	{"anno domini", EraAD},
}

// consumeEraLong matches a case-insensitive long era designator.
func consumeEraLong(s string) (era Era, rest string, err error) {
	for _, variant := range eraLongTable {
		if foldHasPrefix(s, variant.text) {
			return variant.era, s[len(variant.text):], nil
		}
	}
	return EraUnknown, s, &caldate.InvalidInputError{Segment: "EraDesignatorLong", Input: s, Reason: "no era designator matched"}
}

var monthNamesLong = [...]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}
var monthNamesShort = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// consumeMonthName case-insensitively prefix-matches a month name (long
// names tried first, since "Jan" would otherwise shadow "January"), and
// advances by the matched name's length. The source this is adapted from
// advanced by a fixed `february`-sized stand-in regardless of which
// month matched, which truncates or overruns the input for every month
// other than February; fixed here to use len(matched name).
func consumeMonthName(s string) (month caldate.Month, rest string, err error) {
	for i, name := range monthNamesLong {
		if foldHasPrefix(s, name) {
			return caldate.Month(i + 1), s[len(name):], nil
		}
	}
	for i, name := range monthNamesShort {
		if foldHasPrefix(s, name) {
			return caldate.Month(i + 1), s[len(name):], nil
		}
	}
	return 0, s, &caldate.InvalidInputError{Segment: "MonthName", Input: s, Reason: "no month name matched"}
}

var weekdayNamesFull = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
var weekdayNamesShort = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
var weekdayNamesFirst2 = [...]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// consumeDayOfWeekName lowercases a fixed window of the input (sized to
// the longest weekday name) and prefix-matches the seven English names,
// longest names first.
func consumeDayOfWeekName(s string) (w caldate.Weekday, rest string, err error) {
	window := s
	if len(window) > 9 {
		window = window[:9]
	}
	folded := fold.String(window)
	for i, name := range weekdayNamesFull {
		f := fold.String(name)
		if strings.HasPrefix(folded, f) {
			return caldate.Weekday(i + 1), s[len(name):], nil
		}
	}
	for i, name := range weekdayNamesShort {
		f := fold.String(name)
		if strings.HasPrefix(folded, f) {
			return caldate.Weekday(i + 1), s[len(name):], nil
		}
	}
	return 0, s, &caldate.InvalidInputError{Segment: "DayOfWeekName", Input: s, Reason: "no weekday name matched"}
}

// consumeDayOfWeekNameFirst2 matches the two-letter weekday abbreviation
// (Mo, Tu, We, Th, Fr, Sa, Su) used by the eeeeee directive.
func consumeDayOfWeekNameFirst2(s string) (w caldate.Weekday, rest string, err error) {
	window := s
	if len(window) > 2 {
		window = window[:2]
	}
	folded := fold.String(window)
	for i, name := range weekdayNamesFirst2 {
		f := fold.String(name)
		if strings.HasPrefix(folded, f) {
			return caldate.Weekday(i + 1), s[len(name):], nil
		}
	}
	return 0, s, &caldate.InvalidInputError{Segment: "DayOfWeekNameFirst2Letters", Input: s, Reason: "no weekday abbreviation matched"}
}

// consumeTimezoneOffset implements the x/X directive family: a signed
// numeric of 3 digits (+-HH) or 5 digits (+-HHMM), optionally followed by
// ":MM" if the next character is a colon. allowZ additionally accepts
// "Z"/"z" meaning UTC (the X family).
func consumeTimezoneOffset(s string, allowZ bool) (zone caldate.TimeZone, rest string, err error) {
	if allowZ && len(s) > 0 && (s[0] == 'Z' || s[0] == 'z') {
		return caldate.UTC, s[1:], nil
	}
	if len(s) == 0 || (s[0] != '+' && s[0] != '-') {
		return caldate.TimeZone{}, s, &caldate.InvalidInputError{Segment: "TimezoneOffset", Input: s, Reason: "expected a sign"}
	}
	neg := s[0] == '-'
	r := s[1:]

	digits, r2, derr := consumeDigits(r, 5)
	if derr != nil {
		return caldate.TimeZone{}, s, derr
	}
	var hours, minutes int
	consumed := len(r) - len(r2)
	switch consumed {
	case 2:
		hours, minutes = digits, 0
	case 4:
		hours, minutes = digits/100, digits%100
	default:
		return caldate.TimeZone{}, s, &caldate.InvalidInputError{Segment: "TimezoneOffset", Input: s, Reason: "expected 2 or 4 offset digits"}
	}
	rest = r2
	if len(rest) > 0 && rest[0] == ':' {
		mm, r3, merr := consumeDigits(rest[1:], 2)
		if merr == nil {
			minutes = mm
			rest = r3
		}
	}
	z, zerr := caldate.NewTimeZone(neg, hours, minutes, "")
	if zerr != nil {
		return caldate.TimeZone{}, s, zerr
	}
	return z, rest, nil
}

// consumeGmtOffset implements the O/OO..OOOO directive family: the
// literal "GMT", optionally followed by "+-HH" then optional ":MM".
func consumeGmtOffset(s string) (zone caldate.TimeZone, rest string, err error) {
	if !foldHasPrefix(s, "GMT") {
		return caldate.TimeZone{}, s, &caldate.InvalidInputError{Segment: "GmtOffset", Input: s, Reason: "expected literal GMT"}
	}
	r := s[3:]
	if len(r) == 0 || (r[0] != '+' && r[0] != '-') {
		return caldate.GMT, r, nil
	}
	neg := r[0] == '-'
	hours, r2, herr := consumeDigits(r[1:], 2)
	if herr != nil {
		return caldate.TimeZone{}, s, herr
	}
	minutes := 0
	rest = r2
	if len(rest) > 0 && rest[0] == ':' {
		mm, r3, merr := consumeDigits(rest[1:], 2)
		if merr == nil {
			minutes = mm
			rest = r3
		}
	}
	z, zerr := caldate.NewTimeZone(neg, hours, minutes, "GMT")
	if zerr != nil {
		return caldate.TimeZone{}, s, zerr
	}
	return z, rest, nil
}

// consumeFraction parses up to width digits and scales the result to
// nanoseconds.
func consumeFraction(s string, width int) (nanos int, rest string, err error) {
	n := 0
	for n < len(s) && n < width && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, s, &caldate.InvalidInputError{Segment: "FractionOfASecond", Input: s, Reason: "expected at least one digit"}
	}
	v, convErr := strconv.Atoi(s[:n])
	if convErr != nil {
		return 0, s, &caldate.InvalidInputError{Segment: "FractionOfASecond", Input: s, Reason: "digits overflow"}
	}
	for i := n; i < 9; i++ {
		v *= 10
	}
	return v, s[n:], nil
}

var meridiemTable = []struct {
	text     string
	meridiem Meridiem
}{
	{"a.m.", MeridiemAM}, {"p.m.", MeridiemPM},
	{"am", MeridiemAM}, {"pm", MeridiemPM},
	{"a", MeridiemAM}, {"p", MeridiemPM},
}

// consumeMeridiem matches any of the meridiem spellings the format
// grammar's a/A directive family supports, case-insensitively.
func consumeMeridiem(s string) (m Meridiem, rest string, err error) {
	for _, variant := range meridiemTable {
		if foldHasPrefix(s, variant.text) {
			return variant.meridiem, s[len(variant.text):], nil
		}
	}
	return MeridiemNone, s, &caldate.InvalidInputError{Segment: "Meridiem", Input: s, Reason: "no meridiem matched"}
}
