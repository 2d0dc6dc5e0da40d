package dateparse

import (
	"strconv"

	"github.com/cacack/caldate"
	"github.com/cacack/caldate/pattern"
)

func itoa(n int) string { return strconv.Itoa(n) }

// isoWeekdayNumToWeekday converts the e/ee directive's numeric weekday
// (Monday=1..Saturday=6, with both 0 and 7 meaning Sunday) to the
// package's Sunday-first Weekday.
func isoWeekdayNumToWeekday(n int) caldate.Weekday {
	if n == 0 || n == 7 {
		return caldate.Sunday
	}
	return caldate.Weekday(n + 1)
}

// Parse consumes input against the compiled Format's segments in order,
// filling a ParsedFields record. Consumption proceeds segment by segment
// with no backtracking: the first segment that fails to consume its
// expected prefix stops parsing and returns its error.
func Parse(input string, f pattern.Format) (ParsedFields, error) {
	var fields ParsedFields
	rest := input
	for _, seg := range f.Segments() {
		var err error
		rest, err = consumeSegment(&fields, seg, rest)
		if err != nil {
			return ParsedFields{}, err
		}
	}
	return fields, nil
}

// ParseToZonedDateTime consumes input against f and reconciles the result
// into a ZonedDateTime in one call, for callers that don't need the
// intermediate ParsedFields record.
func ParseToZonedDateTime(input string, f pattern.Format) (caldate.ZonedDateTime, error) {
	fields, err := Parse(input, f)
	if err != nil {
		return caldate.ZonedDateTime{}, err
	}
	return Reconcile(fields)
}

func consumeSegment(fields *ParsedFields, seg pattern.Segment, s string) (string, error) {
	width := len(seg.Literal)
	switch seg.Kind {
	case pattern.Text, pattern.TextQuoted:
		if len(s) < len(seg.Literal) || s[:len(seg.Literal)] != seg.Literal {
			return s, &caldate.InvalidInputError{Segment: seg.Kind.String(), Input: s, Reason: "literal text did not match"}
		}
		return s[len(seg.Literal):], nil

	case pattern.YearIso:
		v, rest, err := consumeYearSigned(s, width)
		if err != nil {
			return s, err
		}
		if fields.HasYearSigned && fields.YearSigned != v {
			return s, &caldate.ConflictingInputError{Field: "year", First: itoa(fields.YearSigned), Second: itoa(v)}
		}
		fields.YearSigned, fields.HasYearSigned = v, true
		return rest, nil

	case pattern.Year:
		v, rest, err := consumeYearUnsigned(s, width)
		if err != nil {
			return s, err
		}
		if fields.HasYearUnsigned && fields.YearUnsigned != v {
			return s, &caldate.ConflictingInputError{Field: "year", First: itoa(fields.YearUnsigned), Second: itoa(v)}
		}
		fields.YearUnsigned, fields.HasYearUnsigned = v, true
		return rest, nil

	case pattern.SignedYear:
		if len(s) == 0 || (s[0] != '+' && s[0] != '-') {
			return s, &caldate.InvalidInputError{Segment: "SignedYear", Input: s, Reason: "expected an explicit sign"}
		}
		v, rest, err := consumeSignedInt(s, 250)
		if err != nil {
			return s, err
		}
		fields.YearSigned, fields.HasYearSigned = v, true
		return rest, nil

	case pattern.EraDesignatorShort:
		era, rest, err := consumeEraShort(s)
		if err != nil {
			return s, err
		}
		fields.Era = era
		return rest, nil

	case pattern.EraDesignatorLong:
		era, rest, err := consumeEraLong(s)
		if err != nil {
			return s, err
		}
		fields.Era = era
		return rest, nil

	case pattern.MonthNum:
		v, rest, err := consumeDigits(s, 2)
		if err != nil {
			return s, err
		}
		return rest, setMonth(fields, caldate.Month(v))

	case pattern.MonthNameShort, pattern.MonthNameLong:
		m, rest, err := consumeMonthName(s)
		if err != nil {
			return s, err
		}
		return rest, setMonth(fields, m)

	case pattern.WeekInYear:
		v, rest, err := consumeDigits(s, 2)
		if err != nil {
			return s, err
		}
		if fields.HasISOWeek && fields.ISOWeek != v {
			return s, &caldate.ConflictingInputError{Field: "ISOWeek", First: itoa(fields.ISOWeek), Second: itoa(v)}
		}
		fields.ISOWeek, fields.HasISOWeek = v, true
		return rest, nil

	case pattern.DayOfMonthNum:
		v, rest, err := consumeDigits(s, 2)
		if err != nil {
			return s, err
		}
		if fields.HasDayOfMonth && fields.DayOfMonth != v {
			return s, &caldate.ConflictingInputError{Field: "DayOfMonth", First: itoa(fields.DayOfMonth), Second: itoa(v)}
		}
		fields.DayOfMonth, fields.HasDayOfMonth = v, true
		return rest, nil

	case pattern.DayOfYearNum:
		v, rest, err := consumeDigits(s, 3)
		if err != nil {
			return s, err
		}
		if fields.HasDayOfYear && fields.DayOfYear != v {
			return s, &caldate.ConflictingInputError{Field: "DayOfYear", First: itoa(fields.DayOfYear), Second: itoa(v)}
		}
		fields.DayOfYear, fields.HasDayOfYear = v, true
		return rest, nil

	case pattern.DayOfWeekNum:
		v, rest, err := consumeDigits(s, 1)
		if err != nil {
			return s, err
		}
		return rest, setDayOfWeek(fields, isoWeekdayNumToWeekday(v))

	case pattern.DayOfWeekNameShort, pattern.DayOfWeekNameFull:
		w, rest, err := consumeDayOfWeekName(s)
		if err != nil {
			return s, err
		}
		return rest, setDayOfWeek(fields, w)

	case pattern.DayOfWeekNameFirst2Letters:
		w, rest, err := consumeDayOfWeekNameFirst2(s)
		if err != nil {
			return s, err
		}
		return rest, setDayOfWeek(fields, w)

	case pattern.TimeOfDayLocale, pattern.TimeOfDayAM, pattern.TimeOfDay_am, pattern.TimeOfDay_a_m, pattern.TimeOfDay_ap:
		m, rest, err := consumeMeridiem(s)
		if err != nil {
			return s, err
		}
		fields.Meridiem = m
		return rest, nil

	case pattern.Hour12Num:
		v, rest, err := consumeDigits(s, 2)
		if err != nil {
			return s, err
		}
		if fields.HasHour12 && fields.Hour12 != v {
			return s, &caldate.ConflictingInputError{Field: "Hour12", First: itoa(fields.Hour12), Second: itoa(v)}
		}
		fields.Hour12, fields.HasHour12 = v, true
		return rest, nil

	case pattern.Hour24Num:
		v, rest, err := consumeDigits(s, 2)
		if err != nil {
			return s, err
		}
		if fields.HasHour24 && fields.Hour24 != v {
			return s, &caldate.ConflictingInputError{Field: "Hour24", First: itoa(fields.Hour24), Second: itoa(v)}
		}
		fields.Hour24, fields.HasHour24 = v, true
		return rest, nil

	case pattern.MinuteNum:
		v, rest, err := consumeDigits(s, 2)
		if err != nil {
			return s, err
		}
		if fields.HasMinute && fields.Minute != v {
			return s, &caldate.ConflictingInputError{Field: "Minute", First: itoa(fields.Minute), Second: itoa(v)}
		}
		fields.Minute, fields.HasMinute = v, true
		return rest, nil

	case pattern.SecondNum:
		v, rest, err := consumeDigits(s, 2)
		if err != nil {
			return s, err
		}
		if fields.HasSecond && fields.Second != v {
			return s, &caldate.ConflictingInputError{Field: "Second", First: itoa(fields.Second), Second: itoa(v)}
		}
		fields.Second, fields.HasSecond = v, true
		return rest, nil

	case pattern.FractionOfASecond:
		v, rest, err := consumeFraction(s, width)
		if err != nil {
			return s, err
		}
		fields.Nano, fields.HasNano = v, true
		return rest, nil

	case pattern.TimezoneOffset:
		z, rest, err := consumeTimezoneOffset(s, false)
		if err != nil {
			return s, err
		}
		return rest, setZone(fields, z)

	case pattern.TimezoneOffsetZ:
		z, rest, err := consumeTimezoneOffset(s, true)
		if err != nil {
			return s, err
		}
		return rest, setZone(fields, z)

	case pattern.GmtOffset, pattern.GmtOffsetFull:
		z, rest, err := consumeGmtOffset(s)
		if err != nil {
			return s, err
		}
		return rest, setZone(fields, z)

	case pattern.Unsupported:
		return s, &caldate.UnsupportedFormatError{Literal: seg.Literal}

	default:
		return s, &caldate.UnsupportedFormatError{Literal: seg.Literal}
	}
}

func setMonth(fields *ParsedFields, m caldate.Month) error {
	if fields.HasMonth && fields.Month != m {
		return &caldate.ConflictingInputError{Field: "Month", First: fields.Month.String(), Second: m.String()}
	}
	fields.Month, fields.HasMonth = m, true
	return nil
}

func setDayOfWeek(fields *ParsedFields, w caldate.Weekday) error {
	if fields.HasDayOfWeek && fields.DayOfWeek != w {
		return &caldate.ConflictingInputError{Field: "DayOfWeek", First: fields.DayOfWeek.String(), Second: w.String()}
	}
	fields.DayOfWeek, fields.HasDayOfWeek = w, true
	return nil
}

func setZone(fields *ParsedFields, z caldate.TimeZone) error {
	if fields.HasZone && !fields.Zone.Equal(z) {
		return &caldate.ConflictingInputError{Field: "Zone", First: fields.Zone.String(), Second: z.String()}
	}
	fields.Zone, fields.HasZone = z, true
	return nil
}
