package dateparse

import "github.com/cacack/caldate"

func absInt64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// yearUnsignedToAstro converts an unsigned year magnitude plus an era
// designator into astronomical year numbering. A BC era negates the
// magnitude and runs it through the AD->astronomical conversion; AD (or
// no era, which defaults to AD) treats the magnitude as the astronomical
// year directly, since AD and astronomical numbering agree for years >= 1.
func yearUnsignedToAstro(magnitude int, era Era) (caldate.AstronomicalYear, error) {
	if era == EraBC {
		astro, err := caldate.ADToAstronomical(caldate.AnnoDominiYear(-magnitude))
		if err != nil {
			return 0, err
		}
		return astro, nil
	}
	if magnitude == 0 {
		return 0, &caldate.YearZeroError{}
	}
	return caldate.AstronomicalYear(magnitude), nil
}

// resolveYear implements reconciliation step 1.
func resolveYear(fields ParsedFields) (caldate.AstronomicalYear, error) {
	switch {
	case fields.HasYearSigned && fields.HasYearUnsigned:
		fromUnsigned, err := yearUnsignedToAstro(fields.YearUnsigned, fields.Era)
		if err != nil {
			return 0, err
		}
		signed := caldate.AstronomicalYear(fields.YearSigned)
		if signed != fromUnsigned {
			return 0, &caldate.ConflictingInputError{Field: "year", First: itoa(int(signed)), Second: itoa(int(fromUnsigned))}
		}
		return signed, nil
	case fields.HasYearSigned:
		return caldate.AstronomicalYear(fields.YearSigned), nil
	case fields.HasYearUnsigned:
		return yearUnsignedToAstro(fields.YearUnsigned, fields.Era)
	default:
		return 1, nil
	}
}

// resolveHour implements reconciliation step 9.
func resolveHour(fields ParsedFields) (int, error) {
	if !fields.HasHour12 {
		if fields.HasHour24 {
			return fields.Hour24, nil
		}
		return 0, nil
	}
	var hour int
	switch fields.Meridiem {
	case MeridiemAM:
		if fields.Hour12 == 12 {
			hour = 0
		} else {
			hour = fields.Hour12
		}
	case MeridiemPM:
		if fields.Hour12 == 12 {
			hour = 12
		} else {
			hour = fields.Hour12 + 12
		}
	default:
		hour = fields.Hour12
	}
	if fields.HasHour24 && fields.Hour24 != hour {
		return 0, &caldate.ConflictingInputError{Field: "Hour", First: itoa(hour), Second: itoa(fields.Hour24)}
	}
	return hour, nil
}

// Reconcile merges a ParsedFields record into a ZonedDateTime, following
// the ten-step algorithm: resolve the year, seed January 1 of that year,
// then apply month, ISO week, day-of-year, day-of-month, and day-of-week
// in that order, validate the resulting date, then resolve the time of
// day and zone.
func Reconcile(fields ParsedFields) (caldate.ZonedDateTime, error) {
	year, err := resolveYear(fields)
	if err != nil {
		return caldate.ZonedDateTime{}, err
	}

	date := caldate.GregorianDate{Year: year, Month: caldate.January, Day: 1}

	if fields.HasMonth {
		if fields.Month < caldate.January || fields.Month > caldate.December {
			return caldate.ZonedDateTime{}, &caldate.InvalidDateError{Calendar: "Gregorian", Year: int(year), Month: int(fields.Month), Day: 1, Reason: "month out of range 1..12"}
		}
		date.Month = fields.Month
	}

	if fields.HasISOWeek {
		weekMonday := caldate.ISOWeekMonday(year, fields.ISOWeek)
		weekDate := caldate.GregorianFromDayNumber(weekMonday)
		if weekDate.Year < year {
			weekDate = caldate.GregorianDate{Year: year, Month: caldate.January, Day: 1}
		} else if fields.HasMonth {
			diff := int(weekDate.Month) - int(date.Month)
			if diff != 0 {
				monthFirst := caldate.GregorianDate{Year: year, Month: date.Month, Day: 1}
				if absInt64(weekMonday.Sub(monthFirst.ToDayNumber())) <= 7 {
					weekDate = monthFirst
				} else {
					return caldate.ZonedDateTime{}, &caldate.ConflictingInputError{
						Field: "ISOWeek", First: date.Month.String(), Second: weekDate.Month.String(),
					}
				}
			}
		}
		date = weekDate
	}

	if fields.HasDayOfYear {
		maxDay := caldate.DaysInGregorianYear(year)
		if fields.DayOfYear < 1 || fields.DayOfYear > maxDay {
			return caldate.ZonedDateTime{}, &caldate.InvalidDateError{Calendar: "Gregorian", Year: int(year), Day: fields.DayOfYear, Reason: "day of year out of range"}
		}
		implied := caldate.GregorianDate{Year: year, Month: caldate.January, Day: 1}.AddDays(int64(fields.DayOfYear - 1))
		conflict := false
		switch {
		case fields.HasISOWeek:
			conflict = absInt64(implied.ToDayNumber().Sub(date.ToDayNumber())) > 7
		case fields.HasMonth:
			conflict = implied.Month != date.Month
		}
		if conflict {
			return caldate.ZonedDateTime{}, &caldate.ConflictingInputError{
				Field: "DayOfYear", First: date.Month.String(), Second: implied.Month.String(),
			}
		}
		date = implied
	}

	if fields.HasDayOfMonth {
		date.Day = fields.DayOfMonth
	}

	if fields.HasDayOfWeek {
		// A day explicitly pinned down by day-of-month or day-of-year must
		// agree with the stated weekday; a day only narrowed to a week (by
		// ISO week, or not set at all) instead lets the weekday pick which
		// day within that range, by snapping forward.
		explicitDay := fields.HasDayOfMonth || fields.HasDayOfYear
		if date.Weekday() != fields.DayOfWeek {
			if explicitDay {
				return caldate.ZonedDateTime{}, &caldate.ConflictingInputError{
					Field: "DayOfWeek", First: date.Weekday().String(), Second: fields.DayOfWeek.String(),
				}
			}
			date = date.StrictlyAfter(fields.DayOfWeek)
		}
	}

	validated, err := caldate.NewGregorianDate(date.Year, date.Month, date.Day)
	if err != nil {
		return caldate.ZonedDateTime{}, err
	}
	date = validated

	hour, err := resolveHour(fields)
	if err != nil {
		return caldate.ZonedDateTime{}, err
	}

	minute, second, nano := 0, 0, 0
	if fields.HasMinute {
		minute = fields.Minute
	}
	if fields.HasSecond {
		second = fields.Second
	}
	if fields.HasNano {
		nano = fields.Nano
	}
	timeOfDay, err := caldate.NewTime(hour, minute, second, nano)
	if err != nil {
		return caldate.ZonedDateTime{}, err
	}

	zone := caldate.UTC
	if fields.HasZone {
		zone = fields.Zone
	}

	return caldate.ZonedDateTime{Date: date, Time: timeOfDay, Zone: zone}, nil
}

