package caldate

import "testing"

func TestGregorianRoundTripAcrossCenturies(t *testing.T) {
	months := []Month{January, February, March, April, May, June, July, August, September, October, November, December}
	for _, y := range []AstronomicalYear{-500, -44, 0, 1, 100, 1582, 1900, 2000, 2024, 2400, 9999} {
		for _, m := range months {
			for _, d := range []int{1, 15, DaysInGregorianMonth(y, m)} {
				date, err := NewGregorianDate(y, m, d)
				if err != nil {
					t.Fatalf("NewGregorianDate(%d,%v,%d): %v", y, m, d, err)
				}
				got := GregorianFromDayNumber(date.ToDayNumber())
				if got != date {
					t.Errorf("round trip mismatch: %+v -> %v -> %+v", date, date.ToDayNumber(), got)
				}
			}
		}
	}
}

func TestIsGregorianLeapYear(t *testing.T) {
	cases := []struct {
		year AstronomicalYear
		want bool
	}{
		{2000, true}, {1900, false}, {2024, true}, {2023, false}, {1600, true}, {2100, false},
	}
	for _, c := range cases {
		if got := IsGregorianLeapYear(c.year); got != c.want {
			t.Errorf("IsGregorianLeapYear(%d) = %v, want %v", c.year, got, c.want)
		}
	}
}

// January 1, 2024 was a Monday; used here as a grounding anchor for the
// DayNumber <-> Weekday conversion.
func TestJan1_2024IsMonday(t *testing.T) {
	d, err := NewGregorianDate(2024, January, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Weekday() != Monday {
		t.Errorf("Jan 1, 2024 weekday = %v, want Monday", d.Weekday())
	}
}

func TestNewGregorianDateRejectsOutOfRangeDay(t *testing.T) {
	if _, err := NewGregorianDate(2023, February, 29); err == nil {
		t.Fatal("expected an error: 2023 is not a leap year")
	}
	if _, err := NewGregorianDate(2024, February, 29); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewGregorianDateRejectsOutOfRangeMonth(t *testing.T) {
	if _, err := NewGregorianDate(2024, Month(0), 1); err == nil {
		t.Fatal("expected an error")
	}
	if _, err := NewGregorianDate(2024, Month(13), 1); err == nil {
		t.Fatal("expected an error")
	}
}

func TestGregorianAddSubDaysRoundTrip(t *testing.T) {
	d, _ := NewGregorianDate(2024, March, 1)
	forward := d.AddDays(400)
	back := forward.SubDays(400)
	if back != d {
		t.Errorf("AddDays/SubDays did not round trip: %+v -> %+v -> %+v", d, forward, back)
	}
}

func TestWeekdayNavigationOnOrBeforeAndStrictlyAfter(t *testing.T) {
	d, _ := NewGregorianDate(2024, January, 1) // Monday
	if got := d.OnOrBefore(Monday); got != d {
		t.Errorf("OnOrBefore(Monday) on a Monday = %+v, want itself", got)
	}
	friday := d.OnOrBefore(Friday)
	if friday.Weekday() != Friday || !friday.Before(d) {
		t.Errorf("OnOrBefore(Friday) = %+v, want a Friday before %+v", friday, d)
	}
	next := d.StrictlyAfter(Monday)
	if next.Weekday() != Monday || !next.After(d) {
		t.Errorf("StrictlyAfter(Monday) = %+v, want a later Monday", next)
	}
	if next.DayDifference(d) != 7 {
		t.Errorf("StrictlyAfter(Monday) should be exactly 7 days later, got %d", next.DayDifference(d))
	}
}

func TestFirstLastNthWeekday(t *testing.T) {
	nov2024First := GregorianDate{Year: 2024, Month: November, Day: 1}
	firstFriday := nov2024First.FirstWeekday(Friday)
	if firstFriday.Weekday() != Friday || firstFriday.Day > 7 {
		t.Errorf("FirstWeekday(Friday) = %+v, want a Friday in the first 7 days", firstFriday)
	}
	lastFriday := nov2024First.LastWeekday(Friday)
	if lastFriday.Weekday() != Friday || lastFriday.Month != November {
		t.Errorf("LastWeekday(Friday) = %+v, want a Friday in November", lastFriday)
	}
	third, err := nov2024First.NthWeekday(3, Friday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if third.DayDifference(firstFriday) != 14 {
		t.Errorf("3rd Friday should be 14 days after the 1st, got %d", third.DayDifference(firstFriday))
	}
}

func TestNthWeekdayOverflowFails(t *testing.T) {
	feb2024First := GregorianDate{Year: 2024, Month: February, Day: 1}
	if _, err := feb2024First.NthWeekday(6, Monday); err == nil {
		t.Fatal("expected an overflow error: February never has a 6th occurrence of any weekday")
	}
}

func TestISOWeekAndISOWeekMondayAreInverses(t *testing.T) {
	for _, d := range []GregorianDate{
		{Year: 2024, Month: January, Day: 1},
		{Year: 2024, Month: December, Day: 31},
		{Year: 2020, Month: December, Day: 31}, // ISO year 2020 has 53 weeks
		{Year: 2024, Month: June, Day: 15},
	} {
		year, week := d.ISOWeek()
		monday := GregorianFromDayNumber(ISOWeekMonday(year, week))
		if monday.Weekday() != Monday {
			t.Errorf("ISOWeekMonday(%d, %d) = %+v, want a Monday", year, week, monday)
		}
		if d.DayDifference(monday) < 0 || d.DayDifference(monday) > 6 {
			t.Errorf("%+v should fall within 6 days of its own ISO week's Monday %+v", d, monday)
		}
	}
}

func TestYearsBetweenWholeYears(t *testing.T) {
	a := GregorianDate{Year: 1990, Month: June, Day: 15}
	b := GregorianDate{Year: 2024, Month: June, Day: 15}
	years, days, err := YearsBetween(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if years != 34 || days != 0 {
		t.Errorf("years=%d days=%d, want 34 0", years, days)
	}
}

func TestYearsBetweenClampsLeapDayAnniversary(t *testing.T) {
	a := GregorianDate{Year: 2000, Month: February, Day: 29}
	b := GregorianDate{Year: 2023, Month: March, Day: 1}
	years, _, err := YearsBetween(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if years != 23 {
		t.Errorf("years = %d, want 23", years)
	}
}

func TestYearsBetweenRejectsReversedOrder(t *testing.T) {
	a := GregorianDate{Year: 2024, Month: January, Day: 1}
	b := GregorianDate{Year: 2000, Month: January, Day: 1}
	if _, _, err := YearsBetween(a, b); err == nil {
		t.Fatal("expected an error when b is before a")
	}
}

func TestDayOfYearAndDaysRemaining(t *testing.T) {
	d := GregorianDate{Year: 2024, Month: December, Day: 31}
	if got := d.DayOfYear(); got != 366 {
		t.Errorf("DayOfYear() = %d, want 366 (2024 is a leap year)", got)
	}
	if got := d.DaysRemaining(); got != 1 {
		t.Errorf("DaysRemaining() = %d, want 1", got)
	}
	jan1 := GregorianDate{Year: 2024, Month: January, Day: 1}
	if got := jan1.DayOfYear(); got != 1 {
		t.Errorf("DayOfYear() = %d, want 1", got)
	}
}
