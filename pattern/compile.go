package pattern

import (
	"strings"

	"github.com/cacack/caldate"
)

// directiveKind maps a directive letter and the length of its run to a
// SegmentKind. ok is false for a letter that is not part of the directive
// set at all (the caller then treats the run as plain Text).
func directiveKind(letter byte, runLen int) (kind SegmentKind, ok bool) {
	switch letter {
	case 'Y':
		return YearIso, true
	case 'y':
		return Year, true
	case 'u':
		return SignedYear, true
	case 'G':
		switch {
		case runLen <= 3:
			return EraDesignatorShort, true
		case runLen == 4:
			return EraDesignatorLong, true
		default:
			return Unsupported, true
		}
	case 'M':
		switch runLen {
		case 1, 2:
			return MonthNum, true
		case 3:
			return MonthNameShort, true
		case 4:
			return MonthNameLong, true
		default:
			return Unsupported, true
		}
	case 'R':
		return WeekInYear, true
	case 'd':
		if runLen <= 2 {
			return DayOfMonthNum, true
		}
		return Unsupported, true
	case 'D':
		return DayOfYearNum, true
	case 'e':
		switch runLen {
		case 1, 2:
			return DayOfWeekNum, true
		case 3:
			return DayOfWeekNameShort, true
		case 4:
			return DayOfWeekNameFull, true
		case 6:
			return DayOfWeekNameFirst2Letters, true
		default:
			return Unsupported, true
		}
	case 'a':
		if runLen <= 2 {
			return TimeOfDayLocale, true
		}
		return Unsupported, true
	case 'A':
		switch runLen {
		case 1, 2:
			return TimeOfDayAM, true
		case 3:
			return TimeOfDay_am, true
		case 4:
			return TimeOfDay_a_m, true
		case 5:
			return TimeOfDay_ap, true
		default:
			return Unsupported, true
		}
	case 'h':
		if runLen <= 2 {
			return Hour12Num, true
		}
		return Unsupported, true
	case 'H':
		if runLen <= 2 {
			return Hour24Num, true
		}
		return Unsupported, true
	case 'm':
		if runLen <= 2 {
			return MinuteNum, true
		}
		return Unsupported, true
	case 's':
		if runLen <= 2 {
			return SecondNum, true
		}
		return Unsupported, true
	case 'S':
		return FractionOfASecond, true
	case 'x':
		if runLen <= 3 {
			return TimezoneOffset, true
		}
		return Unsupported, true
	case 'X':
		if runLen <= 3 {
			return TimezoneOffsetZ, true
		}
		return Unsupported, true
	case 'O':
		if runLen == 1 {
			return GmtOffset, true
		}
		if runLen <= 4 {
			return GmtOffsetFull, true
		}
		return Unsupported, true
	case 'Q', 'L', 'c', 'k', 'K', 'z', 'v', 'V':
		return Unsupported, true
	default:
		return Text, false
	}
}

func isDirectiveLetter(b byte) bool {
	_, ok := directiveKind(b, 1)
	return ok
}

// Compile parses a format pattern string into a bounded Format. The
// pattern is read one run at a time: consecutive identical directive
// letters collapse into a single Segment (run length encodes width);
// quoted text ('...', with \' and \\ escapes) becomes TextQuoted;
// backslash outside quotes escapes the next character; any other
// character, or run of non-directive characters, becomes Text.
func Compile(s string, opts ...CompileOption) (Format, error) {
	cfg := resolveOptions(opts)
	var f Format

	push := func(kind SegmentKind, literal string) error {
		if f.len >= cfg.maxSegments {
			return &caldate.PatternTooLongError{Limit: cfg.maxSegments}
		}
		f.segments[f.len] = Segment{Kind: kind, Literal: literal}
		f.len++
		return nil
	}

	i := 0
	n := len(s)
	for i < n {
		c := s[i]
		switch {
		case c == '\'':
			lit, next := scanQuoted(s, i)
			if err := push(TextQuoted, lit); err != nil {
				return Format{}, err
			}
			i = next
		case c == '\\' && i+1 < n:
			if err := push(Text, s[i+1:i+2]); err != nil {
				return Format{}, err
			}
			i += 2
		case isDirectiveLetter(c):
			j := i + 1
			for j < n && s[j] == c {
				j++
			}
			kind, _ := directiveKind(c, j-i)
			if err := push(kind, s[i:j]); err != nil {
				return Format{}, err
			}
			i = j
		default:
			j := i + 1
			for j < n && !isDirectiveLetter(s[j]) && s[j] != '\'' && s[j] != '\\' {
				j++
			}
			if err := push(Text, s[i:j]); err != nil {
				return Format{}, err
			}
			i = j
		}
	}
	return f, nil
}

// scanQuoted reads a quoted literal starting at s[start] == '\''. It
// returns the decoded literal text (escapes resolved) and the index just
// past the closing quote. An unterminated quote consumes to end of
// string, matching the no-backtracking posture of the rest of the
// compiler.
func scanQuoted(s string, start int) (string, int) {
	var b strings.Builder
	i := start + 1
	n := len(s)
	for i < n {
		switch s[i] {
		case '\'':
			return b.String(), i + 1
		case '\\':
			if i+1 < n {
				b.WriteByte(s[i+1])
				i += 2
				continue
			}
			i++
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String(), i
}
