package caldate

import "testing"

func TestNewTimeValidation(t *testing.T) {
	if _, err := NewTime(23, 59, 59, 999_999_999); err != nil {
		t.Errorf("unexpected error for max valid time: %v", err)
	}
	if _, err := NewTime(24, 0, 0, 0); err == nil {
		t.Error("expected error for hour 24")
	}
	if _, err := NewTime(0, 60, 0, 0); err == nil {
		t.Error("expected error for minute 60")
	}
	if _, err := NewTime(0, 0, 60, 0); err == nil {
		t.Error("expected error for second 60")
	}
	if _, err := NewTime(0, 0, 0, 1_000_000_000); err == nil {
		t.Error("expected error for nano 1e9")
	}
}

func TestNewTimeZoneValidation(t *testing.T) {
	if _, err := NewTimeZone(false, 14, 0, ""); err != nil {
		t.Errorf("unexpected error at +14:00: %v", err)
	}
	if _, err := NewTimeZone(true, 14, 0, ""); err != nil {
		t.Errorf("unexpected error at -14:00: %v", err)
	}
	if _, err := NewTimeZone(false, 15, 0, ""); err == nil {
		t.Error("expected error for hours = 15")
	}
	if _, err := NewTimeZone(true, 15, 0, ""); err == nil {
		t.Error("expected error for hours = -15")
	}
	if _, err := NewTimeZone(false, 5, 60, ""); err == nil {
		t.Error("expected error for minutes = 60")
	}
}

func TestTimeZoneOffsetMinutesSign(t *testing.T) {
	z, err := NewTimeZone(true, 5, 30, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := z.OffsetMinutes(); got != -330 {
		t.Errorf("OffsetMinutes() = %d, want -330", got)
	}
}

// A negative offset with an hours magnitude of zero (-00:30) must not
// collapse into the same representation as +00:30; the sign is carried
// independently of the (unsigned) hours/minutes magnitude.
func TestTimeZoneZeroHourNegativeOffsetIsDistinctFromPositive(t *testing.T) {
	neg, err := NewTimeZone(true, 0, 30, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pos, err := NewTimeZone(false, 0, 30, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if neg.OffsetMinutes() != -30 {
		t.Errorf("OffsetMinutes() = %d, want -30", neg.OffsetMinutes())
	}
	if pos.OffsetMinutes() != 30 {
		t.Errorf("OffsetMinutes() = %d, want 30", pos.OffsetMinutes())
	}
	if neg.Equal(pos) {
		t.Error("-00:30 and +00:30 must not compare equal")
	}
	if neg.String() != "-00:30" {
		t.Errorf("String() = %q, want -00:30", neg.String())
	}
}

func TestTimeZoneEqualityIgnoresLabel(t *testing.T) {
	if !UTC.Equal(GMT) {
		t.Error("UTC and GMT should compare equal, ignoring label")
	}
	if UTC.Label() == GMT.Label() {
		t.Error("UTC and GMT should carry different labels")
	}
}

func TestUTCAndGMTAreZeroOffset(t *testing.T) {
	if UTC.OffsetMinutes() != 0 {
		t.Errorf("UTC.OffsetMinutes() = %d, want 0", UTC.OffsetMinutes())
	}
	if GMT.OffsetMinutes() != 0 {
		t.Errorf("GMT.OffsetMinutes() = %d, want 0", GMT.OffsetMinutes())
	}
	if GMT.Label() != "GMT" {
		t.Errorf("GMT.Label() = %q, want %q", GMT.Label(), "GMT")
	}
}
