package reportengine

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-04-01", "01-04-2025"},
		{"2025-04-01T10:30:00Z", "01-04-2025"},
		{"2025-04-01 10:30:00", "01-04-2025"},
		{"01-04-2025", "01-04-2025"},
		{"01/04/2025", "01-04-2025"},
		{"2025/04/01", "01-04-2025"},
		{"", ""},
		{"  ", ""},
		{"not a date", "not a date"},
	}
	for _, c := range cases {
		if got := FormatDate(c.in); got != c.want {
			t.Errorf("FormatDate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDateRoundTrip(t *testing.T) {
	// Parsing a rendered date back with the display layout must yield the
	// same calendar day as the stored value.
	stored := "2025-12-31"
	rendered := FormatDate(stored)
	back, err := time.Parse(DateLayout, rendered)
	if err != nil {
		t.Fatalf("parsing rendered date %q: %v", rendered, err)
	}
	orig, ok := ParseDate(stored)
	if !ok {
		t.Fatalf("parsing stored date %q failed", stored)
	}
	if back.Year() != orig.Year() || back.Month() != orig.Month() || back.Day() != orig.Day() {
		t.Errorf("round trip changed the day: stored %v, got back %v", orig, back)
	}
}
