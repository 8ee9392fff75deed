package style

import (
	"strings"
	"testing"

	"github.com/voltserv/reportengine/theme"
)

func TestNewSetUsesThemeAccent(t *testing.T) {
	th := theme.FromSettings(nil)
	set := NewSet(th)

	if set.CoverSubtitle.Color != th.Primary {
		t.Errorf("subtitle color = %v, want primary %v", set.CoverSubtitle.Color, th.Primary)
	}
	if set.SectionHeader.Color != theme.White {
		t.Errorf("section header must be white on the banner")
	}
	if set.Body.Align != "J" {
		t.Errorf("body align = %q, want justified", set.Body.Align)
	}
}

func TestBreakLongTokens(t *testing.T) {
	short := "ordinary remark with spaces"
	if got := BreakLongTokens(short, 10); got != short {
		t.Errorf("short tokens changed: %q", got)
	}

	long := strings.Repeat("x", 35)
	got := BreakLongTokens(long, 10)
	for _, f := range strings.Fields(got) {
		if len(f) > 10 {
			t.Errorf("token %q exceeds limit after split", f)
		}
	}
	if strings.ReplaceAll(got, " ", "") != long {
		t.Errorf("split lost characters: %q", got)
	}
}

func TestCellTextNormalizesCRLF(t *testing.T) {
	got := CellText("line one\r\nline two")
	if strings.Contains(got, "\r") {
		t.Errorf("carriage return survived: %q", got)
	}
}
