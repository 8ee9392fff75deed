package reportengine

import (
	"strings"
	"time"
)

// DateLayout is the only date form shown to users: DD-MM-YYYY.
const DateLayout = "02-01-2006"

// dateLayouts are the input forms accepted from stored documents, tried in
// order. ISO forms first because that is what the store normally holds.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
}

// ParseDate parses a stored date value in any accepted form.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a stored date value as DD-MM-YYYY. Values that do not
// parse are passed through unchanged so the report still shows what the
// record holds.
func FormatDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return strings.TrimSpace(s)
	}
	return t.Format(DateLayout)
}

// FormatTime renders a time.Time as DD-MM-YYYY.
func FormatTime(t time.Time) string {
	return t.Format(DateLayout)
}
