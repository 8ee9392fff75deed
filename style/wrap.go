package style

import "strings"

// maxTokenRun is the longest unbroken token a table cell tolerates before
// a break opportunity is forced. Roughly a full cell width at 9pt.
const maxTokenRun = 28

// BreakLongTokens inserts break opportunities into unbreakable tokens so
// wrapped cells never overflow their row. Tokens at or under the limit pass
// through unchanged; longer runs are split with spaces every limit runes.
func BreakLongTokens(s string, limit int) string {
	if limit <= 0 {
		limit = maxTokenRun
	}
	fields := strings.Fields(s)
	changed := false
	for i, f := range fields {
		if len([]rune(f)) > limit {
			fields[i] = splitRun(f, limit)
			changed = true
		}
	}
	if !changed {
		return s
	}
	return strings.Join(fields, " ")
}

func splitRun(s string, limit int) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && i%limit == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CellText prepares free text for a wrapping table cell: soft-breaks long
// tokens and normalizes CRLF line endings.
func CellText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return BreakLongTokens(s, maxTokenRun)
}
