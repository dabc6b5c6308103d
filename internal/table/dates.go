package table

import (
	"strings"
	"time"
)

// dateFormats is the prioritized list tried when normalizing date cells.
// ISO first, then month-first slash/dash forms (US card statements), then
// month-name forms and two-digit years. Day-first interpretations of
// ambiguous dates like "06/07/2024" lose to month-first on purpose: one
// consistent reading per ingestion path beats guessing per cell.
var dateFormats = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"1-2-2006",
	"02 Jan 2006",
	"2 Jan 2006",
	"Jan 02, 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"January 2, 2006",
	"02.01.2006",
	"01/02/06",
	"1/2/06",
}

// yearlessFormats cover statement rows that omit the year entirely; the
// current year is injected after parsing.
var yearlessFormats = []string{
	"01/02",
	"1/2",
	"Jan 2",
	"Jan 02",
	"2 Jan",
	"01-02",
}

// NormalizeDate parses a raw date cell and renders it as ISO YYYY-MM-DD.
// now supplies the year for year-less dates. The second return is false
// when no format matches; callers on the geometric path keep the raw cell,
// the structured path drops the row.
func NormalizeDate(cell string, now time.Time) (string, bool) {
	s := collapseSpace(cell)
	if s == "" {
		return "", false
	}

	for _, f := range dateFormats {
		if t, err := time.Parse(f, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	for _, f := range yearlessFormats {
		if t, err := time.Parse(f, s); err == nil {
			t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return t.Format("2006-01-02"), true
		}
	}

	// Month names sometimes arrive upper-cased ("14 NOV 2025").
	lowered := properMonthCase(s)
	if lowered != s {
		return NormalizeDate(lowered, now)
	}
	return "", false
}

// properMonthCase rewrites fully upper- or lower-cased month tokens into the
// "Jan" casing time.Parse expects.
func properMonthCase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		if len(f) < 3 {
			continue
		}
		t := strings.ToUpper(f[:1]) + strings.ToLower(f[1:])
		if isMonthToken(t[:3]) {
			fields[i] = t
		}
	}
	return strings.Join(fields, " ")
}

func isMonthToken(s string) bool {
	switch s {
	case "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec":
		return true
	}
	return false
}
