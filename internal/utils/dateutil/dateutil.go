// Package dateutil handles the legacy DD.MM.YYYY display-date format used by
// the invoice store. All textual parsing lives here; the core operates on
// real time.Time values.
package dateutil

import (
	"regexp"
	"strings"
	"time"
)

// DisplayLayout is the legacy display/storage format for invoice dates.
const DisplayLayout = "02.01.2006"

// ISOLayout keys persisted rate records.
const ISOLayout = "2006-01-02"

var (
	reDisplay = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)
	reISO     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	reSlashed = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

// ParseDisplayDate parses strict DD.MM.YYYY. It returns nil for empty,
// malformed, or impossible dates; dirty historical rows are expected and
// must not become errors.
func ParseDisplayDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if !reDisplay.MatchString(s) {
		return nil
	}
	t, err := time.Parse(DisplayLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// NormalizeDisplayDate converts the accepted input formats (DD.MM.YYYY,
// YYYY-MM-DD, DD/MM/YYYY) to DD.MM.YYYY. Anything else, including empty
// input, becomes today's date.
func NormalizeDisplayDate(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case reDisplay.MatchString(s):
		return s
	case reISO.MatchString(s):
		if t, err := time.Parse(ISOLayout, s[:10]); err == nil {
			return t.Format(DisplayLayout)
		}
	case reSlashed.MatchString(s):
		return strings.ReplaceAll(s, "/", ".")
	}
	return time.Now().Format(DisplayLayout)
}

// ISODate truncates t to its calendar date in ISO form.
func ISODate(t time.Time) string {
	return t.Format(ISOLayout)
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
