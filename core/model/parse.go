package model

import (
	"strings"
	"time"
)

// DateLayout is the calendar-day format used across roster files.
const DateLayout = "2006-01-02"

// emptyMarkers are cell values that roster exports use to mean "no value".
var emptyMarkers = map[string]struct{}{
	"":     {},
	"-":    {},
	"–":    {},
	"nan":  {},
	"None": {},
}

// CleanCell trims a raw cell and collapses known empty markers to "".
func CleanCell(raw string) string {
	s := strings.TrimSpace(raw)
	if _, ok := emptyMarkers[s]; ok {
		return ""
	}
	return s
}

// ParseList splits a comma separated cell into trimmed items. Empty markers
// and blank items yield a nil slice.
func ParseList(raw string) []string {
	s := CleanCell(raw)
	if s == "" {
		return nil
	}
	var items []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// ParseDate parses a YYYY-MM-DD cell. The second return value reports whether
// a valid date was present; absent or malformed cells return (zero, false) so
// one bad field never blocks loading a record.
func ParseDate(raw string) (time.Time, bool) {
	s := CleanCell(raw)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a date cell, empty for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// DisplayDate renders a date for human output, "TBD" when unset. Persistence
// keeps the empty cell via FormatDate.
func DisplayDate(t time.Time) string {
	if t.IsZero() {
		return "TBD"
	}
	return t.Format(DateLayout)
}

// NormalizeTag lowercases and trims a tag for comparison. Storage keeps the
// original casing for display.
func NormalizeTag(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TagSet builds a normalized lookup set from a tag list.
func TagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[NormalizeTag(t)] = struct{}{}
	}
	return set
}

// FoldEqual compares two free-text values case-insensitively after trimming.
func FoldEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func joinList(items []string) string {
	return strings.Join(items, ", ")
}
