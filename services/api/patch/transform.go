package patch

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate accepts RFC3339 timestamps, HTML datetime-local values and plain dates.
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

// ToDate converts date strings to time.Time. Unparsable input binds NULL.
func ToDate(v any) any {
	switch val := v.(type) {
	case time.Time:
		return val
	case string:
		if t, ok := ParseDate(val); ok {
			return t
		}
	}
	return nil
}
