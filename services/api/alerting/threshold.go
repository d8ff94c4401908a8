// Package alerting classifies instrument readings against their configured
// levels and derives the alert records raised by readings and incidents.
package alerting

import (
	"math"
	"strconv"
	"strings"
)

// Classification is the outcome of evaluating a reading.
type Classification int

const (
	Consistent Classification = iota
	AlertExceedance
	CriticalExceedance
)

const (
	LabelAlert    = "Acima do nível de alerta"
	LabelCritical = "Acima do nível crítico"
)

// Inconsistent reports whether the reading breached a level.
func (c Classification) Inconsistent() bool {
	return c != Consistent
}

// Label is the text stored in the reading's tipo_inconsistencia column.
func (c Classification) Label() string {
	switch c {
	case CriticalExceedance:
		return LabelCritical
	case AlertExceedance:
		return LabelAlert
	default:
		return ""
	}
}

func (c Classification) String() string {
	switch c {
	case CriticalExceedance:
		return "critical"
	case AlertExceedance:
		return "alert"
	default:
		return "consistent"
	}
}

// Evaluate compares value with the critical level first, then the alert level.
// Both comparisons are inclusive. A value that does not parse is consistent,
// and an absent or unparsable level is ignored.
func Evaluate(value string, alertLevel, criticalLevel *string) Classification {
	v, ok := ParseNumber(value)
	if !ok {
		return Consistent
	}
	if limit, ok := parseLevel(criticalLevel); ok && v >= limit {
		return CriticalExceedance
	}
	if limit, ok := parseLevel(alertLevel); ok && v >= limit {
		return AlertExceedance
	}
	return Consistent
}

// ParseNumber parses a decimal stored as text. The whole value must be
// numeric: "12 m" is rejected, not read as 12.
func ParseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func parseLevel(level *string) (float64, bool) {
	if level == nil {
		return 0, false
	}
	return ParseNumber(*level)
}
