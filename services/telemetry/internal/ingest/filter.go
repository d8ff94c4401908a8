package ingest

import (
	"fmt"
	"math"
	"time"

	"github.com/02loveslollipop/sgsb-barragens/services/api/alerting"
	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
)

// NormalizeValue cleans raw sensor values; -999 sentinel -> nil.
func NormalizeValue(v *float64) *float64 {
	if v == nil {
		return nil
	}
	if *v <= -900 || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	val := *v
	return &val
}

// ShouldStore reports whether a reading taken at ts adds information over
// the instrument's last stored reading. Readings closer than minInterval to
// the last one are kept only when the value moved by more than epsilon.
func ShouldStore(last *models.Leitura, ts time.Time, value float64, minInterval time.Duration, epsilon float64) bool {
	if last == nil {
		return true
	}
	if ts.Sub(last.DataHora) >= minInterval {
		return true
	}
	prev, ok := alerting.ParseNumber(last.Valor)
	if !ok {
		return true
	}
	return !ValuesEqual(&prev, &value, epsilon)
}

// ValuesEqual compares two optional float values with tolerance.
func ValuesEqual(a, b *float64, epsilon float64) bool {
	switch {
	case a == nil && b == nil:
		return true
	case a == nil || b == nil:
		return false
	default:
		return math.Abs(*a-*b) <= epsilon
	}
}

// ValuePtrString prints pointer values for logging.
func ValuePtrString(v *float64) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%.3f", *v)
}
