package alerting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestEvaluateScenarios(t *testing.T) {
	alert, critical := ptr("10"), ptr("20")

	cases := []struct {
		name  string
		value string
		want  Classification
	}{
		{"below alert", "5", Consistent},
		{"between alert and critical", "15", AlertExceedance},
		{"equal to alert", "10", AlertExceedance},
		{"equal to critical", "20", CriticalExceedance},
		{"above critical", "31.7", CriticalExceedance},
		{"just below alert", "9.999", Consistent},
		{"negative", "-3", Consistent},
		{"padded", " 12 ", AlertExceedance},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Evaluate(tc.value, alert, critical))
		})
	}
}

func TestEvaluateWithoutLevels(t *testing.T) {
	for _, v := range []string{"0", "15", "1e9"} {
		assert.Equal(t, Consistent, Evaluate(v, nil, nil))
	}
}

func TestEvaluateSingleLevel(t *testing.T) {
	assert.Equal(t, AlertExceedance, Evaluate("11", ptr("10"), nil))
	assert.Equal(t, CriticalExceedance, Evaluate("11", nil, ptr("10")))
	assert.Equal(t, Consistent, Evaluate("9", nil, ptr("10")))
}

func TestEvaluateUnparsable(t *testing.T) {
	assert.Equal(t, Consistent, Evaluate("seco", ptr("10"), ptr("20")))
	assert.Equal(t, Consistent, Evaluate("", ptr("10"), ptr("20")))
	assert.Equal(t, Consistent, Evaluate("NaN", ptr("10"), ptr("20")))

	// a malformed critical level falls through to the alert level
	assert.Equal(t, AlertExceedance, Evaluate("25", ptr("10"), ptr("n/a")))
}

func TestParseNumberRejectsTrailingText(t *testing.T) {
	v, ok := ParseNumber("12.5")
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)

	for _, raw := range []string{"12 m", "12,5", "12abc"} {
		_, ok := ParseNumber(raw)
		assert.False(t, ok, raw)
	}
	// a unit typed into the value is not read as a number, so it never alerts
	assert.Equal(t, Consistent, Evaluate("25 m", ptr("10"), ptr("20")))
}

func TestClassificationLabels(t *testing.T) {
	assert.Equal(t, "Acima do nível crítico", CriticalExceedance.Label())
	assert.Equal(t, "Acima do nível de alerta", AlertExceedance.Label())
	assert.Empty(t, Consistent.Label())

	assert.True(t, AlertExceedance.Inconsistent())
	assert.False(t, Consistent.Inconsistent())
	assert.Equal(t, "critical", CriticalExceedance.String())
}
