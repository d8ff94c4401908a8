package alerting

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var piezometro = Instrument{ID: 7, BarragemID: 3, Codigo: "PZ-01", UnidadeMedida: ptr("m")}

func TestForReadingAlert(t *testing.T) {
	draft, ok := ForReading(piezometro, 41, "15", Evaluate("15", ptr("10"), ptr("20")))
	require.True(t, ok)

	assert.Equal(t, int64(3), draft.BarragemID)
	assert.Equal(t, SeverityAlert, draft.Severidade)
	assert.Equal(t, "Leitura com inconsistência", draft.Tipo)
	assert.Equal(t, "Leitura fora do padrão - PZ-01", draft.Titulo)
	assert.Equal(t, "O instrumento PZ-01 apresentou leitura acima do nível de alerta: 15 m", draft.Mensagem)
	require.NotNil(t, draft.InstrumentoID)
	require.NotNil(t, draft.LeituraID)
	assert.Equal(t, int64(7), *draft.InstrumentoID)
	assert.Equal(t, int64(41), *draft.LeituraID)
	assert.Nil(t, draft.OcorrenciaID)
}

func TestForReadingCritical(t *testing.T) {
	draft, ok := ForReading(piezometro, 42, "20", Evaluate("20", ptr("10"), ptr("20")))
	require.True(t, ok)

	assert.Equal(t, SeverityCritical, draft.Severidade)
	assert.Equal(t, "O instrumento PZ-01 apresentou leitura acima do nível crítico: 20 m", draft.Mensagem)
}

func TestForReadingWithoutUnit(t *testing.T) {
	inst := Instrument{ID: 1, BarragemID: 1, Codigo: "MS-3"}
	draft, ok := ForReading(inst, 5, "3.2", AlertExceedance)
	require.True(t, ok)
	assert.Equal(t, "O instrumento MS-3 apresentou leitura acima do nível de alerta: 3.2", draft.Mensagem)
}

func TestForReadingConsistent(t *testing.T) {
	_, ok := ForReading(piezometro, 43, "5", Consistent)
	assert.False(t, ok)
}

func TestSeverityForLabel(t *testing.T) {
	assert.Equal(t, SeverityCritical, SeverityForLabel("Acima do nível crítico"))
	assert.Equal(t, SeverityCritical, SeverityForLabel("ACIMA DO NIVEL CRITICO"))
	assert.Equal(t, SeverityAlert, SeverityForLabel("Acima do nível de alerta"))
}

func TestForIncident(t *testing.T) {
	relato := strings.Repeat("á", 250)

	draft, ok := ForIncident(3, 99, "Vertedouro", relato, "critica")
	require.True(t, ok)
	assert.Equal(t, SeverityCritical, draft.Severidade)
	assert.Equal(t, "Nova ocorrência", draft.Tipo)
	assert.Equal(t, "Nova ocorrência registrada - Vertedouro", draft.Titulo)
	assert.Equal(t, 200, utf8.RuneCountInString(draft.Mensagem))
	require.NotNil(t, draft.OcorrenciaID)
	assert.Equal(t, int64(99), *draft.OcorrenciaID)
	assert.Nil(t, draft.LeituraID)

	draft, ok = ForIncident(3, 100, "Talude", "Trinca longitudinal", "alta")
	require.True(t, ok)
	assert.Equal(t, SeverityAlert, draft.Severidade)
	assert.Equal(t, "Trinca longitudinal", draft.Mensagem)
}

func TestForIncidentLowSeverity(t *testing.T) {
	for _, sev := range []string{"baixa", "media", ""} {
		_, ok := ForIncident(1, 1, "Crista", "Erosão superficial", sev)
		assert.False(t, ok, sev)
	}
}
