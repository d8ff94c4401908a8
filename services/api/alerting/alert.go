package alerting

import (
	"fmt"
	"strings"

	"github.com/02loveslollipop/sgsb-barragens/services/api/enum"
)

// Alert severities and types written to the alertas table.
const (
	SeverityAlert    = "alerta"
	SeverityCritical = "critico"

	TipoLeitura    = "Leitura com inconsistência"
	TipoOcorrencia = "Nova ocorrência"

	relatoLimit = 200
)

// Draft is an alert ready to be inserted.
type Draft struct {
	BarragemID    int64
	Tipo          string
	Severidade    string
	Titulo        string
	Mensagem      string
	InstrumentoID *int64
	LeituraID     *int64
	OcorrenciaID  *int64
}

// Instrument is the part of an instrument the reading alert needs.
type Instrument struct {
	ID            int64
	BarragemID    int64
	Codigo        string
	UnidadeMedida *string
}

// SeverityForLabel maps a classification label to an alert severity.
func SeverityForLabel(label string) string {
	if strings.Contains(enum.Normalize(label), "crit") {
		return SeverityCritical
	}
	return SeverityAlert
}

// ForReading builds the alert for an inconsistent reading.
func ForReading(inst Instrument, leituraID int64, valor string, c Classification) (Draft, bool) {
	if !c.Inconsistent() {
		return Draft{}, false
	}
	label := c.Label()
	unidade := ""
	if inst.UnidadeMedida != nil {
		unidade = *inst.UnidadeMedida
	}
	instrumentoID := inst.ID
	return Draft{
		BarragemID:    inst.BarragemID,
		Tipo:          TipoLeitura,
		Severidade:    SeverityForLabel(label),
		Titulo:        "Leitura fora do padrão - " + inst.Codigo,
		Mensagem:      strings.TrimSpace(fmt.Sprintf("O instrumento %s apresentou leitura %s: %s %s", inst.Codigo, strings.ToLower(label), valor, unidade)),
		InstrumentoID: &instrumentoID,
		LeituraID:     &leituraID,
	}, true
}

// ForIncident builds the alert for an incident of severity alta or critica.
func ForIncident(barragemID, ocorrenciaID int64, estrutura, relato, severidade string) (Draft, bool) {
	var sev string
	switch severidade {
	case "critica":
		sev = SeverityCritical
	case "alta":
		sev = SeverityAlert
	default:
		return Draft{}, false
	}
	return Draft{
		BarragemID:   barragemID,
		Tipo:         TipoOcorrencia,
		Severidade:   sev,
		Titulo:       "Nova ocorrência registrada - " + estrutura,
		Mensagem:     truncate(relato, relatoLimit),
		OcorrenciaID: &ocorrenciaID,
	}, true
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
