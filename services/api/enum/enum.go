// Package enum matches user input against fixed value sets, ignoring case,
// surrounding whitespace and diacritics, and returns the canonical spelling.
package enum

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds s for comparison: NFD, combining marks removed, trimmed, lowercased.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// Set is an ordered list of canonical values.
type Set struct {
	values []string
	index  map[string]string
}

// New builds a Set. Values keep their declared order in error messages.
func New(values ...string) Set {
	index := make(map[string]string, len(values))
	for _, v := range values {
		index[Normalize(v)] = v
	}
	return Set{values: values, index: index}
}

// Values returns the canonical values.
func (s Set) Values() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

// Canonical returns the canonical form of in, or an error listing the allowed values.
func (s Set) Canonical(in string) (string, error) {
	if v, ok := s.index[Normalize(in)]; ok {
		return v, nil
	}
	return "", &InvalidError{Allowed: s.values}
}

// Contains reports whether in matches one of the values.
func (s Set) Contains(in string) bool {
	_, ok := s.index[Normalize(in)]
	return ok
}

// InvalidError is returned for input outside the set.
type InvalidError struct {
	Allowed []string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("Valor inválido. Use um dos seguintes: %s", strings.Join(e.Allowed, ", "))
}

var (
	UserRoles            = New("admin", "gestor", "consultor", "inspetor", "leiturista", "visualizador")
	CategoriaRisco       = New("A", "B", "C", "D", "E")
	DanoPotencial        = New("Alto", "Medio", "Baixo")
	BarragemStatus       = New("ativa", "inativa", "em_construcao")
	InstrumentoStatus    = New("ativo", "inativo", "manutencao")
	LeituraOrigem        = New("mobile", "web", "automatico")
	ChecklistCreateTipos = New("mensal", "especial", "emergencial")
	ChecklistTipos       = New("ISR", "ISE", "ISP", "mensal", "especial", "emergencial")
	ChecklistStatus      = New("em_andamento", "concluida", "cancelada", "concluido", "aprovado")
	RespostaOpcoes       = New("NO", "PV", "PC", "AM", "DM", "DS")
	OcorrenciaSeveridade = New("baixa", "media", "alta", "critica")
	OcorrenciaStatus     = New("pendente", "em_analise", "em_acao", "concluida", "cancelada")
	ManutencaoTipo       = New("preventiva", "corretiva", "preditiva")
	ManutencaoStatus     = New("planejada", "em_andamento", "concluida", "cancelada")
)
