package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeituraInputNormalize(t *testing.T) {
	origem := "Automático"
	in := LeituraInput{InstrumentoID: 1, DataHora: "2024-05-02T08:00:00Z", Valor: "12", Origem: &origem}

	require.NoError(t, in.Normalize())
	assert.Equal(t, "automatico", *in.Origem)
}

func TestLeituraInputRejectsBadDate(t *testing.T) {
	in := LeituraInput{InstrumentoID: 1, DataHora: "amanhã", Valor: "12"}

	err := in.Normalize()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "dataHora", verr.Field)
}

func TestOcorrenciaInputInvalidSeverity(t *testing.T) {
	sev := "gravissima"
	in := OcorrenciaInput{BarragemID: 1, Estrutura: "Talude", Relato: "x", Severidade: &sev}

	err := in.Normalize()
	require.Error(t, err)
	assert.Equal(t, "Valor inválido. Use um dos seguintes: baixa, media, alta, critica", err.Error())
}

func TestOcorrenciaInputRegistrationDate(t *testing.T) {
	in := OcorrenciaInput{BarragemID: 1, Estrutura: "Talude", Relato: "x", DataHoraRegistro: ptrTo("amanhã")}

	err := in.Normalize()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "dataHoraRegistro", verr.Field)

	in.DataHoraRegistro = ptrTo("2024-05-02T08:30")
	require.NoError(t, in.Normalize())
}

func TestPatchNormalizeOnlyTouchesPresentFields(t *testing.T) {
	var p ManutencaoPatch
	require.NoError(t, json.Unmarshal([]byte(`{"status":"EM_ANDAMENTO","tipo":null}`), &p))

	require.NoError(t, p.Normalize())
	assert.Equal(t, "em_andamento", p.Status.Val)
	assert.True(t, p.Tipo.Null)
	assert.False(t, p.Titulo.Set)
}

func TestChecklistInputNormalize(t *testing.T) {
	in := ChecklistInput{BarragemID: 2, Data: "2024-05-02", Tipo: "Emergencial"}
	require.NoError(t, in.Normalize())
	assert.Equal(t, "emergencial", in.Tipo)

	in.Tipo = "ISR"
	assert.Error(t, in.Normalize())
}

func TestUserIsManager(t *testing.T) {
	assert.True(t, (&User{Role: "gestor"}).IsManager())
	assert.True(t, (&User{Role: "admin"}).IsManager())
	assert.False(t, (&User{Role: "inspetor"}).IsManager())

	var nobody *User
	assert.False(t, nobody.IsManager())
}

func ptrTo(s string) *string { return &s }
