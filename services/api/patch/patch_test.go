package patch

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePatch struct {
	Nome       Field[string] `json:"nome"`
	Altura     Field[string] `json:"altura"`
	Ano        Field[int32]  `json:"ano"`
	Ativo      Field[bool]   `json:"ativo"`
	DataInicio Field[string] `json:"dataInicio"`
}

var sampleColumns = []Column[samplePatch]{
	{Name: "nome", Get: func(p *samplePatch) State { return p.Nome.State() }},
	{Name: "altura", Get: func(p *samplePatch) State { return p.Altura.State() }},
	{Name: "ano", Get: func(p *samplePatch) State { return p.Ano.State() }},
	{Name: "ativo", Get: func(p *samplePatch) State { return p.Ativo.State() }},
	{Name: "data_inicio", Get: func(p *samplePatch) State { return p.DataInicio.State() }, Transform: ToDate},
}

func decode(t *testing.T, body string) *samplePatch {
	t.Helper()
	var p samplePatch
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return &p
}

func TestFieldUnmarshalStates(t *testing.T) {
	p := decode(t, `{"nome":"Serra Azul","altura":null}`)

	assert.True(t, p.Nome.Set)
	assert.False(t, p.Nome.Null)
	assert.Equal(t, "Serra Azul", p.Nome.Val)

	assert.True(t, p.Altura.Set)
	assert.True(t, p.Altura.Null)

	assert.False(t, p.Ano.Set)
	assert.False(t, p.Ativo.Set)
}

func TestBuildSkipsAbsentFields(t *testing.T) {
	p := decode(t, `{"altura":"42.5","ativo":false}`)

	proj := Build(p, sampleColumns, 1)

	assert.Equal(t, []string{"altura = $1", "ativo = $2"}, proj.Fragments)
	assert.Equal(t, []any{"42.5", false}, proj.Apply(nil))
	assert.Equal(t, 3, proj.Next())
	assert.Equal(t, "altura = $1, ativo = $2", proj.SetClause())
}

func TestBuildIncludesExplicitNull(t *testing.T) {
	p := decode(t, `{"nome":null,"ano":1998}`)

	proj := Build(p, sampleColumns, 1)

	assert.Equal(t, []string{"nome = $1", "ano = $2"}, proj.Fragments)
	assert.Equal(t, []any{nil, int32(1998)}, proj.Apply(nil))
}

func TestBuildEmptyPayload(t *testing.T) {
	proj := Build(decode(t, `{"desconhecido":"x"}`), sampleColumns, 1)
	assert.True(t, proj.Empty())
	assert.Empty(t, proj.Apply(nil))

	assert.True(t, Build[samplePatch](nil, sampleColumns, 1).Empty())
}

func TestBuildPlaceholderOffset(t *testing.T) {
	p := &samplePatch{Nome: Of("Jaguara"), Ano: Of(int32(2001))}

	proj := Build(p, sampleColumns, 3)

	assert.Equal(t, []string{"nome = $3", "ano = $4"}, proj.Fragments)
	args := proj.Apply([]any{"first", "second"})
	assert.Equal(t, []any{"first", "second", "Jaguara", int32(2001)}, args)
}

func TestBuildAppliesTransform(t *testing.T) {
	p := &samplePatch{DataInicio: Of("2024-03-05")}
	proj := Build(p, sampleColumns, 1)
	assert.Equal(t, []any{time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)}, proj.Apply(nil))

	p = &samplePatch{DataInicio: Of("ontem")}
	proj = Build(p, sampleColumns, 1)
	assert.Equal(t, []string{"data_inicio = $1"}, proj.Fragments)
	assert.Equal(t, []any{nil}, proj.Apply(nil))

	p = &samplePatch{DataInicio: Null[string]()}
	proj = Build(p, sampleColumns, 1)
	assert.Equal(t, []any{nil}, proj.Apply(nil))
}

func TestBuildIsDeterministic(t *testing.T) {
	body := `{"nome":"Três Marias","altura":"75","ativo":true}`
	first := Build(decode(t, body), sampleColumns, 1)
	second := Build(decode(t, body), sampleColumns, 1)

	assert.Equal(t, first.Fragments, second.Fragments)
	assert.Equal(t, first.Apply(nil), second.Apply(nil))
}

func TestFieldMarshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A Field[string] `json:"a"`
		B Field[string] `json:"b"`
	}{A: Of("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":null}`, string(out))
}

func TestParseDate(t *testing.T) {
	cases := map[string]time.Time{
		"2024-06-01T10:30:00Z":  time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
		"2024-06-01T10:30":      time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
		"2024-06-01":            time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		" 2024-06-01 10:30:15 ": time.Date(2024, 6, 1, 10, 30, 15, 0, time.UTC),
	}
	for in, want := range cases {
		got, ok := ParseDate(in)
		require.True(t, ok, in)
		assert.True(t, want.Equal(got), in)
	}

	_, ok := ParseDate("")
	assert.False(t, ok)
	assert.Nil(t, ToDate(42))
}
