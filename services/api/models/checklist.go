package models

import (
	"time"

	"github.com/02loveslollipop/sgsb-barragens/services/api/enum"
	"github.com/02loveslollipop/sgsb-barragens/services/api/patch"
)

// Checklist is a periodic inspection of a dam.
type Checklist struct {
	ID                   int64      `json:"id" db:"id"`
	BarragemID           int64      `json:"barragemId" db:"barragem_id"`
	UsuarioID            string     `json:"usuarioId" db:"usuario_id"`
	Data                 time.Time  `json:"data" db:"data"`
	Tipo                 string     `json:"tipo" db:"tipo"`
	Inspetor             *string    `json:"inspetor" db:"inspetor"`
	ClimaCondicoes       *string    `json:"climaCondicoes" db:"clima_condicoes"`
	Status               string     `json:"status" db:"status"`
	ConsultorID          *string    `json:"consultorId" db:"consultor_id"`
	DataAvaliacao        *time.Time `json:"dataAvaliacao" db:"data_avaliacao"`
	ComentariosConsultor *string    `json:"comentariosConsultor" db:"comentarios_consultor"`
	ObservacoesGerais    *string    `json:"observacoesGerais" db:"observacoes_gerais"`
	Latitude             *string    `json:"latitude" db:"latitude"`
	Longitude            *string    `json:"longitude" db:"longitude"`
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time  `json:"updatedAt" db:"updated_at"`
}

type ChecklistInput struct {
	BarragemID        int64   `json:"barragemId" binding:"required"`
	Data              string  `json:"data" binding:"required"`
	Tipo              string  `json:"tipo" binding:"required"`
	ObservacoesGerais *string `json:"observacoesGerais"`
	Latitude          *string `json:"latitude"`
	Longitude         *string `json:"longitude"`
}

// Normalize canonicalizes tipo and checks data.
func (in *ChecklistInput) Normalize() error {
	if err := requiredDate(in.Data, "data"); err != nil {
		return err
	}
	return canonical(&in.Tipo, enum.ChecklistCreateTipos, "tipo")
}

type ChecklistPatch struct {
	Tipo                 patch.Field[string] `json:"tipo"`
	Inspetor             patch.Field[string] `json:"inspetor"`
	ClimaCondicoes       patch.Field[string] `json:"climaCondicoes"`
	Status               patch.Field[string] `json:"status"`
	ConsultorID          patch.Field[string] `json:"consultorId"`
	DataAvaliacao        patch.Field[string] `json:"dataAvaliacao"`
	ComentariosConsultor patch.Field[string] `json:"comentariosConsultor"`
	ObservacoesGerais    patch.Field[string] `json:"observacoesGerais"`
}

// Normalize canonicalizes the enumerated fields.
func (p *ChecklistPatch) Normalize() error {
	if err := canonicalField(&p.Tipo, enum.ChecklistTipos, "tipo"); err != nil {
		return err
	}
	return canonicalField(&p.Status, enum.ChecklistStatus, "status")
}

// PerguntaChecklist is a question asked during inspections.
type PerguntaChecklist struct {
	ID         int64     `json:"id" db:"id"`
	BarragemID *int64    `json:"barragemId" db:"barragem_id"`
	Categoria  string    `json:"categoria" db:"categoria"`
	Pergunta   string    `json:"pergunta" db:"pergunta"`
	Ordem      int32     `json:"ordem" db:"ordem"`
	Ativo      bool      `json:"ativo" db:"ativo"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type PerguntaInput struct {
	BarragemID *int64 `json:"barragemId"`
	Categoria  string `json:"categoria" binding:"required"`
	Pergunta   string `json:"pergunta" binding:"required"`
	Ordem      *int32 `json:"ordem" binding:"required"`
}

// RespostaChecklist answers one question of one checklist.
type RespostaChecklist struct {
	ID               int64     `json:"id" db:"id"`
	ChecklistID      int64     `json:"checklistId" db:"checklist_id"`
	PerguntaID       int64     `json:"perguntaId" db:"pergunta_id"`
	Resposta         string    `json:"resposta" db:"resposta"`
	SituacaoAnterior *string   `json:"situacaoAnterior" db:"situacao_anterior"`
	Comentario       *string   `json:"comentario" db:"comentario"`
	Fotos            *string   `json:"fotos" db:"fotos"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
}

type RespostaInput struct {
	ChecklistID      int64   `json:"checklistId" binding:"required"`
	PerguntaID       int64   `json:"perguntaId" binding:"required"`
	Resposta         string  `json:"resposta" binding:"required"`
	SituacaoAnterior *string `json:"situacaoAnterior"`
	Comentario       *string `json:"comentario"`
	Fotos            *string `json:"fotos"`
}

// Normalize canonicalizes the answer codes.
func (in *RespostaInput) Normalize() error {
	if err := canonical(&in.Resposta, enum.RespostaOpcoes, "resposta"); err != nil {
		return err
	}
	return canonicalPtr(&in.SituacaoAnterior, enum.RespostaOpcoes, "situacaoAnterior")
}

// RespostaComPergunta pairs an answer with its question.
type RespostaComPergunta struct {
	Resposta RespostaChecklist  `json:"resposta"`
	Pergunta *PerguntaChecklist `json:"pergunta"`
}

// ChecklistDetalhe is a checklist with its answers.
type ChecklistDetalhe struct {
	Checklist *Checklist            `json:"checklist"`
	Respostas []RespostaComPergunta `json:"respostas"`
}
