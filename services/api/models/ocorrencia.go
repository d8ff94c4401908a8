package models

import (
	"time"

	"github.com/02loveslollipop/sgsb-barragens/services/api/enum"
	"github.com/02loveslollipop/sgsb-barragens/services/api/patch"
)

// Ocorrencia is an incident reported at a dam or structure.
type Ocorrencia struct {
	ID                   int64      `json:"id" db:"id"`
	BarragemID           int64      `json:"barragemId" db:"barragem_id"`
	EstruturaID          *int64     `json:"estruturaId" db:"estrutura_id"`
	UsuarioRegistroID    string     `json:"usuarioRegistroId" db:"usuario_registro_id"`
	DataHoraRegistro     time.Time  `json:"dataHoraRegistro" db:"data_hora_registro"`
	Estrutura            string     `json:"estrutura" db:"estrutura"`
	Relato               string     `json:"relato" db:"relato"`
	Fotos                *string    `json:"fotos" db:"fotos"`
	Titulo               *string    `json:"titulo" db:"titulo"`
	Descricao            *string    `json:"descricao" db:"descricao"`
	DataOcorrencia       *time.Time `json:"dataOcorrencia" db:"data_ocorrencia"`
	LocalOcorrencia      *string    `json:"localOcorrencia" db:"local_ocorrencia"`
	AcaoImediata         *string    `json:"acaoImediata" db:"acao_imediata"`
	Responsavel          *string    `json:"responsavel" db:"responsavel"`
	Categoria            *string    `json:"categoria" db:"categoria"`
	Severidade           *string    `json:"severidade" db:"severidade"`
	Tipo                 *string    `json:"tipo" db:"tipo"`
	Status               string     `json:"status" db:"status"`
	UsuarioAvaliacaoID   *string    `json:"usuarioAvaliacaoId" db:"usuario_avaliacao_id"`
	DataAvaliacao        *time.Time `json:"dataAvaliacao" db:"data_avaliacao"`
	ComentariosAvaliacao *string    `json:"comentariosAvaliacao" db:"comentarios_avaliacao"`
	DataConclusao        *time.Time `json:"dataConclusao" db:"data_conclusao"`
	ComentariosConclusao *string    `json:"comentariosConclusao" db:"comentarios_conclusao"`
	Latitude             *string    `json:"latitude" db:"latitude"`
	Longitude            *string    `json:"longitude" db:"longitude"`
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time  `json:"updatedAt" db:"updated_at"`
}

type OcorrenciaInput struct {
	BarragemID       int64   `json:"barragemId" binding:"required"`
	EstruturaID      *int64  `json:"estruturaId"`
	DataHoraRegistro *string `json:"dataHoraRegistro"`
	Estrutura        string  `json:"estrutura" binding:"required"`
	Relato           string  `json:"relato" binding:"required"`
	Fotos            *string `json:"fotos"`
	Titulo           *string `json:"titulo"`
	Descricao        *string `json:"descricao"`
	DataOcorrencia   *string `json:"dataOcorrencia"`
	LocalOcorrencia  *string `json:"localOcorrencia"`
	AcaoImediata     *string `json:"acaoImediata"`
	Responsavel      *string `json:"responsavel"`
	Categoria        *string `json:"categoria"`
	Severidade       *string `json:"severidade"`
	Tipo             *string `json:"tipo"`
	Latitude         *string `json:"latitude"`
	Longitude        *string `json:"longitude"`
}

// Normalize canonicalizes severidade and checks the dates.
func (in *OcorrenciaInput) Normalize() error {
	if err := optionalDate(in.DataHoraRegistro, "dataHoraRegistro"); err != nil {
		return err
	}
	if err := optionalDate(in.DataOcorrencia, "dataOcorrencia"); err != nil {
		return err
	}
	return canonicalPtr(&in.Severidade, enum.OcorrenciaSeveridade, "severidade")
}

type OcorrenciaPatch struct {
	Status               patch.Field[string] `json:"status"`
	Severidade           patch.Field[string] `json:"severidade"`
	Tipo                 patch.Field[string] `json:"tipo"`
	UsuarioAvaliacaoID   patch.Field[string] `json:"usuarioAvaliacaoId"`
	DataAvaliacao        patch.Field[string] `json:"dataAvaliacao"`
	ComentariosAvaliacao patch.Field[string] `json:"comentariosAvaliacao"`
	DataConclusao        patch.Field[string] `json:"dataConclusao"`
	ComentariosConclusao patch.Field[string] `json:"comentariosConclusao"`
}

// Normalize canonicalizes the enumerated fields.
func (p *OcorrenciaPatch) Normalize() error {
	if err := canonicalField(&p.Status, enum.OcorrenciaStatus, "status"); err != nil {
		return err
	}
	return canonicalField(&p.Severidade, enum.OcorrenciaSeveridade, "severidade")
}
