package models

import (
	"time"

	"github.com/02loveslollipop/sgsb-barragens/services/api/enum"
	"github.com/02loveslollipop/sgsb-barragens/services/api/patch"
)

// Hidrometria holds water level and flow measurements of a reservoir.
type Hidrometria struct {
	ID                 int64     `json:"id" db:"id"`
	BarragemID         int64     `json:"barragemId" db:"barragem_id"`
	UsuarioID          string    `json:"usuarioId" db:"usuario_id"`
	DataLeitura        time.Time `json:"dataLeitura" db:"data_leitura"`
	NivelMontante      *string   `json:"nivelMontante" db:"nivel_montante"`
	NivelJusante       *string   `json:"nivelJusante" db:"nivel_jusante"`
	NivelReservatorio  *string   `json:"nivelReservatorio" db:"nivel_reservatorio"`
	Vazao              *string   `json:"vazao" db:"vazao"`
	VazaoAfluente      *string   `json:"vazaoAfluente" db:"vazao_afluente"`
	VazaoDefluente     *string   `json:"vazaoDefluente" db:"vazao_defluente"`
	VazaoVertedouro    *string   `json:"vazaoVertedouro" db:"vazao_vertedouro"`
	VolumeReservatorio *string   `json:"volumeReservatorio" db:"volume_reservatorio"`
	VolumeArmazenado   *string   `json:"volumeArmazenado" db:"volume_armazenado"`
	Observacoes        *string   `json:"observacoes" db:"observacoes"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`
}

type HidrometriaInput struct {
	BarragemID         int64   `json:"barragemId" binding:"required"`
	DataLeitura        string  `json:"dataLeitura" binding:"required"`
	NivelMontante      *string `json:"nivelMontante"`
	NivelJusante       *string `json:"nivelJusante"`
	NivelReservatorio  *string `json:"nivelReservatorio"`
	Vazao              *string `json:"vazao"`
	VazaoAfluente      *string `json:"vazaoAfluente"`
	VazaoDefluente     *string `json:"vazaoDefluente"`
	VazaoVertedouro    *string `json:"vazaoVertedouro"`
	VolumeReservatorio *string `json:"volumeReservatorio"`
	VolumeArmazenado   *string `json:"volumeArmazenado"`
	Observacoes        *string `json:"observacoes"`
}

// Normalize checks dataLeitura.
func (in *HidrometriaInput) Normalize() error {
	return requiredDate(in.DataLeitura, "dataLeitura")
}

type HidrometriaPatch struct {
	DataLeitura       patch.Field[string] `json:"dataLeitura"`
	NivelMontante     patch.Field[string] `json:"nivelMontante"`
	NivelJusante      patch.Field[string] `json:"nivelJusante"`
	NivelReservatorio patch.Field[string] `json:"nivelReservatorio"`
	VazaoAfluente     patch.Field[string] `json:"vazaoAfluente"`
	VazaoDefluente    patch.Field[string] `json:"vazaoDefluente"`
	VazaoVertedouro   patch.Field[string] `json:"vazaoVertedouro"`
	VolumeArmazenado  patch.Field[string] `json:"volumeArmazenado"`
	Observacoes       patch.Field[string] `json:"observacoes"`
}

type Documento struct {
	ID             int64      `json:"id" db:"id"`
	BarragemID     int64      `json:"barragemId" db:"barragem_id"`
	UsuarioID      string     `json:"usuarioId" db:"usuario_id"`
	Tipo           string     `json:"tipo" db:"tipo"`
	Categoria      *string    `json:"categoria" db:"categoria"`
	Titulo         string     `json:"titulo" db:"titulo"`
	Descricao      *string    `json:"descricao" db:"descricao"`
	ArquivoURL     string     `json:"arquivoUrl" db:"arquivo_url"`
	ArquivoNome    string     `json:"arquivoNome" db:"arquivo_nome"`
	ArquivoTamanho *int64     `json:"arquivoTamanho" db:"arquivo_tamanho"`
	ArquivoTipo    *string    `json:"arquivoTipo" db:"arquivo_tipo"`
	Versao         *string    `json:"versao" db:"versao"`
	DocumentoPaiID *int64     `json:"documentoPaiId" db:"documento_pai_id"`
	DataValidade   *time.Time `json:"dataValidade" db:"data_validade"`
	Tags           *string    `json:"tags" db:"tags"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}

type DocumentoInput struct {
	BarragemID     int64   `json:"barragemId" binding:"required"`
	Tipo           string  `json:"tipo" binding:"required"`
	Categoria      *string `json:"categoria"`
	Titulo         string  `json:"titulo" binding:"required"`
	Descricao      *string `json:"descricao"`
	ArquivoURL     string  `json:"arquivoUrl" binding:"required"`
	ArquivoNome    string  `json:"arquivoNome" binding:"required"`
	ArquivoTamanho *int64  `json:"arquivoTamanho"`
	ArquivoTipo    *string `json:"arquivoTipo"`
	Versao         *string `json:"versao"`
	DocumentoPaiID *int64  `json:"documentoPaiId"`
	DataValidade   *string `json:"dataValidade"`
	Tags           *string `json:"tags"`
}

// Normalize checks dataValidade.
func (in *DocumentoInput) Normalize() error {
	return optionalDate(in.DataValidade, "dataValidade")
}

type DocumentoPatch struct {
	Tipo         patch.Field[string] `json:"tipo"`
	Categoria    patch.Field[string] `json:"categoria"`
	Titulo       patch.Field[string] `json:"titulo"`
	Descricao    patch.Field[string] `json:"descricao"`
	Versao       patch.Field[string] `json:"versao"`
	DataValidade patch.Field[string] `json:"dataValidade"`
	Tags         patch.Field[string] `json:"tags"`
}

// UploadInput carries a base64 file, optionally as a data URL.
type UploadInput struct {
	FileName    string `json:"fileName" binding:"required"`
	FileData    string `json:"fileData" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

type Manutencao struct {
	ID             int64      `json:"id" db:"id"`
	BarragemID     int64      `json:"barragemId" db:"barragem_id"`
	EstruturaID    *int64     `json:"estruturaId" db:"estrutura_id"`
	OcorrenciaID   *int64     `json:"ocorrenciaId" db:"ocorrencia_id"`
	Tipo           string     `json:"tipo" db:"tipo"`
	Titulo         string     `json:"titulo" db:"titulo"`
	Descricao      *string    `json:"descricao" db:"descricao"`
	DataProgramada *time.Time `json:"dataProgramada" db:"data_programada"`
	Responsavel    *string    `json:"responsavel" db:"responsavel"`
	DataInicio     *time.Time `json:"dataInicio" db:"data_inicio"`
	DataConclusao  *time.Time `json:"dataConclusao" db:"data_conclusao"`
	Status         string     `json:"status" db:"status"`
	CustoEstimado  *string    `json:"custoEstimado" db:"custo_estimado"`
	CustoReal      *string    `json:"custoReal" db:"custo_real"`
	Observacoes    *string    `json:"observacoes" db:"observacoes"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}

type ManutencaoInput struct {
	BarragemID     int64   `json:"barragemId" binding:"required"`
	EstruturaID    *int64  `json:"estruturaId"`
	OcorrenciaID   *int64  `json:"ocorrenciaId"`
	Tipo           string  `json:"tipo" binding:"required"`
	Titulo         string  `json:"titulo" binding:"required"`
	Descricao      *string `json:"descricao"`
	DataProgramada *string `json:"dataProgramada"`
	Responsavel    *string `json:"responsavel"`
	CustoEstimado  *string `json:"custoEstimado"`
	Observacoes    *string `json:"observacoes"`
}

// Normalize canonicalizes tipo and checks dataProgramada.
func (in *ManutencaoInput) Normalize() error {
	if err := optionalDate(in.DataProgramada, "dataProgramada"); err != nil {
		return err
	}
	return canonical(&in.Tipo, enum.ManutencaoTipo, "tipo")
}

type ManutencaoPatch struct {
	Tipo           patch.Field[string] `json:"tipo"`
	Titulo         patch.Field[string] `json:"titulo"`
	Descricao      patch.Field[string] `json:"descricao"`
	DataProgramada patch.Field[string] `json:"dataProgramada"`
	DataInicio     patch.Field[string] `json:"dataInicio"`
	DataConclusao  patch.Field[string] `json:"dataConclusao"`
	Status         patch.Field[string] `json:"status"`
	Responsavel    patch.Field[string] `json:"responsavel"`
	CustoEstimado  patch.Field[string] `json:"custoEstimado"`
	CustoReal      patch.Field[string] `json:"custoReal"`
	Observacoes    patch.Field[string] `json:"observacoes"`
}

// Normalize canonicalizes the enumerated fields.
func (p *ManutencaoPatch) Normalize() error {
	if err := canonicalField(&p.Tipo, enum.ManutencaoTipo, "tipo"); err != nil {
		return err
	}
	return canonicalField(&p.Status, enum.ManutencaoStatus, "status")
}
