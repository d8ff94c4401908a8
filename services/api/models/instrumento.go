package models

import (
	"time"

	"github.com/02loveslollipop/sgsb-barragens/services/api/enum"
	"github.com/02loveslollipop/sgsb-barragens/services/api/patch"
)

// Instrumento is a monitoring point with its configured levels.
type Instrumento struct {
	ID                int64      `json:"id" db:"id"`
	BarragemID        int64      `json:"barragemId" db:"barragem_id"`
	EstruturaID       *int64     `json:"estruturaId" db:"estrutura_id"`
	Codigo            string     `json:"codigo" db:"codigo"`
	Tipo              string     `json:"tipo" db:"tipo"`
	Localizacao       *string    `json:"localizacao" db:"localizacao"`
	Estaca            *string    `json:"estaca" db:"estaca"`
	Cota              *string    `json:"cota" db:"cota"`
	Coordenadas       *string    `json:"coordenadas" db:"coordenadas"`
	DataInstalacao    *time.Time `json:"dataInstalacao" db:"data_instalacao"`
	Fabricante        *string    `json:"fabricante" db:"fabricante"`
	Modelo            *string    `json:"modelo" db:"modelo"`
	NumeroSerie       *string    `json:"numeroSerie" db:"numero_serie"`
	NivelNormal       *string    `json:"nivelNormal" db:"nivel_normal"`
	NivelAlerta       *string    `json:"nivelAlerta" db:"nivel_alerta"`
	NivelCritico      *string    `json:"nivelCritico" db:"nivel_critico"`
	Formula           *string    `json:"formula" db:"formula"`
	UnidadeMedida     *string    `json:"unidadeMedida" db:"unidade_medida"`
	LimiteInferior    *string    `json:"limiteInferior" db:"limite_inferior"`
	LimiteSuperior    *string    `json:"limiteSuperior" db:"limite_superior"`
	FrequenciaLeitura *string    `json:"frequenciaLeitura" db:"frequencia_leitura"`
	Responsavel       *string    `json:"responsavel" db:"responsavel"`
	QRCode            *string    `json:"qrCode" db:"qr_code"`
	CodigoBarras      *string    `json:"codigoBarras" db:"codigo_barras"`
	Status            string     `json:"status" db:"status"`
	Observacoes       *string    `json:"observacoes" db:"observacoes"`
	Ativo             bool       `json:"ativo" db:"ativo"`
	CreatedAt         time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time  `json:"updatedAt" db:"updated_at"`
}

type InstrumentoInput struct {
	BarragemID        int64   `json:"barragemId" binding:"required"`
	EstruturaID       *int64  `json:"estruturaId"`
	Codigo            string  `json:"codigo" binding:"required"`
	Tipo              string  `json:"tipo" binding:"required"`
	Localizacao       *string `json:"localizacao"`
	Estaca            *string `json:"estaca"`
	Cota              *string `json:"cota"`
	Coordenadas       *string `json:"coordenadas"`
	DataInstalacao    *string `json:"dataInstalacao"`
	Fabricante        *string `json:"fabricante"`
	Modelo            *string `json:"modelo"`
	NumeroSerie       *string `json:"numeroSerie"`
	NivelNormal       *string `json:"nivelNormal"`
	NivelAlerta       *string `json:"nivelAlerta"`
	NivelCritico      *string `json:"nivelCritico"`
	Formula           *string `json:"formula"`
	UnidadeMedida     *string `json:"unidadeMedida"`
	LimiteInferior    *string `json:"limiteInferior"`
	LimiteSuperior    *string `json:"limiteSuperior"`
	FrequenciaLeitura *string `json:"frequenciaLeitura"`
	Responsavel       *string `json:"responsavel"`
	QRCode            *string `json:"qrCode"`
	CodigoBarras      *string `json:"codigoBarras"`
	Status            *string `json:"status"`
	Observacoes       *string `json:"observacoes"`
}

// Normalize canonicalizes status and checks the installation date.
func (in *InstrumentoInput) Normalize() error {
	if err := optionalDate(in.DataInstalacao, "dataInstalacao"); err != nil {
		return err
	}
	return canonicalPtr(&in.Status, enum.InstrumentoStatus, "status")
}

type InstrumentoPatch struct {
	Codigo            patch.Field[string] `json:"codigo"`
	Tipo              patch.Field[string] `json:"tipo"`
	Localizacao       patch.Field[string] `json:"localizacao"`
	Estaca            patch.Field[string] `json:"estaca"`
	Cota              patch.Field[string] `json:"cota"`
	Coordenadas       patch.Field[string] `json:"coordenadas"`
	DataInstalacao    patch.Field[string] `json:"dataInstalacao"`
	Fabricante        patch.Field[string] `json:"fabricante"`
	Modelo            patch.Field[string] `json:"modelo"`
	NumeroSerie       patch.Field[string] `json:"numeroSerie"`
	NivelNormal       patch.Field[string] `json:"nivelNormal"`
	NivelAlerta       patch.Field[string] `json:"nivelAlerta"`
	NivelCritico      patch.Field[string] `json:"nivelCritico"`
	Formula           patch.Field[string] `json:"formula"`
	UnidadeMedida     patch.Field[string] `json:"unidadeMedida"`
	LimiteInferior    patch.Field[string] `json:"limiteInferior"`
	LimiteSuperior    patch.Field[string] `json:"limiteSuperior"`
	FrequenciaLeitura patch.Field[string] `json:"frequenciaLeitura"`
	Responsavel       patch.Field[string] `json:"responsavel"`
	QRCode            patch.Field[string] `json:"qrCode"`
	CodigoBarras      patch.Field[string] `json:"codigoBarras"`
	Status            patch.Field[string] `json:"status"`
	Observacoes       patch.Field[string] `json:"observacoes"`
	Ativo             patch.Field[bool]   `json:"ativo"`
}

// Normalize canonicalizes the enumerated fields.
func (p *InstrumentoPatch) Normalize() error {
	return canonicalField(&p.Status, enum.InstrumentoStatus, "status")
}

// Leitura is one observation of an instrument. Values are kept as text.
type Leitura struct {
	ID                 int64     `json:"id" db:"id"`
	InstrumentoID      int64     `json:"instrumentoId" db:"instrumento_id"`
	UsuarioID          string    `json:"usuarioId" db:"usuario_id"`
	DataHora           time.Time `json:"dataHora" db:"data_hora"`
	Valor              string    `json:"valor" db:"valor"`
	NivelMontante      *string   `json:"nivelMontante" db:"nivel_montante"`
	Inconsistencia     bool      `json:"inconsistencia" db:"inconsistencia"`
	TipoInconsistencia *string   `json:"tipoInconsistencia" db:"tipo_inconsistencia"`
	Observacoes        *string   `json:"observacoes" db:"observacoes"`
	Origem             string    `json:"origem" db:"origem"`
	Latitude           *string   `json:"latitude" db:"latitude"`
	Longitude          *string   `json:"longitude" db:"longitude"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
}

type LeituraInput struct {
	InstrumentoID int64   `json:"instrumentoId" binding:"required"`
	DataHora      string  `json:"dataHora" binding:"required"`
	Valor         string  `json:"valor" binding:"required"`
	NivelMontante *string `json:"nivelMontante"`
	Observacoes   *string `json:"observacoes"`
	Origem        *string `json:"origem"`
	Latitude      *string `json:"latitude"`
	Longitude     *string `json:"longitude"`
}

// Normalize canonicalizes origem and checks dataHora.
func (in *LeituraInput) Normalize() error {
	if err := requiredDate(in.DataHora, "dataHora"); err != nil {
		return err
	}
	return canonicalPtr(&in.Origem, enum.LeituraOrigem, "origem")
}

// LeituraInconsistente pairs a flagged reading with its instrument.
type LeituraInconsistente struct {
	Leitura     Leitura      `json:"leitura"`
	Instrumento *Instrumento `json:"instrumento"`
}
