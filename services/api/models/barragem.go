package models

import (
	"time"

	"github.com/02loveslollipop/sgsb-barragens/services/api/enum"
	"github.com/02loveslollipop/sgsb-barragens/services/api/patch"
)

// Barragem is a monitored dam.
type Barragem struct {
	ID                     int64     `json:"id" db:"id"`
	Codigo                 string    `json:"codigo" db:"codigo"`
	Nome                   string    `json:"nome" db:"nome"`
	Rio                    *string   `json:"rio" db:"rio"`
	Bacia                  *string   `json:"bacia" db:"bacia"`
	Municipio              *string   `json:"municipio" db:"municipio"`
	Estado                 *string   `json:"estado" db:"estado"`
	Latitude               *string   `json:"latitude" db:"latitude"`
	Longitude              *string   `json:"longitude" db:"longitude"`
	Tipo                   *string   `json:"tipo" db:"tipo"`
	Finalidade             *string   `json:"finalidade" db:"finalidade"`
	Altura                 *string   `json:"altura" db:"altura"`
	Comprimento            *string   `json:"comprimento" db:"comprimento"`
	VolumeReservatorio     *string   `json:"volumeReservatorio" db:"volume_reservatorio"`
	AreaReservatorio       *string   `json:"areaReservatorio" db:"area_reservatorio"`
	NivelMaximoNormal      *string   `json:"nivelMaximoNormal" db:"nivel_maximo_normal"`
	NivelMaximoMaximorum   *string   `json:"nivelMaximoMaximorum" db:"nivel_maximo_maximorum"`
	NivelMinimo            *string   `json:"nivelMinimo" db:"nivel_minimo"`
	Proprietario           *string   `json:"proprietario" db:"proprietario"`
	Operador               *string   `json:"operador" db:"operador"`
	AnoInicioConstrucao    *int32    `json:"anoInicioConstrucao" db:"ano_inicio_construcao"`
	AnoInicioOperacao      *int32    `json:"anoInicioOperacao" db:"ano_inicio_operacao"`
	CategoriaRisco         *string   `json:"categoriaRisco" db:"categoria_risco"`
	DanoPotencialAssociado *string   `json:"danoPotencialAssociado" db:"dano_potencial_associado"`
	Status                 string    `json:"status" db:"status"`
	Observacoes            *string   `json:"observacoes" db:"observacoes"`
	CreatedAt              time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt              time.Time `json:"updatedAt" db:"updated_at"`
}

// BarragemInput is the create payload for a dam.
type BarragemInput struct {
	Codigo                 string  `json:"codigo" binding:"required"`
	Nome                   string  `json:"nome" binding:"required"`
	Rio                    *string `json:"rio"`
	Bacia                  *string `json:"bacia"`
	Municipio              *string `json:"municipio"`
	Estado                 *string `json:"estado"`
	Latitude               *string `json:"latitude"`
	Longitude              *string `json:"longitude"`
	Tipo                   *string `json:"tipo"`
	Finalidade             *string `json:"finalidade"`
	Altura                 *string `json:"altura"`
	Comprimento            *string `json:"comprimento"`
	VolumeReservatorio     *string `json:"volumeReservatorio"`
	AreaReservatorio       *string `json:"areaReservatorio"`
	NivelMaximoNormal      *string `json:"nivelMaximoNormal"`
	NivelMaximoMaximorum   *string `json:"nivelMaximoMaximorum"`
	NivelMinimo            *string `json:"nivelMinimo"`
	Proprietario           *string `json:"proprietario"`
	Operador               *string `json:"operador"`
	AnoInicioConstrucao    *int32  `json:"anoInicioConstrucao"`
	AnoInicioOperacao      *int32  `json:"anoInicioOperacao"`
	CategoriaRisco         *string `json:"categoriaRisco"`
	DanoPotencialAssociado *string `json:"danoPotencialAssociado"`
	Status                 *string `json:"status"`
	Observacoes            *string `json:"observacoes"`
}

// Normalize canonicalizes the enumerated fields.
func (in *BarragemInput) Normalize() error {
	if err := canonicalPtr(&in.CategoriaRisco, enum.CategoriaRisco, "categoriaRisco"); err != nil {
		return err
	}
	if err := canonicalPtr(&in.DanoPotencialAssociado, enum.DanoPotencial, "danoPotencialAssociado"); err != nil {
		return err
	}
	return canonicalPtr(&in.Status, enum.BarragemStatus, "status")
}

// BarragemPatch is a partial update of a dam.
type BarragemPatch struct {
	Codigo                 patch.Field[string] `json:"codigo"`
	Nome                   patch.Field[string] `json:"nome"`
	Rio                    patch.Field[string] `json:"rio"`
	Bacia                  patch.Field[string] `json:"bacia"`
	Municipio              patch.Field[string] `json:"municipio"`
	Estado                 patch.Field[string] `json:"estado"`
	Latitude               patch.Field[string] `json:"latitude"`
	Longitude              patch.Field[string] `json:"longitude"`
	Tipo                   patch.Field[string] `json:"tipo"`
	Finalidade             patch.Field[string] `json:"finalidade"`
	Altura                 patch.Field[string] `json:"altura"`
	Comprimento            patch.Field[string] `json:"comprimento"`
	VolumeReservatorio     patch.Field[string] `json:"volumeReservatorio"`
	AreaReservatorio       patch.Field[string] `json:"areaReservatorio"`
	NivelMaximoNormal      patch.Field[string] `json:"nivelMaximoNormal"`
	NivelMaximoMaximorum   patch.Field[string] `json:"nivelMaximoMaximorum"`
	NivelMinimo            patch.Field[string] `json:"nivelMinimo"`
	Proprietario           patch.Field[string] `json:"proprietario"`
	Operador               patch.Field[string] `json:"operador"`
	AnoInicioConstrucao    patch.Field[int32]  `json:"anoInicioConstrucao"`
	AnoInicioOperacao      patch.Field[int32]  `json:"anoInicioOperacao"`
	CategoriaRisco         patch.Field[string] `json:"categoriaRisco"`
	DanoPotencialAssociado patch.Field[string] `json:"danoPotencialAssociado"`
	Status                 patch.Field[string] `json:"status"`
	Observacoes            patch.Field[string] `json:"observacoes"`
}

// Normalize canonicalizes the enumerated fields.
func (p *BarragemPatch) Normalize() error {
	if err := canonicalField(&p.CategoriaRisco, enum.CategoriaRisco, "categoriaRisco"); err != nil {
		return err
	}
	if err := canonicalField(&p.DanoPotencialAssociado, enum.DanoPotencial, "danoPotencialAssociado"); err != nil {
		return err
	}
	return canonicalField(&p.Status, enum.BarragemStatus, "status")
}

// Estrutura is a structure of a dam (spillway, embankment, intake...).
type Estrutura struct {
	ID          int64     `json:"id" db:"id"`
	BarragemID  int64     `json:"barragemId" db:"barragem_id"`
	Codigo      string    `json:"codigo" db:"codigo"`
	Nome        string    `json:"nome" db:"nome"`
	Tipo        string    `json:"tipo" db:"tipo"`
	Descricao   *string   `json:"descricao" db:"descricao"`
	Localizacao *string   `json:"localizacao" db:"localizacao"`
	Coordenadas *string   `json:"coordenadas" db:"coordenadas"`
	Ativo       bool      `json:"ativo" db:"ativo"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type EstruturaInput struct {
	BarragemID  int64   `json:"barragemId" binding:"required"`
	Codigo      string  `json:"codigo" binding:"required"`
	Nome        string  `json:"nome" binding:"required"`
	Tipo        string  `json:"tipo" binding:"required"`
	Descricao   *string `json:"descricao"`
	Localizacao *string `json:"localizacao"`
	Coordenadas *string `json:"coordenadas"`
}

type EstruturaPatch struct {
	Codigo      patch.Field[string] `json:"codigo"`
	Nome        patch.Field[string] `json:"nome"`
	Tipo        patch.Field[string] `json:"tipo"`
	Descricao   patch.Field[string] `json:"descricao"`
	Localizacao patch.Field[string] `json:"localizacao"`
	Coordenadas patch.Field[string] `json:"coordenadas"`
	Ativo       patch.Field[bool]   `json:"ativo"`
}
