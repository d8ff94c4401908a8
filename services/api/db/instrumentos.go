package db

import (
	"context"
	"strconv"

	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
	"github.com/02loveslollipop/sgsb-barragens/services/api/patch"
)

const insertInstrumentoSQL = `
    INSERT INTO sgsb.instrumentos (
        barragem_id, estrutura_id, codigo, tipo, localizacao, estaca, cota, coordenadas,
        data_instalacao, fabricante, modelo, numero_serie, nivel_normal, nivel_alerta, nivel_critico,
        formula, unidade_medida, limite_inferior, limite_superior, frequencia_leitura, responsavel,
        qr_code, codigo_barras, status, observacoes, ativo
    ) VALUES (
        $1, $2, $3, $4, $5, $6, $7, $8,
        $9, $10, $11, $12, $13, $14, $15,
        $16, $17, $18, $19, $20, $21,
        $22, $23, COALESCE($24, 'ativo'), $25, TRUE
    )
    RETURNING id
`

// CreateInstrumento inserts an active instrument.
func (s *Store) CreateInstrumento(ctx context.Context, in models.InstrumentoInput) (int64, error) {
	return s.insertReturningID(ctx, insertInstrumentoSQL,
		in.BarragemID, in.EstruturaID, in.Codigo, in.Tipo, in.Localizacao, in.Estaca, in.Cota, in.Coordenadas,
		dateArg(in.DataInstalacao), in.Fabricante, in.Modelo, in.NumeroSerie, in.NivelNormal, in.NivelAlerta, in.NivelCritico,
		in.Formula, in.UnidadeMedida, in.LimiteInferior, in.LimiteSuperior, in.FrequenciaLeitura, in.Responsavel,
		in.QRCode, in.CodigoBarras, in.Status, in.Observacoes,
	)
}

// ListInstrumentos returns instruments ordered by code, optionally for one dam.
func (s *Store) ListInstrumentos(ctx context.Context, barragemID *int64) ([]models.Instrumento, error) {
	sql := `SELECT ` + instrumentoColumns + ` FROM sgsb.instrumentos`
	args := []any{}
	if barragemID != nil {
		args = append(args, *barragemID)
		sql += " WHERE barragem_id = $" + strconv.Itoa(len(args))
	}
	sql += " ORDER BY codigo"
	return collectAll[models.Instrumento](s.db.Query(ctx, sql, args...))
}

func (s *Store) GetInstrumento(ctx context.Context, id int64) (*models.Instrumento, error) {
	return collectOne[models.Instrumento](s.db.Query(ctx,
		`SELECT `+instrumentoColumns+` FROM sgsb.instrumentos WHERE id = $1`, id))
}

// GetInstrumentoByCodigo looks an instrument up by the code printed on its tag.
func (s *Store) GetInstrumentoByCodigo(ctx context.Context, codigo string) (*models.Instrumento, error) {
	return collectOne[models.Instrumento](s.db.Query(ctx,
		`SELECT `+instrumentoColumns+` FROM sgsb.instrumentos WHERE codigo = $1 LIMIT 1`, codigo))
}

func (s *Store) UpdateInstrumento(ctx context.Context, id int64, p *models.InstrumentoPatch) error {
	return s.updateByID(ctx, "sgsb.instrumentos", id, patch.Build(p, instrumentoPatchColumns, 1))
}

func (s *Store) DeleteInstrumento(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "sgsb.instrumentos", id)
}
