package db

import (
	"context"

	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
	"github.com/02loveslollipop/sgsb-barragens/services/api/patch"
)

const insertHidrometriaSQL = `
    INSERT INTO sgsb.hidrometria (
        barragem_id, usuario_id, data_leitura, nivel_montante, nivel_jusante, nivel_reservatorio,
        vazao, vazao_afluente, vazao_defluente, vazao_vertedouro, volume_reservatorio,
        volume_armazenado, observacoes
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    RETURNING id
`

func (s *Store) CreateHidrometria(ctx context.Context, in models.HidrometriaInput, usuarioID string) (int64, error) {
	return s.insertReturningID(ctx, insertHidrometriaSQL,
		in.BarragemID, usuarioID, patch.ToDate(in.DataLeitura), in.NivelMontante, in.NivelJusante, in.NivelReservatorio,
		in.Vazao, in.VazaoAfluente, in.VazaoDefluente, in.VazaoVertedouro, in.VolumeReservatorio,
		in.VolumeArmazenado, in.Observacoes,
	)
}

// ListHidrometria returns the latest measurements of a dam.
func (s *Store) ListHidrometria(ctx context.Context, barragemID int64, limit int) ([]models.Hidrometria, error) {
	if limit <= 0 {
		limit = DefaultHidroLimit
	}
	return collectAll[models.Hidrometria](s.db.Query(ctx,
		`SELECT `+hidrometriaColumns+` FROM sgsb.hidrometria WHERE barragem_id = $1 ORDER BY data_leitura DESC LIMIT $2`,
		barragemID, limit))
}

// UltimaHidrometria returns the latest measurement, or nil.
func (s *Store) UltimaHidrometria(ctx context.Context, barragemID int64) (*models.Hidrometria, error) {
	return collectOne[models.Hidrometria](s.db.Query(ctx,
		`SELECT `+hidrometriaColumns+` FROM sgsb.hidrometria WHERE barragem_id = $1 ORDER BY data_leitura DESC LIMIT 1`,
		barragemID))
}

func (s *Store) UpdateHidrometria(ctx context.Context, id int64, p *models.HidrometriaPatch) error {
	return s.updateByID(ctx, "sgsb.hidrometria", id, patch.Build(p, hidrometriaPatchColumns, 1))
}

func (s *Store) DeleteHidrometria(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "sgsb.hidrometria", id)
}
