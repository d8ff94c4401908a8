package db

import (
	"context"
	"strconv"

	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
	"github.com/02loveslollipop/sgsb-barragens/services/api/patch"
)

const insertManutencaoSQL = `
    INSERT INTO sgsb.manutencoes (
        barragem_id, estrutura_id, ocorrencia_id, tipo, titulo, descricao, data_programada,
        responsavel, status, custo_estimado, observacoes
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'planejada', $9, $10)
    RETURNING id
`

// CreateManutencao schedules a maintenance in status planejada.
func (s *Store) CreateManutencao(ctx context.Context, in models.ManutencaoInput) (int64, error) {
	return s.insertReturningID(ctx, insertManutencaoSQL,
		in.BarragemID, in.EstruturaID, in.OcorrenciaID, in.Tipo, in.Titulo, in.Descricao, dateArg(in.DataProgramada),
		in.Responsavel, in.CustoEstimado, in.Observacoes,
	)
}

func (s *Store) ListManutencoes(ctx context.Context, barragemID int64, status *string) ([]models.Manutencao, error) {
	sql := `SELECT ` + manutencaoColumns + ` FROM sgsb.manutencoes WHERE barragem_id = $1`
	args := []any{barragemID}
	if status != nil {
		args = append(args, *status)
		sql += " AND status = $" + strconv.Itoa(len(args))
	}
	sql += " ORDER BY data_programada DESC"
	return collectAll[models.Manutencao](s.db.Query(ctx, sql, args...))
}

func (s *Store) UpdateManutencao(ctx context.Context, id int64, p *models.ManutencaoPatch) error {
	return s.updateByID(ctx, "sgsb.manutencoes", id, patch.Build(p, manutencaoPatchColumns, 1))
}

func (s *Store) DeleteManutencao(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "sgsb.manutencoes", id)
}
