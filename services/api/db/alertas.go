package db

import (
	"context"
	"strconv"

	"github.com/02loveslollipop/sgsb-barragens/services/api/alerting"
	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
)

const insertAlertaSQL = `
    INSERT INTO sgsb.alertas (
        barragem_id, tipo, severidade, titulo, mensagem, instrumento_id, leitura_id, ocorrencia_id, lido
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE)
    RETURNING id
`

// CreateAlerta stores an unread alert.
func (s *Store) CreateAlerta(ctx context.Context, d alerting.Draft) (int64, error) {
	return s.insertReturningID(ctx, insertAlertaSQL,
		d.BarragemID, d.Tipo, d.Severidade, d.Titulo, d.Mensagem, d.InstrumentoID, d.LeituraID, d.OcorrenciaID,
	)
}

// ListAlertas returns a dam's alerts, newest first, optionally filtered by read state.
func (s *Store) ListAlertas(ctx context.Context, barragemID int64, lido *bool) ([]models.Alerta, error) {
	sql := `SELECT ` + alertaColumns + ` FROM sgsb.alertas WHERE barragem_id = $1`
	args := []any{barragemID}
	if lido != nil {
		args = append(args, *lido)
		sql += " AND lido = $" + strconv.Itoa(len(args))
	}
	sql += " ORDER BY created_at DESC"
	return collectAll[models.Alerta](s.db.Query(ctx, sql, args...))
}

// MarkAlertaLido moves an alert from unread to read and stamps the time.
func (s *Store) MarkAlertaLido(ctx context.Context, id int64) error {
	_, err := s.db.Exec(ctx, `UPDATE sgsb.alertas SET lido = TRUE, data_leitura = NOW() WHERE id = $1`, id)
	return err
}
