package db

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/02loveslollipop/sgsb-barragens/services/api/alerting"
	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
	"github.com/02loveslollipop/sgsb-barragens/services/api/patch"
)

// OcorrenciaResult describes what CreateOcorrencia stored.
type OcorrenciaResult struct {
	ID       int64  `json:"id"`
	AlertaID *int64 `json:"alertaId,omitempty"`
}

const insertOcorrenciaSQL = `
    INSERT INTO sgsb.ocorrencias (
        barragem_id, estrutura_id, usuario_registro_id, data_hora_registro, estrutura, relato, fotos,
        titulo, descricao, data_ocorrencia, local_ocorrencia, acao_imediata, responsavel, categoria,
        severidade, tipo, status, latitude, longitude
    ) VALUES (
        $1, $2, $3, COALESCE($4, NOW()), $5, $6, $7,
        $8, $9, $10, $11, $12, $13, $14,
        $15, $16, 'pendente', $17, $18
    )
    RETURNING id
`

// CreateOcorrencia stores a pending incident, registered now unless the
// caller supplies dataHoraRegistro. Incidents of severity alta or
// critica then raise an alert, best effort, as CreateLeitura does.
func (s *Store) CreateOcorrencia(ctx context.Context, in models.OcorrenciaInput, usuarioID string) (OcorrenciaResult, error) {
	id, err := s.insertReturningID(ctx, insertOcorrenciaSQL,
		in.BarragemID, in.EstruturaID, usuarioID, dateArg(in.DataHoraRegistro), in.Estrutura, in.Relato, in.Fotos,
		in.Titulo, in.Descricao, dateArg(in.DataOcorrencia), in.LocalOcorrencia, in.AcaoImediata, in.Responsavel, in.Categoria,
		in.Severidade, in.Tipo, in.Latitude, in.Longitude,
	)
	if err != nil {
		return OcorrenciaResult{}, err
	}

	result := OcorrenciaResult{ID: id}
	if id == 0 || in.Severidade == nil {
		return result, nil
	}
	draft, ok := alerting.ForIncident(in.BarragemID, id, in.Estrutura, in.Relato, *in.Severidade)
	if !ok {
		return result, nil
	}
	alertaID, err := s.CreateAlerta(ctx, draft)
	if err != nil {
		s.logger.Warn("incident alert not created",
			zap.Int64("ocorrencia_id", id),
			zap.String("severidade", draft.Severidade),
			zap.Error(err),
		)
		return result, nil
	}
	result.AlertaID = &alertaID
	return result, nil
}

// ListOcorrencias returns a dam's incidents, newest first, optionally by status.
func (s *Store) ListOcorrencias(ctx context.Context, barragemID int64, status *string) ([]models.Ocorrencia, error) {
	sql := `SELECT ` + ocorrenciaColumns + ` FROM sgsb.ocorrencias WHERE barragem_id = $1`
	args := []any{barragemID}
	if status != nil {
		args = append(args, *status)
		sql += " AND status = $" + strconv.Itoa(len(args))
	}
	sql += " ORDER BY data_hora_registro DESC"
	return collectAll[models.Ocorrencia](s.db.Query(ctx, sql, args...))
}

func (s *Store) GetOcorrencia(ctx context.Context, id int64) (*models.Ocorrencia, error) {
	return collectOne[models.Ocorrencia](s.db.Query(ctx, `SELECT `+ocorrenciaColumns+` FROM sgsb.ocorrencias WHERE id = $1`, id))
}

// UpdateOcorrencia records evaluation and conclusion fields.
func (s *Store) UpdateOcorrencia(ctx context.Context, id int64, p *models.OcorrenciaPatch) error {
	return s.updateByID(ctx, "sgsb.ocorrencias", id, patch.Build(p, ocorrenciaPatchColumns, 1))
}

func (s *Store) DeleteOcorrencia(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "sgsb.ocorrencias", id)
}
