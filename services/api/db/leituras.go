package db

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/02loveslollipop/sgsb-barragens/services/api/alerting"
	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
	"github.com/02loveslollipop/sgsb-barragens/services/api/patch"
)

const (
	DefaultLeituraLimit   = 50
	DefaultChecklistLimit = 20
	DefaultHidroLimit     = 100
)

// LeituraResult describes what CreateLeitura stored.
type LeituraResult struct {
	ID                 int64   `json:"id"`
	Inconsistencia     bool    `json:"inconsistencia"`
	TipoInconsistencia *string `json:"tipoInconsistencia,omitempty"`
	AlertaID           *int64  `json:"alertaId,omitempty"`
}

const insertLeituraSQL = `
    INSERT INTO sgsb.leituras (
        instrumento_id, usuario_id, data_hora, valor, nivel_montante, inconsistencia,
        tipo_inconsistencia, observacoes, origem, latitude, longitude
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, 'mobile'), $10, $11)
    RETURNING id
`

// CreateLeitura evaluates the value against the instrument's levels, stores
// the reading, and then raises an alert for an inconsistent reading.
// The alert insert is a separate statement: if it fails the reading stays
// stored and the failure is only logged.
func (s *Store) CreateLeitura(ctx context.Context, in models.LeituraInput, usuarioID string) (LeituraResult, error) {
	inst, err := s.GetInstrumento(ctx, in.InstrumentoID)
	if err != nil {
		return LeituraResult{}, err
	}

	class := alerting.Consistent
	if inst != nil {
		class = alerting.Evaluate(in.Valor, inst.NivelAlerta, inst.NivelCritico)
	}

	var result LeituraResult
	result.Inconsistencia = class.Inconsistent()
	if result.Inconsistencia {
		label := class.Label()
		result.TipoInconsistencia = &label
	}

	dataHora, ok := patch.ParseDate(in.DataHora)
	if !ok {
		dataHora = time.Now().UTC()
	}

	result.ID, err = s.insertReturningID(ctx, insertLeituraSQL,
		in.InstrumentoID, usuarioID, dataHora, in.Valor, in.NivelMontante, result.Inconsistencia,
		result.TipoInconsistencia, in.Observacoes, in.Origem, in.Latitude, in.Longitude,
	)
	if err != nil {
		return LeituraResult{}, err
	}

	if inst == nil || result.ID == 0 {
		return result, nil
	}
	draft, ok := alerting.ForReading(alerting.Instrument{
		ID:            inst.ID,
		BarragemID:    inst.BarragemID,
		Codigo:        inst.Codigo,
		UnidadeMedida: inst.UnidadeMedida,
	}, result.ID, in.Valor, class)
	if !ok {
		return result, nil
	}
	alertaID, err := s.CreateAlerta(ctx, draft)
	if err != nil {
		s.logger.Warn("reading alert not created",
			zap.Int64("leitura_id", result.ID),
			zap.Int64("instrumento_id", inst.ID),
			zap.String("severidade", draft.Severidade),
			zap.Error(err),
		)
		return result, nil
	}
	result.AlertaID = &alertaID
	return result, nil
}

// ListLeituras returns the most recent readings of an instrument.
func (s *Store) ListLeituras(ctx context.Context, instrumentoID int64, limit int) ([]models.Leitura, error) {
	if limit <= 0 {
		limit = DefaultLeituraLimit
	}
	return collectAll[models.Leitura](s.db.Query(ctx,
		`SELECT `+leituraColumns+` FROM sgsb.leituras WHERE instrumento_id = $1 ORDER BY data_hora DESC LIMIT $2`,
		instrumentoID, limit))
}

// UltimaLeitura returns the latest reading, or nil.
func (s *Store) UltimaLeitura(ctx context.Context, instrumentoID int64) (*models.Leitura, error) {
	return collectOne[models.Leitura](s.db.Query(ctx,
		`SELECT `+leituraColumns+` FROM sgsb.leituras WHERE instrumento_id = $1 ORDER BY data_hora DESC LIMIT 1`,
		instrumentoID))
}

// ListLeiturasInconsistentes returns flagged readings, newest first, each with
// its instrument. barragemID and limit are optional (nil / <= 0).
func (s *Store) ListLeiturasInconsistentes(ctx context.Context, barragemID *int64, limit int) ([]models.LeituraInconsistente, error) {
	sql := `SELECT ` + leituraColumnsL + `
    FROM sgsb.leituras l
    INNER JOIN sgsb.instrumentos i ON i.id = l.instrumento_id
    WHERE l.inconsistencia = TRUE`
	args := []any{}
	if barragemID != nil {
		args = append(args, *barragemID)
		sql += " AND i.barragem_id = $" + strconv.Itoa(len(args))
	}
	sql += " ORDER BY l.data_hora DESC"
	if limit > 0 {
		args = append(args, limit)
		sql += " LIMIT $" + strconv.Itoa(len(args))
	}

	leituras, err := collectAll[models.Leitura](s.db.Query(ctx, sql, args...))
	if err != nil {
		return nil, err
	}
	if len(leituras) == 0 {
		return []models.LeituraInconsistente{}, nil
	}

	ids := make([]int64, 0, len(leituras))
	seen := make(map[int64]bool, len(leituras))
	for _, l := range leituras {
		if !seen[l.InstrumentoID] {
			seen[l.InstrumentoID] = true
			ids = append(ids, l.InstrumentoID)
		}
	}
	instrumentos, err := collectAll[models.Instrumento](s.db.Query(ctx,
		`SELECT `+instrumentoColumns+` FROM sgsb.instrumentos WHERE id = ANY($1)`, ids))
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*models.Instrumento, len(instrumentos))
	for i := range instrumentos {
		byID[instrumentos[i].ID] = &instrumentos[i]
	}

	out := make([]models.LeituraInconsistente, 0, len(leituras))
	for _, l := range leituras {
		out = append(out, models.LeituraInconsistente{Leitura: l, Instrumento: byID[l.InstrumentoID]})
	}
	return out, nil
}
