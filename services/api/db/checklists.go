package db

import (
	"context"
	"strconv"

	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
	"github.com/02loveslollipop/sgsb-barragens/services/api/patch"
)

const insertChecklistSQL = `
    INSERT INTO sgsb.checklists (
        barragem_id, usuario_id, data, tipo, status, observacoes_gerais, latitude, longitude
    ) VALUES ($1, $2, $3, COALESCE($4, 'mensal'), 'em_andamento', $5, $6, $7)
    RETURNING id
`

// CreateChecklist opens an inspection in status em_andamento.
func (s *Store) CreateChecklist(ctx context.Context, in models.ChecklistInput, usuarioID string) (int64, error) {
	var tipo *string
	if in.Tipo != "" {
		tipo = &in.Tipo
	}
	return s.insertReturningID(ctx, insertChecklistSQL,
		in.BarragemID, usuarioID, patch.ToDate(in.Data), tipo, in.ObservacoesGerais, in.Latitude, in.Longitude,
	)
}

// ListChecklists returns the latest inspections of a dam.
func (s *Store) ListChecklists(ctx context.Context, barragemID int64, limit int) ([]models.Checklist, error) {
	if limit <= 0 {
		limit = DefaultChecklistLimit
	}
	return collectAll[models.Checklist](s.db.Query(ctx,
		`SELECT `+checklistColumns+` FROM sgsb.checklists WHERE barragem_id = $1 ORDER BY data DESC LIMIT $2`,
		barragemID, limit))
}

func (s *Store) GetChecklist(ctx context.Context, id int64) (*models.Checklist, error) {
	return collectOne[models.Checklist](s.db.Query(ctx, `SELECT `+checklistColumns+` FROM sgsb.checklists WHERE id = $1`, id))
}

// GetChecklistDetalhe returns the checklist (nil when missing) and its answers.
func (s *Store) GetChecklistDetalhe(ctx context.Context, id int64) (models.ChecklistDetalhe, error) {
	checklist, err := s.GetChecklist(ctx, id)
	if err != nil || checklist == nil {
		return models.ChecklistDetalhe{}, err
	}
	respostas, err := s.ListRespostas(ctx, id)
	if err != nil {
		return models.ChecklistDetalhe{}, err
	}
	return models.ChecklistDetalhe{Checklist: checklist, Respostas: respostas}, nil
}

func (s *Store) UpdateChecklist(ctx context.Context, id int64, p *models.ChecklistPatch) error {
	return s.updateByID(ctx, "sgsb.checklists", id, patch.Build(p, checklistPatchColumns, 1))
}

func (s *Store) DeleteChecklist(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "sgsb.checklists", id)
}

const insertPerguntaSQL = `
    INSERT INTO sgsb.perguntas_checklist (barragem_id, categoria, pergunta, ordem, ativo)
    VALUES ($1, $2, $3, $4, TRUE)
    RETURNING id
`

// CreatePergunta adds a question. A nil barragem makes it apply to every dam.
func (s *Store) CreatePergunta(ctx context.Context, in models.PerguntaInput) (int64, error) {
	return s.insertReturningID(ctx, insertPerguntaSQL, in.BarragemID, in.Categoria, in.Pergunta, in.Ordem)
}

// ListPerguntas returns active questions ordered by category and position.
func (s *Store) ListPerguntas(ctx context.Context, barragemID *int64) ([]models.PerguntaChecklist, error) {
	sql := `SELECT ` + perguntaColumns + ` FROM sgsb.perguntas_checklist WHERE ativo = TRUE`
	args := []any{}
	if barragemID != nil {
		args = append(args, *barragemID)
		sql += " AND barragem_id = $" + strconv.Itoa(len(args))
	}
	sql += " ORDER BY categoria, ordem"
	return collectAll[models.PerguntaChecklist](s.db.Query(ctx, sql, args...))
}

const insertRespostaSQL = `
    INSERT INTO sgsb.respostas_checklist (checklist_id, pergunta_id, resposta, situacao_anterior, comentario, fotos)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id
`

func (s *Store) CreateResposta(ctx context.Context, in models.RespostaInput) (int64, error) {
	return s.insertReturningID(ctx, insertRespostaSQL,
		in.ChecklistID, in.PerguntaID, in.Resposta, in.SituacaoAnterior, in.Comentario, in.Fotos,
	)
}

// ListRespostas returns the answers of a checklist with their questions,
// ordered like the questionnaire.
func (s *Store) ListRespostas(ctx context.Context, checklistID int64) ([]models.RespostaComPergunta, error) {
	respostas, err := collectAll[models.RespostaChecklist](s.db.Query(ctx, `SELECT `+respostaColumnsR+`
    FROM sgsb.respostas_checklist r
    LEFT JOIN sgsb.perguntas_checklist p ON p.id = r.pergunta_id
    WHERE r.checklist_id = $1
    ORDER BY p.categoria, p.ordem`, checklistID))
	if err != nil {
		return nil, err
	}
	out := make([]models.RespostaComPergunta, 0, len(respostas))
	if len(respostas) == 0 {
		return out, nil
	}

	ids := make([]int64, 0, len(respostas))
	for _, r := range respostas {
		ids = append(ids, r.PerguntaID)
	}
	perguntas, err := collectAll[models.PerguntaChecklist](s.db.Query(ctx,
		`SELECT `+perguntaColumns+` FROM sgsb.perguntas_checklist WHERE id = ANY($1)`, ids))
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*models.PerguntaChecklist, len(perguntas))
	for i := range perguntas {
		byID[perguntas[i].ID] = &perguntas[i]
	}
	for _, r := range respostas {
		out = append(out, models.RespostaComPergunta{Resposta: r, Pergunta: byID[r.PerguntaID]})
	}
	return out, nil
}
