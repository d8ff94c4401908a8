package db

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
)

// Dashboard gathers the overview of a dam. The queries are independent and run concurrently.
func (s *Store) Dashboard(ctx context.Context, barragemID int64) (*models.Dashboard, error) {
	var out models.Dashboard
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.UltimasInconsistencias, err = s.ListLeiturasInconsistentes(ctx, &barragemID, 10)
		return err
	})
	g.Go(func() (err error) {
		out.UltimasOcorrencias, err = collectAll[models.Ocorrencia](s.db.Query(ctx,
			`SELECT `+ocorrenciaColumns+` FROM sgsb.ocorrencias WHERE barragem_id = $1 ORDER BY data_hora_registro DESC LIMIT 10`,
			barragemID))
		return err
	})
	g.Go(func() (err error) {
		out.UltimosChecklists, err = s.ListChecklists(ctx, barragemID, 5)
		return err
	})
	g.Go(func() (err error) {
		out.UltimaHidrometria, err = s.UltimaHidrometria(ctx, barragemID)
		return err
	})
	g.Go(func() (err error) {
		lido := false
		out.AlertasNaoLidos, err = s.ListAlertas(ctx, barragemID, &lido)
		return err
	})
	g.Go(func() error {
		return s.db.QueryRow(ctx,
			`SELECT COUNT(*) FROM sgsb.instrumentos WHERE barragem_id = $1 AND ativo = TRUE`, barragemID,
		).Scan(&out.Estatisticas.TotalInstrumentos)
	})
	g.Go(func() error {
		return s.db.QueryRow(ctx,
			`SELECT COUNT(*) FROM sgsb.ocorrencias WHERE barragem_id = $1 AND status = 'pendente'`, barragemID,
		).Scan(&out.Estatisticas.OcorrenciasPendentes)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	out.Estatisticas.AlertasNaoLidos = len(out.AlertasNaoLidos)
	return &out, nil
}
