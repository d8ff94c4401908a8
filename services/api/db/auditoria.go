package db

import (
	"context"

	"go.uber.org/zap"

	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
)

const insertAuditoriaSQL = `
    INSERT INTO sgsb.auditoria (usuario_id, acao, entidade, entidade_id, detalhes, ip, user_agent)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
`

// RecordAudit writes an audit entry. Failures are logged and never returned.
func (s *Store) RecordAudit(ctx context.Context, e models.AuditEntry) {
	_, err := s.db.Exec(ctx, insertAuditoriaSQL,
		nullable(e.UsuarioID), e.Acao, e.Entidade, e.EntidadeID, nullable(e.Detalhes), nullable(e.IP), nullable(e.UserAgent),
	)
	if err != nil {
		s.logger.Warn("audit entry dropped",
			zap.String("acao", e.Acao),
			zap.String("entidade", e.Entidade),
			zap.Error(err),
		)
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
