package db

import (
	"context"
	"strconv"

	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
	"github.com/02loveslollipop/sgsb-barragens/services/api/patch"
)

const insertDocumentoSQL = `
    INSERT INTO sgsb.documentos (
        barragem_id, usuario_id, tipo, categoria, titulo, descricao, arquivo_url, arquivo_nome,
        arquivo_tamanho, arquivo_tipo, versao, documento_pai_id, data_validade, tags
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
    RETURNING id
`

// CreateDocumento registers a file already uploaded to object storage.
func (s *Store) CreateDocumento(ctx context.Context, in models.DocumentoInput, usuarioID string) (int64, error) {
	return s.insertReturningID(ctx, insertDocumentoSQL,
		in.BarragemID, usuarioID, in.Tipo, in.Categoria, in.Titulo, in.Descricao, in.ArquivoURL, in.ArquivoNome,
		in.ArquivoTamanho, in.ArquivoTipo, in.Versao, in.DocumentoPaiID, dateArg(in.DataValidade), in.Tags,
	)
}

func (s *Store) ListDocumentos(ctx context.Context, barragemID int64, tipo *string) ([]models.Documento, error) {
	sql := `SELECT ` + documentoColumns + ` FROM sgsb.documentos WHERE barragem_id = $1`
	args := []any{barragemID}
	if tipo != nil {
		args = append(args, *tipo)
		sql += " AND tipo = $" + strconv.Itoa(len(args))
	}
	sql += " ORDER BY created_at DESC"
	return collectAll[models.Documento](s.db.Query(ctx, sql, args...))
}

func (s *Store) GetDocumento(ctx context.Context, id int64) (*models.Documento, error) {
	return collectOne[models.Documento](s.db.Query(ctx, `SELECT `+documentoColumns+` FROM sgsb.documentos WHERE id = $1`, id))
}

func (s *Store) UpdateDocumento(ctx context.Context, id int64, p *models.DocumentoPatch) error {
	return s.updateByID(ctx, "sgsb.documentos", id, patch.Build(p, documentoPatchColumns, 1))
}

func (s *Store) DeleteDocumento(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "sgsb.documentos", id)
}
