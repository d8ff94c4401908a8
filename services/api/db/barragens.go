package db

import (
	"context"

	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
	"github.com/02loveslollipop/sgsb-barragens/services/api/patch"
)

const insertBarragemSQL = `
    INSERT INTO sgsb.barragens (
        codigo, nome, rio, bacia, municipio, estado, latitude, longitude, tipo, finalidade,
        altura, comprimento, volume_reservatorio, area_reservatorio, nivel_maximo_normal,
        nivel_maximo_maximorum, nivel_minimo, proprietario, operador, ano_inicio_construcao,
        ano_inicio_operacao, categoria_risco, dano_potencial_associado, status, observacoes
    ) VALUES (
        $1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
        $11, $12, $13, $14, $15,
        $16, $17, $18, $19, $20,
        $21, $22, $23, COALESCE($24, 'ativa'), $25
    )
    RETURNING id
`

// CreateBarragem inserts a dam and returns its id.
func (s *Store) CreateBarragem(ctx context.Context, in models.BarragemInput) (int64, error) {
	return s.insertReturningID(ctx, insertBarragemSQL,
		in.Codigo, in.Nome, in.Rio, in.Bacia, in.Municipio, in.Estado, in.Latitude, in.Longitude, in.Tipo, in.Finalidade,
		in.Altura, in.Comprimento, in.VolumeReservatorio, in.AreaReservatorio, in.NivelMaximoNormal,
		in.NivelMaximoMaximorum, in.NivelMinimo, in.Proprietario, in.Operador, in.AnoInicioConstrucao,
		in.AnoInicioOperacao, in.CategoriaRisco, in.DanoPotencialAssociado, in.Status, in.Observacoes,
	)
}

// ListBarragens returns every dam ordered by name.
func (s *Store) ListBarragens(ctx context.Context) ([]models.Barragem, error) {
	return collectAll[models.Barragem](s.db.Query(ctx, `SELECT `+barragemColumns+` FROM sgsb.barragens ORDER BY nome`))
}

// GetBarragem returns nil when the dam does not exist.
func (s *Store) GetBarragem(ctx context.Context, id int64) (*models.Barragem, error) {
	return collectOne[models.Barragem](s.db.Query(ctx, `SELECT `+barragemColumns+` FROM sgsb.barragens WHERE id = $1`, id))
}

// UpdateBarragem applies the fields present in p.
func (s *Store) UpdateBarragem(ctx context.Context, id int64, p *models.BarragemPatch) error {
	return s.updateByID(ctx, "sgsb.barragens", id, patch.Build(p, barragemPatchColumns, 1))
}

// DeleteBarragem removes a dam. Children are not cascaded.
func (s *Store) DeleteBarragem(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "sgsb.barragens", id)
}

const insertEstruturaSQL = `
    INSERT INTO sgsb.estruturas (barragem_id, codigo, nome, tipo, descricao, localizacao, coordenadas, ativo)
    VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
    RETURNING id
`

// CreateEstrutura inserts an active structure.
func (s *Store) CreateEstrutura(ctx context.Context, in models.EstruturaInput) (int64, error) {
	return s.insertReturningID(ctx, insertEstruturaSQL,
		in.BarragemID, in.Codigo, in.Nome, in.Tipo, in.Descricao, in.Localizacao, in.Coordenadas,
	)
}

// ListEstruturas returns the structures of a dam ordered by name.
func (s *Store) ListEstruturas(ctx context.Context, barragemID int64) ([]models.Estrutura, error) {
	return collectAll[models.Estrutura](s.db.Query(ctx,
		`SELECT `+estruturaColumns+` FROM sgsb.estruturas WHERE barragem_id = $1 ORDER BY nome`, barragemID))
}

func (s *Store) GetEstrutura(ctx context.Context, id int64) (*models.Estrutura, error) {
	return collectOne[models.Estrutura](s.db.Query(ctx, `SELECT `+estruturaColumns+` FROM sgsb.estruturas WHERE id = $1`, id))
}

// UpdateEstrutura applies the fields present in p. Setting ativo=false deactivates the structure.
func (s *Store) UpdateEstrutura(ctx context.Context, id int64, p *models.EstruturaPatch) error {
	return s.updateByID(ctx, "sgsb.estruturas", id, patch.Build(p, estruturaPatchColumns, 1))
}

func (s *Store) DeleteEstrutura(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "sgsb.estruturas", id)
}
