package db

import (
	"context"

	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
)

const upsertUserSQL = `
    INSERT INTO sgsb.users (id, name, email, login_method, role, ativo, last_signed_in)
    VALUES ($1, $2, $3, $4, $5, TRUE, NOW())
    ON CONFLICT (id) DO UPDATE SET
        name = COALESCE(EXCLUDED.name, sgsb.users.name),
        email = COALESCE(EXCLUDED.email, sgsb.users.email),
        login_method = COALESCE(EXCLUDED.login_method, sgsb.users.login_method),
        last_signed_in = NOW(),
        updated_at = NOW()
`

// UpsertUser records a sign-in. role only applies when the user is new.
func (s *Store) UpsertUser(ctx context.Context, id models.UserIdentity, role string) error {
	_, err := s.db.Exec(ctx, upsertUserSQL, id.OpenID, id.Name, id.Email, id.LoginMethod, role)
	return err
}

// GetUser returns nil for unknown ids.
func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	return collectOne[models.User](s.db.Query(ctx, `SELECT `+userColumns+` FROM sgsb.users WHERE id = $1`, id))
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	return collectAll[models.User](s.db.Query(ctx, `SELECT `+userColumns+` FROM sgsb.users ORDER BY created_at DESC`))
}

func (s *Store) UpdateUserRole(ctx context.Context, id, role string) error {
	_, err := s.db.Exec(ctx, `UPDATE sgsb.users SET role = $1, updated_at = NOW() WHERE id = $2`, role, id)
	return err
}

// ToggleUserStatus flips ativo. Unknown ids are ignored.
func (s *Store) ToggleUserStatus(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `UPDATE sgsb.users SET ativo = NOT ativo, updated_at = NOW() WHERE id = $1`, id)
	return err
}
