package db

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/02loveslollipop/sgsb-barragens/services/api/patch"
)

// DBTX is the subset of the pgx pool the store needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store wraps database access helpers.
type Store struct {
	pool   *pgxpool.Pool
	db     DBTX
	logger *zap.Logger
}

// New creates a Store backed by a pgx pool.
func New(ctx context.Context, databaseURL string, logger *zap.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	store := NewWithDB(pool, logger)
	store.pool = pool
	return store, nil
}

// NewWithDB creates a Store over an existing connection (tests use pgxmock).
func NewWithDB(db DBTX, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, logger: logger}
}

// Close releases the pool resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if s.pool == nil {
		return nil
	}
	return s.pool.Ping(ctx)
}

func collectAll[T any](rows pgx.Rows, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

func collectOne[T any](rows pgx.Rows, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return item, err
}

func (s *Store) insertReturningID(ctx context.Context, sql string, args ...any) (int64, error) {
	var id int64
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// updateByID runs UPDATE <table> SET <projection>, updated_at = NOW() WHERE id = $n.
// An empty projection issues nothing.
func (s *Store) updateByID(ctx context.Context, table string, id int64, proj patch.Projection) error {
	if proj.Empty() {
		return nil
	}
	sql := "UPDATE " + table + " SET " + proj.SetClause() + ", updated_at = NOW() WHERE id = $" + strconv.Itoa(proj.Next())
	args := append(proj.Apply(nil), id)
	_, err := s.db.Exec(ctx, sql, args...)
	return err
}

func (s *Store) deleteByID(ctx context.Context, table string, id int64) error {
	_, err := s.db.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	return err
}

func dateArg(s *string) any {
	if s == nil {
		return nil
	}
	return patch.ToDate(*s)
}
