package db

import (
	"context"
	"reflect"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewWithDB(mock, nil), mock
}

// serialDB funnels calls into the mock one at a time. pgxmock is not safe for
// concurrent use, and Dashboard queries from several goroutines.
type serialDB struct {
	mu sync.Mutex
	db DBTX
}

func (s *serialDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Exec(ctx, sql, args...)
}

func (s *serialDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Query(ctx, sql, args...)
}

func (s *serialDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.QueryRow(ctx, sql, args...)
}

// newConcurrentMockStore is newMockStore for code that queries in parallel.
func newConcurrentMockStore(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewWithDB(&serialDB{db: mock}, nil), mock
}

// anyArgs matches n arguments of any value.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

// rowsOf builds mock rows whose columns are the db tags of T.
func rowsOf[T any](items ...T) *pgxmock.Rows {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	var cols []string
	var idx []int
	for i := 0; i < typ.NumField(); i++ {
		if tag := typ.Field(i).Tag.Get("db"); tag != "" && tag != "-" {
			cols = append(cols, tag)
			idx = append(idx, i)
		}
	}
	rows := pgxmock.NewRows(cols)
	for _, item := range items {
		v := reflect.ValueOf(item)
		vals := make([]any, 0, len(idx))
		for _, i := range idx {
			vals = append(vals, v.Field(i).Interface())
		}
		rows.AddRow(vals...)
	}
	return rows
}

func idRow(id int64) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id"}).AddRow(id)
}

func ptr[T any](v T) *T {
	return &v
}
