package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/acadeval/encuestas/internal/server/store"
)

// txStore scopes the repos to a single transaction. Nested transactions are
// not supported; fn passed to WithTx must not open another one.
type txStore struct {
	tx *sql.Tx
}

func (t *txStore) Users() store.Users             { return &usersRepo{db: t.tx} }
func (t *txStore) Faculties() store.Faculties     { return &facultiesRepo{db: t.tx} }
func (t *txStore) Professors() store.Professors   { return &professorsRepo{db: t.tx} }
func (t *txStore) Surveys() store.Surveys         { return &surveysRepo{db: t.tx} }
func (t *txStore) Criteria() store.Criteria       { return &criteriaRepo{db: t.tx} }
func (t *txStore) Evaluations() store.Evaluations { return &evaluationsRepo{db: t.tx} }

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) ApplyMigrations() error {
	return errors.New("sqlite: migrations cannot run inside a transaction")
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, errors.New("sqlite: nested transactions are not supported")
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return errors.New("sqlite: nested transactions are not supported")
}

func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }
