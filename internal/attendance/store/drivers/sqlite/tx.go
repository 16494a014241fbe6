package sqlite

import (
	"context"
	"database/sql"

	"github.com/robera20/employee-attendance-management/internal/attendance/store"
	"github.com/robera20/employee-attendance-management/internal/attendance/store/drivers/sqlite/gen"
)

type txStore struct {
	tx *sql.Tx
	q  *gen.Queries
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{
		tx: tx,
		q:  gen.New(tx),
	}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // outer DB stays open

// Ping is a no-op for transactions; the connection is already held.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return sql.ErrTxDone
}

func (t *txStore) Admins() store.Admins             { return &adminsRepo{q: t.q} }
func (t *txStore) Sessions() store.Sessions         { return &sessionsRepo{q: t.q} }
func (t *txStore) Employees() store.Employees       { return &employeesRepo{q: t.q} }
func (t *txStore) Attendance() store.Attendance     { return &attendanceRepo{q: t.q} }
func (t *txStore) FaceTraining() store.FaceTraining { return &faceTrainingRepo{q: t.q} }
func (t *txStore) Reports() store.Reports           { return &reportsRepo{q: t.q} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx
