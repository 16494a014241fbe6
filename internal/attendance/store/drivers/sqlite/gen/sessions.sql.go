package gen

import (
	"context"
)

const createSession = `-- name: CreateSession :exec
INSERT INTO sessions (session_id, admin_id, expires_at, created_at) VALUES (?, ?, ?, ?)`

type CreateSessionParams struct {
	SessionID string
	AdminID   int64
	ExpiresAt string
	CreatedAt string
}

func (q *Queries) CreateSession(ctx context.Context, arg CreateSessionParams) error {
	_, err := q.db.ExecContext(ctx, createSession,
		arg.SessionID,
		arg.AdminID,
		arg.ExpiresAt,
		arg.CreatedAt,
	)
	return err
}

const getActiveSession = `-- name: GetActiveSession :one
SELECT session_id, admin_id, expires_at, created_at
FROM sessions
WHERE session_id = ? AND expires_at > ?`

func (q *Queries) GetActiveSession(ctx context.Context, sessionID, now string) (Session, error) {
	row := q.db.QueryRowContext(ctx, getActiveSession, sessionID, now)
	var i Session
	err := row.Scan(
		&i.SessionID,
		&i.AdminID,
		&i.ExpiresAt,
		&i.CreatedAt,
	)
	return i, err
}

const deleteSession = `-- name: DeleteSession :exec
DELETE FROM sessions WHERE session_id = ?`

func (q *Queries) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := q.db.ExecContext(ctx, deleteSession, sessionID)
	return err
}

const deleteAdminSessions = `-- name: DeleteAdminSessions :exec
DELETE FROM sessions WHERE admin_id = ?`

func (q *Queries) DeleteAdminSessions(ctx context.Context, adminID int64) error {
	_, err := q.db.ExecContext(ctx, deleteAdminSessions, adminID)
	return err
}

const deleteExpiredSessions = `-- name: DeleteExpiredSessions :execrows
DELETE FROM sessions WHERE expires_at <= ?`

func (q *Queries) DeleteExpiredSessions(ctx context.Context, now string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteExpiredSessions, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
