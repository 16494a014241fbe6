package sqlite

import (
	"context"
	"time"

	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
	"github.com/robera20/employee-attendance-management/internal/attendance/store/drivers/sqlite/gen"
)

type sessionsRepo struct {
	q *gen.Queries
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	err := r.q.CreateSession(ctx, gen.CreateSessionParams{
		SessionID: s.ID,
		AdminID:   s.AdminID,
		ExpiresAt: formatTime(s.ExpiresAt),
		CreatedAt: formatTime(createdAt),
	})
	return mapConstraint(err)
}

func (r *sessionsRepo) GetActiveSession(ctx context.Context, id string, now time.Time) (domain.Session, error) {
	row, err := r.q.GetActiveSession(ctx, id, formatTime(now))
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return domain.Session{
		ID:        row.SessionID,
		AdminID:   row.AdminID,
		ExpiresAt: parseTime(row.ExpiresAt),
		CreatedAt: parseTime(row.CreatedAt),
	}, nil
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, id string) error {
	return r.q.DeleteSession(ctx, id)
}

func (r *sessionsRepo) DeleteAdminSessions(ctx context.Context, adminID int64) error {
	return r.q.DeleteAdminSessions(ctx, adminID)
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredSessions(ctx, formatTime(now))
}
