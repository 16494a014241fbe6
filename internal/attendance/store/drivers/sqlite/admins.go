package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
	"github.com/robera20/employee-attendance-management/internal/attendance/store/drivers/sqlite/gen"
)

type adminsRepo struct {
	q *gen.Queries
}

func (r *adminsRepo) CreateAdmin(ctx context.Context, a domain.Admin) (int64, error) {
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	id, err := r.q.CreateAdmin(ctx, gen.CreateAdminParams{
		Name:               a.Name,
		Email:              a.Email,
		Phone:              mapStringNull(a.Phone),
		Organization:       mapStringNull(a.Organization),
		Username:           a.Username,
		PasswordHash:       a.PasswordHash,
		SecurityQuestion:   a.SecurityQuestion,
		SecurityAnswerHash: a.SecurityAnswerHash,
		CreatedAt:          formatTime(createdAt),
	})
	if err != nil {
		return 0, mapConstraint(err)
	}
	return id, nil
}

func (r *adminsRepo) GetAdminByID(ctx context.Context, id int64) (domain.Admin, error) {
	row, err := r.q.GetAdminByID(ctx, id)
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}
	return mapAdmin(row), nil
}

func (r *adminsRepo) GetAdminByUsername(ctx context.Context, username string) (domain.Admin, error) {
	row, err := r.q.GetAdminByUsername(ctx, username)
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}
	return mapAdmin(row), nil
}

func (r *adminsRepo) GetAdminByEmail(ctx context.Context, email string) (domain.Admin, error) {
	row, err := r.q.GetAdminByEmail(ctx, email)
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}
	return mapAdmin(row), nil
}

func (r *adminsRepo) UpdateProfile(ctx context.Context, a domain.Admin) error {
	n, err := r.q.UpdateAdminProfile(ctx, gen.UpdateAdminProfileParams{
		Name:         a.Name,
		Email:        a.Email,
		Phone:        mapStringNull(a.Phone),
		Organization: mapStringNull(a.Organization),
		Username:     a.Username,
		UpdatedAt:    formatTime(time.Now()),
		AdminID:      a.ID,
	})
	if err != nil {
		return mapConstraint(err)
	}
	return mapAffected(n, nil)
}

func (r *adminsRepo) UpdatePasswordHash(ctx context.Context, adminID int64, newHash string) error {
	return mapAffected(r.q.UpdateAdminPasswordHash(ctx, newHash, formatTime(time.Now()), adminID))
}

func (r *adminsRepo) IsEmpty(ctx context.Context) (bool, error) {
	count, err := r.q.CountAdmins(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (r *adminsRepo) UpdateMFASecret(ctx context.Context, adminID int64, secret string) error {
	return mapAffected(r.q.UpdateAdminMFASecret(ctx,
		sql.NullString{String: secret, Valid: secret != ""},
		formatTime(time.Now()),
		adminID,
	))
}

func (r *adminsRepo) EnableMFA(ctx context.Context, adminID int64) error {
	return mapAffected(r.q.EnableAdminMFA(ctx, formatTime(time.Now()), adminID))
}

func (r *adminsRepo) DisableMFA(ctx context.Context, adminID int64) error {
	return mapAffected(r.q.DisableAdminMFA(ctx, formatTime(time.Now()), adminID))
}
