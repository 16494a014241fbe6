package gen

import (
	"context"
	"database/sql"
)

const adminColumns = `admin_id, name, email, phone, organization, username, password_hash,
    security_question, security_answer_hash, mfa_secret, mfa_enabled, created_at, updated_at`

func scanAdmin(row interface{ Scan(...any) error }) (Admin, error) {
	var i Admin
	err := row.Scan(
		&i.AdminID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.Organization,
		&i.Username,
		&i.PasswordHash,
		&i.SecurityQuestion,
		&i.SecurityAnswerHash,
		&i.MfaSecret,
		&i.MfaEnabled,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createAdmin = `-- name: CreateAdmin :one
INSERT INTO admins (
    name, email, phone, organization, username, password_hash,
    security_question, security_answer_hash, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING admin_id`

type CreateAdminParams struct {
	Name               string
	Email              string
	Phone              sql.NullString
	Organization       sql.NullString
	Username           string
	PasswordHash       string
	SecurityQuestion   string
	SecurityAnswerHash string
	CreatedAt          string
}

func (q *Queries) CreateAdmin(ctx context.Context, arg CreateAdminParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createAdmin,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.Organization,
		arg.Username,
		arg.PasswordHash,
		arg.SecurityQuestion,
		arg.SecurityAnswerHash,
		arg.CreatedAt,
		arg.CreatedAt,
	)
	var adminID int64
	err := row.Scan(&adminID)
	return adminID, err
}

const getAdminByID = `-- name: GetAdminByID :one
SELECT ` + adminColumns + ` FROM admins WHERE admin_id = ?`

func (q *Queries) GetAdminByID(ctx context.Context, adminID int64) (Admin, error) {
	return scanAdmin(q.db.QueryRowContext(ctx, getAdminByID, adminID))
}

const getAdminByUsername = `-- name: GetAdminByUsername :one
SELECT ` + adminColumns + ` FROM admins WHERE username = ?`

func (q *Queries) GetAdminByUsername(ctx context.Context, username string) (Admin, error) {
	return scanAdmin(q.db.QueryRowContext(ctx, getAdminByUsername, username))
}

const getAdminByEmail = `-- name: GetAdminByEmail :one
SELECT ` + adminColumns + ` FROM admins WHERE email = ?`

func (q *Queries) GetAdminByEmail(ctx context.Context, email string) (Admin, error) {
	return scanAdmin(q.db.QueryRowContext(ctx, getAdminByEmail, email))
}

const updateAdminProfile = `-- name: UpdateAdminProfile :execrows
UPDATE admins
SET name = ?, email = ?, phone = ?, organization = ?, username = ?, updated_at = ?
WHERE admin_id = ?`

type UpdateAdminProfileParams struct {
	Name         string
	Email        string
	Phone        sql.NullString
	Organization sql.NullString
	Username     string
	UpdatedAt    string
	AdminID      int64
}

func (q *Queries) UpdateAdminProfile(ctx context.Context, arg UpdateAdminProfileParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateAdminProfile,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.Organization,
		arg.Username,
		arg.UpdatedAt,
		arg.AdminID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const updateAdminPasswordHash = `-- name: UpdateAdminPasswordHash :execrows
UPDATE admins SET password_hash = ?, updated_at = ? WHERE admin_id = ?`

func (q *Queries) UpdateAdminPasswordHash(ctx context.Context, passwordHash, updatedAt string, adminID int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateAdminPasswordHash, passwordHash, updatedAt, adminID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const countAdmins = `-- name: CountAdmins :one
SELECT COUNT(*) FROM admins`

func (q *Queries) CountAdmins(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countAdmins)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updateAdminMFASecret = `-- name: UpdateAdminMFASecret :execrows
UPDATE admins SET mfa_secret = ?, updated_at = ? WHERE admin_id = ?`

func (q *Queries) UpdateAdminMFASecret(ctx context.Context, secret sql.NullString, updatedAt string, adminID int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateAdminMFASecret, secret, updatedAt, adminID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const enableAdminMFA = `-- name: EnableAdminMFA :execrows
UPDATE admins SET mfa_enabled = ?, updated_at = ? WHERE admin_id = ?`

func (q *Queries) EnableAdminMFA(ctx context.Context, enabledAt string, adminID int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, enableAdminMFA, enabledAt, enabledAt, adminID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const disableAdminMFA = `-- name: DisableAdminMFA :execrows
UPDATE admins SET mfa_enabled = NULL, mfa_secret = NULL, updated_at = ? WHERE admin_id = ?`

func (q *Queries) DisableAdminMFA(ctx context.Context, updatedAt string, adminID int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, disableAdminMFA, updatedAt, adminID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
