package gen

import (
	"context"
)

const upsertFaceTraining = `-- name: UpsertFaceTraining :exec
INSERT INTO face_training (employee_id, face_data, quality_score, created_at, updated_at)
VALUES (?1, ?2, ?3, ?4, ?4)
ON CONFLICT (employee_id) DO UPDATE SET
    face_data = excluded.face_data,
    quality_score = excluded.quality_score,
    updated_at = excluded.updated_at`

type UpsertFaceTrainingParams struct {
	EmployeeID   int64
	FaceData     string
	QualityScore float64
	Now          string
}

func (q *Queries) UpsertFaceTraining(ctx context.Context, arg UpsertFaceTrainingParams) error {
	_, err := q.db.ExecContext(ctx, upsertFaceTraining,
		arg.EmployeeID,
		arg.FaceData,
		arg.QualityScore,
		arg.Now,
	)
	return err
}

const getFaceTraining = `-- name: GetFaceTraining :one
SELECT id, employee_id, face_data, quality_score, created_at, updated_at
FROM face_training
WHERE employee_id = ?`

func (q *Queries) GetFaceTraining(ctx context.Context, employeeID int64) (FaceTraining, error) {
	row := q.db.QueryRowContext(ctx, getFaceTraining, employeeID)
	var i FaceTraining
	err := row.Scan(
		&i.ID,
		&i.EmployeeID,
		&i.FaceData,
		&i.QualityScore,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteFaceTraining = `-- name: DeleteFaceTraining :exec
DELETE FROM face_training WHERE employee_id = ?`

func (q *Queries) DeleteFaceTraining(ctx context.Context, employeeID int64) error {
	_, err := q.db.ExecContext(ctx, deleteFaceTraining, employeeID)
	return err
}

const listFaceRecords = `-- name: ListFaceRecords :many
SELECT ft.employee_id, e.name, e.email, ft.face_data, ft.quality_score, ft.created_at
FROM face_training ft
JOIN employees e ON e.employee_id = ft.employee_id
WHERE e.admin_id = ?
ORDER BY ft.created_at DESC, ft.id DESC`

type ListFaceRecordsRow struct {
	EmployeeID   int64
	Name         string
	Email        string
	FaceData     string
	QualityScore float64
	CreatedAt    string
}

func (q *Queries) ListFaceRecords(ctx context.Context, adminID int64) ([]ListFaceRecordsRow, error) {
	rows, err := q.db.QueryContext(ctx, listFaceRecords, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListFaceRecordsRow{}
	for rows.Next() {
		var i ListFaceRecordsRow
		if err := rows.Scan(
			&i.EmployeeID,
			&i.Name,
			&i.Email,
			&i.FaceData,
			&i.QualityScore,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
