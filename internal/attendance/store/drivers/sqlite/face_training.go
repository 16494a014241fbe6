package sqlite

import (
	"context"
	"time"

	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
	"github.com/robera20/employee-attendance-management/internal/attendance/store/drivers/sqlite/gen"
)

type faceTrainingRepo struct {
	q *gen.Queries
}

func (r *faceTrainingRepo) UpsertFaceTraining(ctx context.Context, f domain.FaceTraining) error {
	now := f.UpdatedAt
	if now.IsZero() {
		now = time.Now()
	}

	return r.q.UpsertFaceTraining(ctx, gen.UpsertFaceTrainingParams{
		EmployeeID:   f.EmployeeID,
		FaceData:     f.FaceData,
		QualityScore: f.QualityScore,
		Now:          formatTime(now),
	})
}

func (r *faceTrainingRepo) GetFaceTraining(ctx context.Context, employeeID int64) (domain.FaceTraining, error) {
	row, err := r.q.GetFaceTraining(ctx, employeeID)
	if err != nil {
		return domain.FaceTraining{}, mapNotFound(err)
	}
	return domain.FaceTraining{
		ID:           row.ID,
		EmployeeID:   row.EmployeeID,
		FaceData:     row.FaceData,
		QualityScore: row.QualityScore,
		CreatedAt:    parseTime(row.CreatedAt),
		UpdatedAt:    parseTime(row.UpdatedAt),
	}, nil
}

func (r *faceTrainingRepo) DeleteFaceTraining(ctx context.Context, employeeID int64) error {
	return r.q.DeleteFaceTraining(ctx, employeeID)
}

func (r *faceTrainingRepo) ListFaceRecords(ctx context.Context, adminID int64) ([]domain.FaceRecord, error) {
	rows, err := r.q.ListFaceRecords(ctx, adminID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.FaceRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.FaceRecord{
			EmployeeID:   row.EmployeeID,
			Name:         row.Name,
			Email:        row.Email,
			FaceData:     row.FaceData,
			QualityScore: row.QualityScore,
			CreatedAt:    parseTime(row.CreatedAt),
		})
	}
	return out, nil
}
