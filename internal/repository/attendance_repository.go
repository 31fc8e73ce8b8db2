package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/attendance-tracker-api/internal/models"
)

// AttendanceRepository handles persistence for attendance records.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs the repository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Upsert writes the record keyed by (subject_id, date). An existing row keeps its id
// and has its counts overwritten. The returned flag is true when a new row was inserted.
func (r *AttendanceRepository) Upsert(ctx context.Context, record *models.AttendanceRecord) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin upsert attendance: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var existingID int64
	err = tx.GetContext(ctx, &existingID, tx.Rebind(`SELECT id FROM attendance_records WHERE subject_id = ? AND date = ?`), record.SubjectID, record.Date)
	created := errors.Is(err, sql.ErrNoRows)
	if err != nil && !created {
		return false, fmt.Errorf("find attendance: %w", err)
	}

	query := tx.Rebind(`INSERT INTO attendance_records (subject_id, date, total_lectures, attended_lectures, absent_lectures)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (subject_id, date) DO UPDATE SET
	total_lectures = excluded.total_lectures,
	attended_lectures = excluded.attended_lectures,
	absent_lectures = excluded.absent_lectures
RETURNING id`)
	if err := tx.QueryRowxContext(ctx, query,
		record.SubjectID,
		record.Date,
		record.TotalLectures,
		record.AttendedLectures,
		record.AbsentLectures,
	).Scan(&record.ID); err != nil {
		return false, fmt.Errorf("upsert attendance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit upsert attendance: %w", err)
	}
	committed = true
	return created, nil
}

// List returns records joined with their subject name, ordered by date then id.
func (r *AttendanceRepository) List(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceRecordView, error) {
	var query strings.Builder
	query.WriteString(`SELECT
	a.id,
	a.subject_id,
	a.date,
	a.total_lectures,
	a.attended_lectures,
	a.absent_lectures,
	s.name AS subject_name
FROM attendance_records a
JOIN subjects s ON s.id = a.subject_id
WHERE 1=1`)

	var args []interface{}
	if filter.SubjectID > 0 {
		query.WriteString(" AND a.subject_id = ?")
		args = append(args, filter.SubjectID)
	}
	if filter.StartDate != nil {
		query.WriteString(" AND a.date >= ?")
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		query.WriteString(" AND a.date <= ?")
		args = append(args, *filter.EndDate)
	}
	query.WriteString(" ORDER BY a.date ASC, a.id ASC")

	records := make([]models.AttendanceRecordView, 0)
	if err := r.db.SelectContext(ctx, &records, r.db.Rebind(query.String()), args...); err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return records, nil
}
