package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/attendance-tracker-api/internal/models"
)

// AnalyticsRepository reads aggregate attendance figures.
type AnalyticsRepository struct {
	db *sqlx.DB
}

// NewAnalyticsRepository constructs an analytics repository.
func NewAnalyticsRepository(db *sqlx.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// SubjectTotals sums every subject's records in a single statement, so all rows come
// from one consistent read. Subjects without records report zeros.
func (r *AnalyticsRepository) SubjectTotals(ctx context.Context) ([]models.SubjectTotals, error) {
	const query = `SELECT
	s.id AS subject_id,
	s.name AS subject_name,
	COALESCE(SUM(a.total_lectures), 0) AS total_conducted,
	COALESCE(SUM(a.attended_lectures), 0) AS total_attended,
	COALESCE(SUM(a.absent_lectures), 0) AS total_absent
FROM subjects s
LEFT JOIN attendance_records a ON a.subject_id = s.id
GROUP BY s.id, s.name
ORDER BY s.id ASC`

	totals := make([]models.SubjectTotals, 0)
	if err := r.db.SelectContext(ctx, &totals, query); err != nil {
		return nil, fmt.Errorf("subject totals: %w", err)
	}
	return totals, nil
}
