package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/attendance-tracker-api/internal/models"
)

// SubjectRepository handles persistence for subjects.
type SubjectRepository struct {
	db *sqlx.DB
}

// NewSubjectRepository creates a new repository instance.
func NewSubjectRepository(db *sqlx.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// List returns every subject ordered by id.
func (r *SubjectRepository) List(ctx context.Context) ([]models.Subject, error) {
	const query = `SELECT id, name, created_at FROM subjects ORDER BY id ASC`
	subjects := make([]models.Subject, 0)
	if err := r.db.SelectContext(ctx, &subjects, query); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

// FindByID returns a subject by id or sql.ErrNoRows.
func (r *SubjectRepository) FindByID(ctx context.Context, id int64) (*models.Subject, error) {
	query := r.db.Rebind(`SELECT id, name, created_at FROM subjects WHERE id = ?`)
	var subject models.Subject
	if err := r.db.GetContext(ctx, &subject, query, id); err != nil {
		return nil, err
	}
	return &subject, nil
}

// Create persists a new subject and fills in its generated id.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	if subject.CreatedAt.IsZero() {
		subject.CreatedAt = time.Now().UTC()
	}

	query := r.db.Rebind(`INSERT INTO subjects (name, created_at) VALUES (?, ?) RETURNING id`)
	if err := r.db.QueryRowxContext(ctx, query, subject.Name, subject.CreatedAt).Scan(&subject.ID); err != nil {
		return fmt.Errorf("create subject: %w", err)
	}
	return nil
}

// Delete removes the subject's attendance records and then the subject in one
// transaction, reporting how many records went with it. It returns sql.ErrNoRows
// when the subject does not exist.
func (r *SubjectRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin delete subject: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM attendance_records WHERE subject_id = ?`), id)
	if err != nil {
		return 0, fmt.Errorf("delete subject attendance: %w", err)
	}
	removedRecords, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete subject attendance: %w", err)
	}

	res, err = tx.ExecContext(ctx, tx.Rebind(`DELETE FROM subjects WHERE id = ?`), id)
	if err != nil {
		return 0, fmt.Errorf("delete subject: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete subject: %w", err)
	}
	if affected == 0 {
		return 0, sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit delete subject: %w", err)
	}
	committed = true
	return removedRecords, nil
}
