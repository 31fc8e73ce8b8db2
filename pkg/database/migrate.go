package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS subjects (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE TABLE IF NOT EXISTS attendance_records (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	subject_id        INTEGER NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
	date              DATE NOT NULL,
	total_lectures    INTEGER NOT NULL CHECK (total_lectures >= 0),
	attended_lectures INTEGER NOT NULL CHECK (attended_lectures >= 0),
	absent_lectures   INTEGER NOT NULL,
	UNIQUE (subject_id, date)
)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_records_date ON attendance_records(date)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS subjects (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE TABLE IF NOT EXISTS attendance_records (
	id                BIGSERIAL PRIMARY KEY,
	subject_id        BIGINT NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
	date              DATE NOT NULL,
	total_lectures    INTEGER NOT NULL CHECK (total_lectures >= 0),
	attended_lectures INTEGER NOT NULL CHECK (attended_lectures >= 0),
	absent_lectures   INTEGER NOT NULL,
	UNIQUE (subject_id, date)
)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_records_date ON attendance_records(date)`,
}

// Migrate creates the tables when they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	statements := sqliteSchema
	if db.DriverName() == DriverPostgres {
		statements = postgresSchema
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
