package service

import (
	"context"
	"database/sql"
	"sort"

	"github.com/noah-isme/attendance-tracker-api/internal/models"
)

// memoryStore is an in-memory stand-in for the subject and attendance repositories.
type memoryStore struct {
	subjects  map[int64]models.Subject
	records   map[int64]models.AttendanceRecord
	nextID    int64
	upserts   int
	createErr error
	upsertErr error
	listErr   error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{subjects: map[int64]models.Subject{}, records: map[int64]models.AttendanceRecord{}}
}

func (m *memoryStore) List(ctx context.Context) ([]models.Subject, error) {
	out := make([]models.Subject, 0, len(m.subjects))
	for _, s := range m.subjects {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryStore) FindByID(ctx context.Context, id int64) (*models.Subject, error) {
	s, ok := m.subjects[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &s, nil
}

func (m *memoryStore) Create(ctx context.Context, subject *models.Subject) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	subject.ID = m.nextID
	m.subjects[subject.ID] = *subject
	return nil
}

func (m *memoryStore) Delete(ctx context.Context, id int64) (int64, error) {
	if _, ok := m.subjects[id]; !ok {
		return 0, sql.ErrNoRows
	}
	var removed int64
	for rid, rec := range m.records {
		if rec.SubjectID == id {
			delete(m.records, rid)
			removed++
		}
	}
	delete(m.subjects, id)
	return removed, nil
}

func (m *memoryStore) Upsert(ctx context.Context, record *models.AttendanceRecord) (bool, error) {
	m.upserts++
	if m.upsertErr != nil {
		return false, m.upsertErr
	}
	for id, rec := range m.records {
		if rec.SubjectID == record.SubjectID && rec.Date.Equal(record.Date.Time) {
			record.ID = id
			m.records[id] = *record
			return false, nil
		}
	}
	m.nextID++
	record.ID = m.nextID
	m.records[record.ID] = *record
	return true, nil
}

func (m *memoryStore) ListAttendance(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceRecordView, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]models.AttendanceRecordView, 0)
	for _, rec := range m.records {
		if filter.SubjectID > 0 && rec.SubjectID != filter.SubjectID {
			continue
		}
		if filter.StartDate != nil && rec.Date.Before(filter.StartDate.Time) {
			continue
		}
		if filter.EndDate != nil && rec.Date.After(filter.EndDate.Time) {
			continue
		}
		out = append(out, models.AttendanceRecordView{AttendanceRecord: rec, SubjectName: m.subjects[rec.SubjectID].Name})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date.Time) {
			return out[i].Date.Before(out[j].Date.Time)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memoryStore) recordsFor(subjectID int64) []models.AttendanceRecord {
	var out []models.AttendanceRecord
	for _, rec := range m.records {
		if rec.SubjectID == subjectID {
			out = append(out, rec)
		}
	}
	return out
}

// attendanceView adapts memoryStore to the attendance repository interface, whose
// List signature differs from the subject repository's.
type attendanceView struct{ *memoryStore }

func (a attendanceView) List(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceRecordView, error) {
	return a.ListAttendance(ctx, filter)
}
