package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/attendance-tracker-api/internal/dto"
	"github.com/noah-isme/attendance-tracker-api/internal/models"
	appErrors "github.com/noah-isme/attendance-tracker-api/pkg/errors"
)

type attendanceRepository interface {
	Upsert(ctx context.Context, record *models.AttendanceRecord) (bool, error)
	List(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceRecordView, error)
}

type subjectReader interface {
	FindByID(ctx context.Context, id int64) (*models.Subject, error)
}

// AttendanceService records daily lecture tallies.
type AttendanceService struct {
	repo     attendanceRepository
	subjects subjectReader
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewAttendanceService constructs the service.
func NewAttendanceService(repo attendanceRepository, subjects subjectReader, metrics *MetricsService, logger *zap.Logger) *AttendanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{repo: repo, subjects: subjects, metrics: metrics, logger: logger}
}

// Upsert creates or overwrites the record for (subject, date). Checks run in a fixed
// order: the subject must exist, attended may not exceed total, and neither count
// may be negative.
func (s *AttendanceService) Upsert(ctx context.Context, input dto.AttendanceInput) (*models.AttendanceRecordView, error) {
	subject, err := s.subjects.FindByID(ctx, input.SubjectID)
	if err != nil {
		return nil, subjectLookupError(err)
	}

	if err := validateCounts(input.TotalLectures, input.AttendedLectures); err != nil {
		return nil, err
	}

	record := &models.AttendanceRecord{
		SubjectID:        subject.ID,
		Date:             input.Date,
		TotalLectures:    input.TotalLectures,
		AttendedLectures: input.AttendedLectures,
		AbsentLectures:   input.TotalLectures - input.AttendedLectures,
	}

	start := time.Now()
	created, err := s.repo.Upsert(ctx, record)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save attendance")
	}
	s.metrics.ObserveDBQuery("attendance_upsert", time.Since(start))
	s.metrics.RecordAttendanceUpsert(created)

	s.logger.Debug("attendance saved",
		zap.Int64("subject_id", record.SubjectID),
		zap.String("date", record.Date.String()),
		zap.Bool("created", created),
	)

	return &models.AttendanceRecordView{AttendanceRecord: *record, SubjectName: subject.Name}, nil
}

// List returns records matching the filter, each carrying its subject name.
func (s *AttendanceService) List(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceRecordView, error) {
	start := time.Now()
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list attendance")
	}
	s.metrics.ObserveDBQuery("attendance_list", time.Since(start))
	return records, nil
}

func validateCounts(total, attended int) error {
	if attended > total {
		return appErrors.Clone(appErrors.ErrValidation, "Attended lectures cannot exceed total lectures")
	}
	if total < 0 || attended < 0 {
		return appErrors.Clone(appErrors.ErrValidation, "Lecture counts cannot be negative")
	}
	return nil
}
