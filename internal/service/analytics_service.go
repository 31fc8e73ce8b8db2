package service

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/attendance-tracker-api/internal/models"
	appErrors "github.com/noah-isme/attendance-tracker-api/pkg/errors"
)

// AnalyticsRepository describes the persistence layer required by AnalyticsService.
type AnalyticsRepository interface {
	SubjectTotals(ctx context.Context) ([]models.SubjectTotals, error)
}

// AnalyticsService computes attendance statistics. Results are rebuilt from storage
// on every call.
type AnalyticsService struct {
	repo    AnalyticsRepository
	metrics *MetricsService
	logger  *zap.Logger
}

// NewAnalyticsService constructs an analytics service.
func NewAnalyticsService(repo AnalyticsRepository, metrics *MetricsService, logger *zap.Logger) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{repo: repo, metrics: metrics, logger: logger}
}

// Compute returns per-subject and overall attendance statistics.
func (s *AnalyticsService) Compute(ctx context.Context) (*models.OverallStats, error) {
	start := time.Now()
	totals, err := s.repo.SubjectTotals(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute analytics")
	}
	s.metrics.ObserveDBQuery("analytics_subject_totals", time.Since(start))

	stats := BuildOverallStats(totals)
	return &stats, nil
}

// BuildOverallStats aggregates raw subject totals. The overall percentage is derived
// from the summed counts, not from the rounded per-subject percentages.
func BuildOverallStats(totals []models.SubjectTotals) models.OverallStats {
	stats := models.OverallStats{
		TotalSubjects: len(totals),
		SubjectStats:  make([]models.SubjectStats, 0, len(totals)),
	}
	for _, t := range totals {
		stats.SubjectStats = append(stats.SubjectStats, models.SubjectStats{
			SubjectID:            t.SubjectID,
			SubjectName:          t.SubjectName,
			TotalConducted:       t.TotalConducted,
			TotalAttended:        t.TotalAttended,
			TotalAbsent:          t.TotalAbsent,
			AttendancePercentage: Percentage(t.TotalAttended, t.TotalConducted),
		})
		stats.TotalConducted += t.TotalConducted
		stats.TotalAttended += t.TotalAttended
		stats.TotalAbsent += t.TotalAbsent
	}
	stats.OverallPercentage = Percentage(stats.TotalAttended, stats.TotalConducted)
	return stats
}

// Percentage returns attended/total*100 rounded half away from zero to two decimals,
// or exactly 0 when total is 0.
func Percentage(attended, total int) float64 {
	if total <= 0 {
		return 0
	}
	return roundTo2(float64(attended) / float64(total) * 100)
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
