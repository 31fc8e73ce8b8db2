package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/attendance-tracker-api/internal/dto"
	"github.com/noah-isme/attendance-tracker-api/internal/models"
	appErrors "github.com/noah-isme/attendance-tracker-api/pkg/errors"
)

func seededAttendance(t *testing.T) (*AttendanceService, *memoryStore, int64) {
	t.Helper()
	store := newMemoryStore()
	subject := &models.Subject{Name: "Math"}
	require.NoError(t, store.Create(context.Background(), subject))
	return NewAttendanceService(attendanceView{store}, store, NewMetricsService(), nil), store, subject.ID
}

func TestAttendanceServiceUpsertComputesAbsent(t *testing.T) {
	svc, _, subjectID := seededAttendance(t)

	view, err := svc.Upsert(context.Background(), dto.AttendanceInput{
		SubjectID: subjectID, Date: models.NewDate(2024, 1, 15), TotalLectures: 4, AttendedLectures: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, view.AbsentLectures)
	assert.Equal(t, "Math", view.SubjectName)
	assert.Equal(t, "2024-01-15", view.Date.String())
	assert.NotZero(t, view.ID)
}

func TestAttendanceServiceUpsertOverwrites(t *testing.T) {
	svc, store, subjectID := seededAttendance(t)
	ctx := context.Background()
	day := models.NewDate(2024, 1, 15)

	first, err := svc.Upsert(ctx, dto.AttendanceInput{SubjectID: subjectID, Date: day, TotalLectures: 4, AttendedLectures: 3})
	require.NoError(t, err)
	second, err := svc.Upsert(ctx, dto.AttendanceInput{SubjectID: subjectID, Date: day, TotalLectures: 5, AttendedLectures: 5})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	records := store.recordsFor(subjectID)
	require.Len(t, records, 1)
	assert.Equal(t, 5, records[0].TotalLectures)
	assert.Equal(t, 0, records[0].AbsentLectures)
}

func TestAttendanceServiceUpsertValidation(t *testing.T) {
	cases := []struct {
		name     string
		total    int
		attended int
		message  string
	}{
		{"attended exceeds total", 3, 4, "Attended lectures cannot exceed total lectures"},
		{"negative total", -1, -2, "Lecture counts cannot be negative"},
		{"negative attended", 2, -1, "Lecture counts cannot be negative"},
		{"negative total checked after exceed", -1, 0, "Attended lectures cannot exceed total lectures"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, store, subjectID := seededAttendance(t)

			_, err := svc.Upsert(context.Background(), dto.AttendanceInput{
				SubjectID: subjectID, Date: models.NewDate(2024, 1, 1), TotalLectures: tc.total, AttendedLectures: tc.attended,
			})
			require.Error(t, err)
			appErr := appErrors.FromError(err)
			assert.Equal(t, http.StatusBadRequest, appErr.Status)
			assert.Equal(t, tc.message, appErr.Message)
			assert.Zero(t, store.upserts)
		})
	}
}

func TestAttendanceServiceUpsertUnknownSubjectCheckedFirst(t *testing.T) {
	svc, store, _ := seededAttendance(t)

	_, err := svc.Upsert(context.Background(), dto.AttendanceInput{
		SubjectID: 42, Date: models.NewDate(2024, 1, 1), TotalLectures: 1, AttendedLectures: 5,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Subject not found", appErr.Message)
	assert.Zero(t, store.upserts)
}

func TestAttendanceServiceUpsertZeroLectures(t *testing.T) {
	svc, _, subjectID := seededAttendance(t)

	view, err := svc.Upsert(context.Background(), dto.AttendanceInput{SubjectID: subjectID, Date: models.NewDate(2024, 1, 1)})
	require.NoError(t, err)
	assert.Equal(t, 0, view.AbsentLectures)
}

func TestAttendanceServiceListFilters(t *testing.T) {
	svc, store, mathID := seededAttendance(t)
	ctx := context.Background()
	art := &models.Subject{Name: "Art"}
	require.NoError(t, store.Create(ctx, art))

	for _, in := range []dto.AttendanceInput{
		{SubjectID: mathID, Date: models.NewDate(2024, 1, 3), TotalLectures: 2, AttendedLectures: 2},
		{SubjectID: art.ID, Date: models.NewDate(2024, 1, 1), TotalLectures: 1, AttendedLectures: 0},
		{SubjectID: mathID, Date: models.NewDate(2024, 1, 10), TotalLectures: 2, AttendedLectures: 1},
	} {
		_, err := svc.Upsert(ctx, in)
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, models.AttendanceFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2024-01-01", all[0].Date.String())
	assert.Equal(t, "Art", all[0].SubjectName)

	start := models.NewDate(2024, 1, 2)
	end := models.NewDate(2024, 1, 5)
	ranged, err := svc.List(ctx, models.AttendanceFilter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, mathID, ranged[0].SubjectID)

	bySubject, err := svc.List(ctx, models.AttendanceFilter{SubjectID: art.ID})
	require.NoError(t, err)
	assert.Len(t, bySubject, 1)
}

func TestAttendanceServiceListError(t *testing.T) {
	svc, store, _ := seededAttendance(t)
	store.listErr = assert.AnError

	_, err := svc.List(context.Background(), models.AttendanceFilter{})
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, appErrors.FromError(err).Status)
}
