package handler

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

type attendanceServiceMock struct {
	upsertResp   *models.AttendanceRecordView
	upsertErr    error
	lastInput    dto.AttendanceInput
	upsertCalled bool
	listResp     []models.AttendanceRecordView
	lastFilter   models.AttendanceFilter
	listCalled   bool
}

func (m *attendanceServiceMock) Upsert(ctx context.Context, input dto.AttendanceInput) (*models.AttendanceRecordView, error) {
	m.upsertCalled = true
	m.lastInput = input
	return m.upsertResp, m.upsertErr
}

func (m *attendanceServiceMock) List(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceRecordView, error) {
	m.listCalled = true
	m.lastFilter = filter
	return m.listResp, nil
}

type exporterMock struct {
	file       *dto.ExportFile
	err        error
	lastFormat dto.ExportFormat
}

func (m *exporterMock) Attendance(ctx context.Context, filter models.AttendanceFilter, format dto.ExportFormat) (*dto.ExportFile, error) {
	m.lastFormat = format
	return m.file, m.err
}

func TestAttendanceHandlerUpsert(t *testing.T) {
	mockSvc := &attendanceServiceMock{upsertResp: &models.AttendanceRecordView{
		AttendanceRecord: models.AttendanceRecord{ID: 1, SubjectID: 2, Date: models.NewDate(2024, 1, 15), TotalLectures: 4, AttendedLectures: 3, AbsentLectures: 1},
		SubjectName:      "Math",
	}}

	c, w := newTestContext(http.MethodPost, "/attendance", []byte(`{"subject_id":2,"date":"2024-01-15","total_lectures":4,"attended_lectures":3}`))
	NewAttendanceHandler(mockSvc, nil).Upsert(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(2), mockSvc.lastInput.SubjectID)
	assert.Equal(t, "2024-01-15", mockSvc.lastInput.Date.String())
	assert.JSONEq(t, `{"id":1,"subject_id":2,"date":"2024-01-15","total_lectures":4,"attended_lectures":3,"absent_lectures":1,"subject_name":"Math"}`, w.Body.String())
}

func TestAttendanceHandlerUpsertMalformed(t *testing.T) {
	bodies := []string{
		`{"subject_id":2,"date":"2024-01-15","total_lectures":4}`,
		`{"subject_id":2,"date":"15/01/2024","total_lectures":4,"attended_lectures":3}`,
		`{"subject_id":"two","date":"2024-01-15","total_lectures":4,"attended_lectures":3}`,
		`not json`,
	}
	for _, body := range bodies {
		mockSvc := &attendanceServiceMock{}
		c, w := newTestContext(http.MethodPost, "/attendance", []byte(body))
		NewAttendanceHandler(mockSvc, nil).Upsert(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, body)
		assert.False(t, mockSvc.upsertCalled, body)
	}
}

func TestAttendanceHandlerUpsertZeroCountsAccepted(t *testing.T) {
	mockSvc := &attendanceServiceMock{upsertResp: &models.AttendanceRecordView{}}

	c, w := newTestContext(http.MethodPost, "/attendance", []byte(`{"subject_id":1,"date":"2024-01-15","total_lectures":0,"attended_lectures":0}`))
	NewAttendanceHandler(mockSvc, nil).Upsert(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.upsertCalled)
}

func TestAttendanceHandlerUpsertServiceError(t *testing.T) {
	mockSvc := &attendanceServiceMock{upsertErr: appErrors.Clone(appErrors.ErrValidation, "Attended lectures cannot exceed total lectures")}

	c, w := newTestContext(http.MethodPost, "/attendance", []byte(`{"subject_id":1,"date":"2024-01-15","total_lectures":3,"attended_lectures":4}`))
	NewAttendanceHandler(mockSvc, nil).Upsert(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Attended lectures cannot exceed total lectures", decodeError(t, w).Detail)
}

func TestAttendanceHandlerListFilters(t *testing.T) {
	mockSvc := &attendanceServiceMock{listResp: []models.AttendanceRecordView{}}

	c, w := newTestContext(http.MethodGet, "/attendance?subject_id=3&start_date=2024-01-01&end_date=2024-01-31", nil)
	NewAttendanceHandler(mockSvc, nil).List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(3), mockSvc.lastFilter.SubjectID)
	require.NotNil(t, mockSvc.lastFilter.StartDate)
	require.NotNil(t, mockSvc.lastFilter.EndDate)
	assert.Equal(t, "2024-01-01", mockSvc.lastFilter.StartDate.String())
	assert.Equal(t, "2024-01-31", mockSvc.lastFilter.EndDate.String())
}

func TestAttendanceHandlerListMalformedQuery(t *testing.T) {
	for _, target := range []string{"/attendance?subject_id=x", "/attendance?start_date=2024-02-30", "/attendance?end_date=yesterday"} {
		mockSvc := &attendanceServiceMock{}
		c, w := newTestContext(http.MethodGet, target, nil)
		NewAttendanceHandler(mockSvc, nil).List(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, target)
		assert.False(t, mockSvc.listCalled, target)
	}
}

func TestAttendanceHandlerExport(t *testing.T) {
	exporter := &exporterMock{file: &dto.ExportFile{Filename: "attendance.pdf", ContentType: "application/pdf", Payload: []byte("%PDF-1.3")}}

	c, w := newTestContext(http.MethodGet, "/attendance/export?format=PDF", nil)
	NewAttendanceHandler(&attendanceServiceMock{}, exporter).Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.ExportFormatPDF, exporter.lastFormat)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="attendance.pdf"`, w.Header().Get("Content-Disposition"))
}

func TestAttendanceHandlerExportDefaultsToCSV(t *testing.T) {
	exporter := &exporterMock{file: &dto.ExportFile{Filename: "attendance.csv", ContentType: "text/csv; charset=utf-8"}}

	c, w := newTestContext(http.MethodGet, "/attendance/export", nil)
	NewAttendanceHandler(&attendanceServiceMock{}, exporter).Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.ExportFormatCSV, exporter.lastFormat)
}
