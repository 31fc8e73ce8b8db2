package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/attendance-tracker-api/internal/dto"
	"github.com/noah-isme/attendance-tracker-api/internal/models"
	"github.com/noah-isme/attendance-tracker-api/pkg/response"
)

type attendanceService interface {
	Upsert(ctx context.Context, input dto.AttendanceInput) (*models.AttendanceRecordView, error)
	List(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceRecordView, error)
}

type attendanceExporter interface {
	Attendance(ctx context.Context, filter models.AttendanceFilter, format dto.ExportFormat) (*dto.ExportFile, error)
}

// AttendanceHandler exposes attendance recording, listing and export.
type AttendanceHandler struct {
	service  attendanceService
	exporter attendanceExporter
}

// NewAttendanceHandler constructs the handler.
func NewAttendanceHandler(svc attendanceService, exporter attendanceExporter) *AttendanceHandler {
	return &AttendanceHandler{service: svc, exporter: exporter}
}

// Upsert godoc
// @Summary Create or overwrite the attendance record for a subject and day
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body dto.UpsertAttendanceRequest true "Attendance payload"
// @Success 200 {object} models.AttendanceRecordView
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody
// @Router /attendance [post]
func (h *AttendanceHandler) Upsert(c *gin.Context) {
	var req dto.UpsertAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, malformedBody(err))
		return
	}
	record, err := h.service.Upsert(c.Request.Context(), req.Input())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record)
}

// List godoc
// @Summary List attendance records
// @Tags Attendance
// @Produce json
// @Param subject_id query int false "Subject ID"
// @Param start_date query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {array} models.AttendanceRecordView
// @Failure 422 {object} response.ErrorBody
// @Router /attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	filter, err := attendanceFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	records, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records)
}

// Export godoc
// @Summary Download attendance records
// @Tags Attendance
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Param subject_id query int false "Subject ID"
// @Param start_date query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 422 {object} response.ErrorBody
// @Router /attendance/export [get]
func (h *AttendanceHandler) Export(c *gin.Context) {
	filter, err := attendanceFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	format := dto.ExportFormat(strings.ToLower(c.DefaultQuery("format", string(dto.ExportFormatCSV))))
	file, err := h.exporter.Attendance(c.Request.Context(), filter, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Payload)
}
