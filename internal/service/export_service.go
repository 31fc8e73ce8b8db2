package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/attendance-tracker-api/internal/dto"
	"github.com/noah-isme/attendance-tracker-api/internal/models"
	appErrors "github.com/noah-isme/attendance-tracker-api/pkg/errors"
	"github.com/noah-isme/attendance-tracker-api/pkg/export"
)

type attendanceLister interface {
	List(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceRecordView, error)
}

var attendanceColumns = []export.Column{
	{Key: "date", Header: "Date"},
	{Key: "subject", Header: "Subject"},
	{Key: "total", Header: "Total", Numeric: true},
	{Key: "attended", Header: "Attended", Numeric: true},
	{Key: "absent", Header: "Absent", Numeric: true},
	{Key: "percentage", Header: "Attendance %", Numeric: true},
}

// ExportService renders filtered attendance listings as downloadable files.
type ExportService struct {
	attendance attendanceLister
	csv        *export.CSVExporter
	pdf        *export.PDFExporter
	logger     *zap.Logger
}

// NewExportService constructs an export service.
func NewExportService(attendance attendanceLister, csvExporter *export.CSVExporter, pdfExporter *export.PDFExporter, logger *zap.Logger) *ExportService {
	if csvExporter == nil {
		csvExporter = export.NewCSVExporter()
	}
	if pdfExporter == nil {
		pdfExporter = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{attendance: attendance, csv: csvExporter, pdf: pdfExporter, logger: logger}
}

// Attendance renders the records matching filter in the requested format.
func (s *ExportService) Attendance(ctx context.Context, filter models.AttendanceFilter, format dto.ExportFormat) (*dto.ExportFile, error) {
	if !format.Valid() {
		return nil, appErrors.Clone(appErrors.ErrUnprocessable, fmt.Sprintf("unsupported export format %q", format))
	}

	records, err := s.attendance.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load attendance for export")
	}

	dataset := attendanceDataset(records, filter)

	var (
		payload     []byte
		contentType string
	)
	switch format {
	case dto.ExportFormatPDF:
		payload, err = s.pdf.Render(dataset)
		contentType = "application/pdf"
	default:
		payload, err = s.csv.Render(dataset)
		contentType = "text/csv; charset=utf-8"
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	s.logger.Debug("attendance exported", zap.String("format", string(format)), zap.Int("rows", len(records)))
	return &dto.ExportFile{
		Filename:    "attendance." + string(format),
		ContentType: contentType,
		Payload:     payload,
	}, nil
}

func attendanceDataset(records []models.AttendanceRecordView, filter models.AttendanceFilter) export.Dataset {
	rows := make([]map[string]string, 0, len(records))
	var total, attended, absent int
	for _, rec := range records {
		rows = append(rows, map[string]string{
			"date":       rec.Date.String(),
			"subject":    rec.SubjectName,
			"total":      strconv.Itoa(rec.TotalLectures),
			"attended":   strconv.Itoa(rec.AttendedLectures),
			"absent":     strconv.Itoa(rec.AbsentLectures),
			"percentage": formatPercentage(Percentage(rec.AttendedLectures, rec.TotalLectures)),
		})
		total += rec.TotalLectures
		attended += rec.AttendedLectures
		absent += rec.AbsentLectures
	}

	return export.Dataset{
		Title:   exportTitle(filter),
		Columns: attendanceColumns,
		Rows:    rows,
		Footer: map[string]string{
			"subject":    "Total",
			"total":      strconv.Itoa(total),
			"attended":   strconv.Itoa(attended),
			"absent":     strconv.Itoa(absent),
			"percentage": formatPercentage(Percentage(attended, total)),
		},
	}
}

func exportTitle(filter models.AttendanceFilter) string {
	parts := []string{"Attendance Report"}
	switch {
	case filter.StartDate != nil && filter.EndDate != nil:
		parts = append(parts, filter.StartDate.String()+" to "+filter.EndDate.String())
	case filter.StartDate != nil:
		parts = append(parts, "from "+filter.StartDate.String())
	case filter.EndDate != nil:
		parts = append(parts, "until "+filter.EndDate.String())
	}
	return strings.Join(parts, " - ")
}

func formatPercentage(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
