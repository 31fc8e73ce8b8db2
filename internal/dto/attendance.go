package dto

import "github.com/noah-isme/attendance-tracker-api/internal/models"

// UpsertAttendanceRequest is the body of POST /attendance.
type UpsertAttendanceRequest struct {
	SubjectID        *int64       `json:"subject_id" binding:"required"`
	Date             *models.Date `json:"date" binding:"required"`
	TotalLectures    *int         `json:"total_lectures" binding:"required"`
	AttendedLectures *int         `json:"attended_lectures" binding:"required"`
}

// Input converts a bound request into the service command.
func (r UpsertAttendanceRequest) Input() AttendanceInput {
	return AttendanceInput{
		SubjectID:        *r.SubjectID,
		Date:             *r.Date,
		TotalLectures:    *r.TotalLectures,
		AttendedLectures: *r.AttendedLectures,
	}
}

// AttendanceInput carries the values for one create-or-update.
type AttendanceInput struct {
	SubjectID        int64
	Date             models.Date
	TotalLectures    int
	AttendedLectures int
}

// ExportFormat selects the attendance export renderer.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// Valid reports whether the format is supported.
func (f ExportFormat) Valid() bool {
	return f == ExportFormatCSV || f == ExportFormatPDF
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}
