package models

// SubjectTotals holds raw per-subject sums as read from storage.
type SubjectTotals struct {
	SubjectID      int64  `db:"subject_id"`
	SubjectName    string `db:"subject_name"`
	TotalConducted int    `db:"total_conducted"`
	TotalAttended  int    `db:"total_attended"`
	TotalAbsent    int    `db:"total_absent"`
}

// SubjectStats is the per-subject attendance summary.
type SubjectStats struct {
	SubjectID            int64   `json:"subject_id"`
	SubjectName          string  `json:"subject_name"`
	TotalConducted       int     `json:"total_conducted"`
	TotalAttended        int     `json:"total_attended"`
	TotalAbsent          int     `json:"total_absent"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

// OverallStats aggregates every subject.
type OverallStats struct {
	TotalSubjects     int            `json:"total_subjects"`
	TotalConducted    int            `json:"total_conducted"`
	TotalAttended     int            `json:"total_attended"`
	TotalAbsent       int            `json:"total_absent"`
	OverallPercentage float64        `json:"overall_percentage"`
	SubjectStats      []SubjectStats `json:"subject_stats"`
}
