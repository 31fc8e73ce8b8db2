package models

// AttendanceRecord is one subject's lecture tally for one calendar date.
// AbsentLectures is always TotalLectures - AttendedLectures.
type AttendanceRecord struct {
	ID               int64 `db:"id" json:"id"`
	SubjectID        int64 `db:"subject_id" json:"subject_id"`
	Date             Date  `db:"date" json:"date"`
	TotalLectures    int   `db:"total_lectures" json:"total_lectures"`
	AttendedLectures int   `db:"attended_lectures" json:"attended_lectures"`
	AbsentLectures   int   `db:"absent_lectures" json:"absent_lectures"`
}

// AttendanceRecordView is a record joined with its subject's name.
type AttendanceRecordView struct {
	AttendanceRecord
	SubjectName string `db:"subject_name" json:"subject_name"`
}

// AttendanceFilter narrows attendance listings. Zero values mean "no filter";
// the date bounds are inclusive.
type AttendanceFilter struct {
	SubjectID int64
	StartDate *Date
	EndDate   *Date
}
