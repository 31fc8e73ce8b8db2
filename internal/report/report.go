// Package report renders attendance analytics for terminals.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/noah-isme/attendance-tracker-api/internal/models"
)

// Band thresholds, in percent.
const (
	GoodThreshold    = 75.0
	WarningThreshold = 60.0
)

// Band classifies an attendance percentage.
type Band string

const (
	BandGood    Band = "good"
	BandWarning Band = "warning"
	BandLow     Band = "low"
)

// Classify returns the band for pct.
func Classify(pct float64) Band {
	switch {
	case pct >= GoodThreshold:
		return BandGood
	case pct >= WarningThreshold:
		return BandWarning
	default:
		return BandLow
	}
}

func (b Band) paint(text string) string {
	switch b {
	case BandGood:
		return color.GreenString(text)
	case BandWarning:
		return color.YellowString(text)
	default:
		return color.RedString(text)
	}
}

// Render writes the per-subject table followed by an overall footer.
func Render(w io.Writer, stats models.OverallStats) {
	color.New(color.FgCyan, color.Bold).Fprintln(w, "Attendance Summary")

	if len(stats.SubjectStats) == 0 {
		color.New(color.FgYellow).Fprintln(w, "No subjects recorded yet.")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Subject", "Conducted", "Attended", "Absent", "Attendance %", "Status"})
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for _, s := range stats.SubjectStats {
		band := Classify(s.AttendancePercentage)
		table.Append([]string{
			strconv.FormatInt(s.SubjectID, 10),
			s.SubjectName,
			strconv.Itoa(s.TotalConducted),
			strconv.Itoa(s.TotalAttended),
			strconv.Itoa(s.TotalAbsent),
			formatPercent(s.AttendancePercentage),
			band.paint(string(band)),
		})
	}

	overall := Classify(stats.OverallPercentage)
	table.SetFooter([]string{
		"",
		fmt.Sprintf("%d subjects", stats.TotalSubjects),
		strconv.Itoa(stats.TotalConducted),
		strconv.Itoa(stats.TotalAttended),
		strconv.Itoa(stats.TotalAbsent),
		formatPercent(stats.OverallPercentage),
		string(overall),
	})
	table.Render()
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
