package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const pageContentWidth = 190.0

// PDFExporter renders datasets into a tabular A4 document.
type PDFExporter struct {
	now func() time.Time
}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{now: time.Now}
}

// Render creates a PDF document with the dataset title, a generation timestamp, the
// table body and a bold footer line.
func (e *PDFExporter) Render(data Dataset) ([]byte, error) {
	if err := data.validate(); err != nil {
		return nil, err
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	if data.Title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, data.Title, "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 6, "Generated "+e.now().UTC().Format(time.RFC3339), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	colWidth := pageContentWidth / float64(len(data.Columns))

	pdf.SetFillColor(230, 230, 230)
	pdf.SetFont("Arial", "B", 10)
	for _, col := range data.Columns {
		pdf.CellFormat(colWidth, 8, col.Header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range data.Rows {
		writeRow(pdf, data.Columns, row, colWidth)
	}

	if data.Footer != nil {
		pdf.SetFont("Arial", "B", 9)
		writeRow(pdf, data.Columns, data.Footer, colWidth)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(pdf *gofpdf.Fpdf, columns []Column, row map[string]string, width float64) {
	for _, col := range columns {
		align := "L"
		if col.Numeric {
			align = "R"
		}
		pdf.CellFormat(width, 7, row[col.Key], "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}
