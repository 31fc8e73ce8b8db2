package export

import "fmt"

// Column describes one table column. Key indexes into each row; Numeric columns are
// right-aligned in the PDF rendering.
type Column struct {
	Key     string
	Header  string
	Numeric bool
}

// Dataset defines tabular export content. Footer, when set, is rendered after the
// rows as a summary line.
type Dataset struct {
	Title   string
	Columns []Column
	Rows    []map[string]string
	Footer  map[string]string
}

func (d Dataset) validate() error {
	if len(d.Columns) == 0 {
		return fmt.Errorf("dataset requires at least one column")
	}
	return nil
}

func (d Dataset) headers() []string {
	out := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		out[i] = col.Header
	}
	return out
}

func (d Dataset) record(row map[string]string) []string {
	out := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		out[i] = row[col.Key]
	}
	return out
}
