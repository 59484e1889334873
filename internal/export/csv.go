// Package export writes post-processed result sets as CSV extracts.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"payroll-reports/internal/domain"
	"payroll-reports/internal/report"
)

// utf8BOM makes the UTF-8 extracts open correctly in spreadsheet tools.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes the retained columns of a result set to path as
// UTF-8-with-BOM CSV: one header row, one record per row, values
// normalized by the formatter. The file is created only after every
// record has been rendered, and removed again if a write fails — a
// failed run never leaves a partial extract. Returns the number of data
// rows written.
func WriteCSV(path string, rs *domain.ResultSet, cols []domain.Column, f *report.Formatter) (int, error) {
	if len(rs.Rows) == 0 {
		return 0, domain.ErrEmptyResult("no rows to export")
	}

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Name
	}

	records := make([][]string, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		rec := make([]string, len(cols))
		for i, c := range cols {
			rec[i] = f.Format(c, row[c.Ordinal])
		}
		records = append(records, rec)
	}

	file, err := os.Create(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}

	if err := writeRecords(file, header, records); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return 0, fmt.Errorf("close %s: %w", path, err)
	}

	return len(records), nil
}

func writeRecords(file *os.File, header []string, records [][]string) error {
	if _, err := file.Write(utf8BOM); err != nil {
		return err
	}

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
