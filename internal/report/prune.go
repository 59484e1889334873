package report

import (
	"strconv"
	"strings"

	"payroll-reports/internal/domain"
)

// Prune returns the columns to export. With includeZero set, every column
// is returned unchanged. Otherwise a numeric column is dropped when every
// row holds null or a value numerically equal to zero; a single non-zero
// row anywhere keeps the column. Non-numeric columns are always retained,
// and so is every column of an empty result set — zero rows is no
// evidence that a payroll item is unused. Relative order is preserved.
func Prune(rs *domain.ResultSet, includeZero bool) []domain.Column {
	if includeZero || len(rs.Rows) == 0 {
		return rs.Columns
	}

	kept := make([]domain.Column, 0, len(rs.Columns))
	for _, col := range rs.Columns {
		if col.Kind != domain.KindNumeric || hasNonZero(rs.Rows, col.Ordinal) {
			kept = append(kept, col)
		}
	}
	return kept
}

func hasNonZero(rows []domain.Row, ordinal int) bool {
	for _, row := range rows {
		if isNonZero(row[ordinal]) {
			return true
		}
	}
	return false
}

// isNonZero reports whether a numeric cell holds a value other than null
// or zero. Unparseable strings count as non-zero so that unexpected
// content is surfaced rather than silently dropped with its column.
func isNonZero(v any) bool {
	switch n := v.(type) {
	case nil:
		return false
	case float64:
		return n != 0
	case float32:
		return n != 0
	case int64:
		return n != 0
	case int:
		return n != 0
	case []byte:
		return stringNonZero(string(n))
	case string:
		return stringNonZero(n)
	default:
		return true
	}
}

func stringNonZero(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return true
	}
	return f != 0
}
