package report

import (
	"fmt"
	"strconv"
	"time"

	"payroll-reports/internal/domain"
)

// Canonical display layouts for temporal values.
const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// stringTimeLayouts are the wire forms a temporal cell may arrive in when
// the driver hands back text instead of time.Time.
var stringTimeLayouts = []string{
	timestampLayout,
	time.RFC3339,
	dateLayout,
}

// Formatter converts typed cell values into canonical display strings.
//
// Nulls become empty strings. Date columns render as 2006-01-02 and
// timestamp columns as 2006-01-02 15:04:05; column names listed in
// TimestampColumns always render with the time component even when the
// underlying value is date-only. Numbers keep their natural decimal
// representation — no rounding is applied beyond what the query did.
type Formatter struct {
	// TimestampColumns forces the timestamp layout for the named columns
	// (calculation/audit/update times in the payroll views).
	TimestampColumns map[string]struct{}

	// MaxDisplayLen truncates values longer than this many runes.
	// Zero means unlimited; only diagnostic/preview output sets it,
	// never file export.
	MaxDisplayLen int
}

// NewFormatter returns a Formatter configured for the payroll views'
// timestamp-classified columns.
func NewFormatter() *Formatter {
	return &Formatter{
		TimestampColumns: nameSet("计算时间", "更新时间", "薪资运行日期", "审计时间"),
	}
}

// Format renders one cell of the given column.
func (f *Formatter) Format(col domain.Column, v any) string {
	if v == nil {
		return ""
	}
	return f.truncate(f.format(col, v))
}

func (f *Formatter) format(col domain.Column, v any) string {
	switch val := v.(type) {
	case time.Time:
		return val.Format(f.timeLayout(col))
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case []byte:
		return f.formatString(col, string(val))
	case string:
		return f.formatString(col, val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// formatString re-canonicalizes temporal columns whose values arrive as
// text; everything else passes through untouched, so numeric strings keep
// the exact scale the query produced (e.g. "0.00").
func (f *Formatter) formatString(col domain.Column, s string) string {
	if col.Kind != domain.KindDate && col.Kind != domain.KindTimestamp && !f.isTimestampColumn(col.Name) {
		return s
	}
	for _, layout := range stringTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(f.timeLayout(col))
		}
	}
	return s
}

func (f *Formatter) timeLayout(col domain.Column) string {
	if col.Kind == domain.KindTimestamp || f.isTimestampColumn(col.Name) {
		return timestampLayout
	}
	return dateLayout
}

func (f *Formatter) isTimestampColumn(name string) bool {
	_, ok := f.TimestampColumns[name]
	return ok
}

func (f *Formatter) truncate(s string) string {
	if f.MaxDisplayLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= f.MaxDisplayLen {
		return s
	}
	return string(runes[:f.MaxDisplayLen])
}
