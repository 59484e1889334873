package export

import (
	"fmt"
	"time"

	"payroll-reports/internal/domain"
)

// DefaultFilename builds the timestamped extract name used when no
// explicit output path is given, e.g. "工资明细_有效字段_2025-06_20250705_143000.csv".
func DefaultFilename(prefix string, key domain.PeriodKey, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s.csv", prefix, key, now.Format("20060102_150405"))
}
