package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// periodKeyPattern matches the strict YYYY-MM argument form.
var periodKeyPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// PeriodKey is a user-supplied pay period argument in YYYY-MM form.
type PeriodKey struct {
	Year  int
	Month time.Month
}

// ParsePeriodKey validates and parses a YYYY-MM period argument.
func ParsePeriodKey(s string) (PeriodKey, error) {
	m := periodKeyPattern.FindStringSubmatch(s)
	if m == nil {
		return PeriodKey{}, ErrValidation("invalid pay period %q: expected YYYY-MM, e.g. 2025-06", s)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return PeriodKey{}, ErrValidation("invalid pay period %q: month must be 01-12", s)
	}
	return PeriodKey{Year: year, Month: time.Month(month)}, nil
}

// String returns the canonical YYYY-MM form.
func (k PeriodKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// DisplayName returns the period name as stored in the payroll database,
// e.g. "2025年06月". Period records are resolved by fuzzy match against it.
func (k PeriodKey) DisplayName() string {
	return fmt.Sprintf("%04d年%02d月", k.Year, int(k.Month))
}

// Period is a resolved pay period record.
type Period struct {
	ID        int64
	Name      string
	StartDate time.Time
	EndDate   time.Time
	PayDate   time.Time
}
