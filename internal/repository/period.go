package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"payroll-reports/internal/domain"
)

// PayrollRepo runs reporting queries against the payroll database.
type PayrollRepo struct {
	db *sql.DB
}

// New creates a PayrollRepo on an open database handle.
func New(db *sql.DB) *PayrollRepo {
	return &PayrollRepo{db: db}
}

// FindPeriod resolves a YYYY-MM key to a pay period record by fuzzy name
// match. Period names embed the display form (e.g. "2025年06月工资"), so
// the lookup is a LIKE match taking the newest start_date on ties.
func (r *PayrollRepo) FindPeriod(ctx context.Context, key domain.PeriodKey) (*domain.Period, error) {
	const q = `
		SELECT id, name, start_date, end_date, pay_date
		FROM payroll_periods
		WHERE name LIKE ?
		ORDER BY start_date DESC
		LIMIT 1`

	var p domain.Period
	err := r.db.QueryRowContext(ctx, q, "%"+key.DisplayName()+"%").
		Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.PayDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("pay period not found: %s", key.DisplayName())
	}
	if err != nil {
		return nil, fmt.Errorf("find period %s: %w", key, err)
	}
	return &p, nil
}
