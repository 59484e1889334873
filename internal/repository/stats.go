package repository

import (
	"context"
	"fmt"

	"payroll-reports/internal/domain"
)

// PayrollStats computes the per-category payroll detail aggregates for a
// resolved period.
func (r *PayrollRepo) PayrollStats(ctx context.Context, period *domain.Period) ([]domain.CategoryPayrollStats, error) {
	const q = `
	SELECT
		COALESCE("人员类别", '未分类') AS category_name,
		COUNT(*) AS employee_count,
		ROUND(AVG(COALESCE("应发合计", 0)), 2) AS avg_gross_pay,
		ROUND(AVG(COALESCE("扣除合计", 0)), 2) AS avg_deductions,
		ROUND(AVG(COALESCE("实发合计", 0)), 2) AS avg_net_pay,
		ROUND(MIN(COALESCE("应发合计", 0)), 2) AS min_gross_pay,
		ROUND(MAX(COALESCE("应发合计", 0)), 2) AS max_gross_pay,
		ROUND(SUM(COALESCE("应发合计", 0)), 2) AS total_gross_pay,
		ROUND(SUM(COALESCE("实发合计", 0)), 2) AS total_net_pay
	FROM v_comprehensive_employee_payroll
	WHERE "薪资期间名称" LIKE ?
	GROUP BY "人员类别"
	ORDER BY employee_count DESC, category_name`

	rows, err := r.db.QueryContext(ctx, q, "%"+period.Name+"%")
	if err != nil {
		return nil, fmt.Errorf("query payroll stats: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var stats []domain.CategoryPayrollStats
	for rows.Next() {
		var s domain.CategoryPayrollStats
		if err := rows.Scan(&s.Category, &s.EmployeeCount, &s.AvgGrossPay, &s.AvgDeductions,
			&s.AvgNetPay, &s.MinGrossPay, &s.MaxGrossPay, &s.TotalGrossPay, &s.TotalNetPay); err != nil {
			return nil, fmt.Errorf("scan payroll stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// BaseStats computes the per-category contribution base aggregates for a
// resolved period.
func (r *PayrollRepo) BaseStats(ctx context.Context, period *domain.Period) ([]domain.CategoryBaseStats, error) {
	const q = `
	SELECT
		COALESCE(eb.personnel_category_name, '未分类') AS category_name,
		COUNT(*) AS employee_count,
		ROUND(AVG(COALESCE(pc."社保缴费基数", 0)), 2) AS avg_social_base,
		ROUND(AVG(COALESCE(pc."住房公积金缴费基数", 0)), 2) AS avg_housing_base,
		ROUND(AVG(COALESCE(pc."计税基数", 0)), 2) AS avg_tax_base,
		ROUND(MIN(COALESCE(pc."社保缴费基数", 0)), 2) AS min_social_base,
		ROUND(MAX(COALESCE(pc."社保缴费基数", 0)), 2) AS max_social_base
	FROM payroll_entries pe
	JOIN v_employees_basic eb ON pe.employee_id = eb.id
	LEFT JOIN v_payroll_calculations pc ON pe.id = pc."薪资条目id"
	WHERE pe.payroll_period_id = ?
	GROUP BY eb.personnel_category_name
	ORDER BY employee_count DESC, category_name`

	rows, err := r.db.QueryContext(ctx, q, period.ID)
	if err != nil {
		return nil, fmt.Errorf("query base stats: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var stats []domain.CategoryBaseStats
	for rows.Next() {
		var s domain.CategoryBaseStats
		if err := rows.Scan(&s.Category, &s.EmployeeCount, &s.AvgSocialBase,
			&s.AvgHousingBase, &s.AvgTaxBase, &s.MinSocialBase, &s.MaxSocialBase); err != nil {
			return nil, fmt.Errorf("scan base stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// CategorySummaries computes the per-category employee distribution for a
// resolved period.
func (r *PayrollRepo) CategorySummaries(ctx context.Context, period *domain.Period) ([]domain.CategorySummary, error) {
	const q = `
	SELECT
		COALESCE(eb.personnel_category_name, '未分类') AS category_name,
		COUNT(*) AS employee_count,
		ROUND(AVG(pe.gross_pay), 2) AS avg_gross_pay,
		ROUND(AVG(pe.net_pay), 2) AS avg_net_pay
	FROM payroll_entries pe
	JOIN v_employees_basic eb ON pe.employee_id = eb.id
	WHERE pe.payroll_period_id = ?
	GROUP BY eb.personnel_category_name
	ORDER BY employee_count DESC, category_name`

	rows, err := r.db.QueryContext(ctx, q, period.ID)
	if err != nil {
		return nil, fmt.Errorf("query category summaries: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var stats []domain.CategorySummary
	for rows.Next() {
		var s domain.CategorySummary
		if err := rows.Scan(&s.Category, &s.EmployeeCount, &s.AvgGrossPay, &s.AvgNetPay); err != nil {
			return nil, fmt.Errorf("scan category summary: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
