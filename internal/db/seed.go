package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Seed populates the payroll database with a small demo data set: one pay
// period, three personnel categories, and five employees with payroll
// entries and contribution base configs. Idempotent — does nothing when a
// period already exists.
//
// The heating subsidy and only-child allowance items are deliberately
// zero for every employee so the zero-column pruning has something to
// drop on a fresh database.
func Seed(ctx context.Context, db *sql.DB) error {
	var periods int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM payroll_periods`).Scan(&periods); err != nil {
		return fmt.Errorf("count periods: %w", err)
	}
	if periods > 0 {
		return nil // already seeded
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, `
		INSERT INTO payroll_periods (name, start_date, end_date, pay_date)
		VALUES ('2025年06月工资', '2025-06-01', '2025-06-30', '2025-07-05')`)
	if err != nil {
		return fmt.Errorf("seed period: %w", err)
	}
	periodID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("seed period id: %w", err)
	}

	categories := []struct {
		code, name, description string
	}{
		{"A01", "事业编制", "在编事业单位工作人员"},
		{"B01", "聘用人员", "编制外聘用工作人员"},
		{"C01", "劳务派遣", "劳务派遣用工"},
	}
	categoryIDs := make(map[string]int64, len(categories))
	for _, c := range categories {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO personnel_categories (code, name, description)
			VALUES (?, ?, ?)`, c.code, c.name, c.description)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", c.code, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("seed category id: %w", err)
		}
		categoryIDs[c.code] = id
	}

	employees := []struct {
		code, name, idNumber, category, department, position, hireDate string
		active                                                         bool
		basic, post, grade, perf, allowance, subsidy                   float64
		tax, pension, medical, unemployment, annuity, housing          float64
		socialBase, housingBase, taxBase                               float64
	}{
		{"E001", "张伟", "110101198001011234", "A01", "财务处", "处长", "2005-07-01", true,
			4200, 1800, 1200, 2600, 600, 300, 486.50, 672.00, 168.00, 42.00, 336.00, 504.00,
			8400, 8400, 10700},
		{"E002", "李娜", "110101198503052345", "A01", "教务处", "科员", "2010-09-01", true,
			3600, 1200, 900, 2100, 500, 300, 268.40, 544.00, 136.00, 34.00, 272.00, 408.00,
			6800, 6800, 8600},
		{"E003", "王芳", "110101199002103456", "B01", "后勤服务中心", "职员", "2016-03-01", true,
			3200, 800, 0, 1500, 400, 200, 96.20, 448.00, 112.00, 28.00, 0, 336.00,
			5600, 5600, 6100},
		{"E004", "刘洋", "110101199308154567", "B01", "信息中心", "工程师", "2019-06-15", true,
			3800, 1000, 0, 1900, 450, 200, 178.30, 512.00, 128.00, 32.00, 0, 384.00,
			6400, 6400, 7350},
		{"E005", "陈静", "110101199511205678", "C01", "保卫处", "派遣人员", "2022-01-10", false,
			2800, 0, 0, 900, 300, 150, 0, 368.00, 92.00, 23.00, 0, 276.00,
			4600, 4600, 4150},
	}

	for _, e := range employees {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO employees (employee_code, full_name, id_number, personnel_category_id,
				department_name, position_name, hire_date, is_active)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.code, e.name, e.idNumber, categoryIDs[e.category],
			e.department, e.position, e.hireDate, e.active)
		if err != nil {
			return fmt.Errorf("seed employee %s: %w", e.code, err)
		}
		employeeID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("seed employee id: %w", err)
		}

		gross := e.basic + e.post + e.grade + e.perf + e.allowance + e.subsidy
		deductions := e.tax + e.pension + e.medical + e.unemployment + e.annuity + e.housing

		res, err = tx.ExecContext(ctx, `
			INSERT INTO payroll_entries (payroll_period_id, employee_id,
				basic_salary, post_salary, grade_salary, performance_salary,
				allowance, subsidy, heating_subsidy, only_child_allowance,
				income_tax, pension_personal, medical_personal,
				unemployment_personal, annuity_personal, housing_fund_personal,
				gross_pay, total_deductions, net_pay, calculated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, 0, ?, ?, ?, ?, ?, ?, ?, ?, ?, '2025-06-28 10:30:00')`,
			periodID, employeeID,
			e.basic, e.post, e.grade, e.perf, e.allowance, e.subsidy,
			e.tax, e.pension, e.medical, e.unemployment, e.annuity, e.housing,
			gross, deductions, gross-deductions)
		if err != nil {
			return fmt.Errorf("seed entry %s: %w", e.code, err)
		}
		entryID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("seed entry id: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO employee_salary_configs (payroll_entry_id,
				social_insurance_base, pension_base, medical_base,
				housing_fund_base, annuity_base, tax_base, base_salary,
				pension_rate_personal, medical_rate_personal, housing_rate_personal,
				pension_rate_employer, medical_rate_employer, housing_rate_employer)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, 8, 2, 6, 16, 8, 6)`,
			entryID, e.socialBase, e.socialBase, e.socialBase,
			e.housingBase, e.socialBase, e.taxBase, e.basic)
		if err != nil {
			return fmt.Errorf("seed salary config %s: %w", e.code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
