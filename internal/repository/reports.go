package repository

import (
	"context"
	"fmt"

	"payroll-reports/internal/domain"
)

// PayrollDetails fetches the full payroll detail surface for a resolved
// period: every column of the comprehensive view, ordered by category,
// employee code, and name.
func (r *PayrollRepo) PayrollDetails(ctx context.Context, period *domain.Period) (*domain.ResultSet, error) {
	const q = `
		SELECT * FROM v_comprehensive_employee_payroll
		WHERE "薪资期间名称" LIKE ?
		ORDER BY
			COALESCE("人员类别", '未分类'),
			"员工编号",
			"姓名"`

	rows, err := r.db.QueryContext(ctx, q, "%"+period.Name+"%")
	if err != nil {
		return nil, fmt.Errorf("query payroll details: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	return captureResultSet(rows, detailKinds)
}

// detailKinds covers the comprehensive view's expression columns, whose
// declared types the driver reports as unknown.
var detailKinds = map[string]domain.ColumnKind{
	"姓名":   domain.KindText,
	"员工状态": domain.KindText,
	"人员类别": domain.KindText,
}

// ContributionBases fetches the contribution base export for a resolved
// period: employee master data, per-item bases and rates, and the
// personal/employer contribution amounts computed from them.
func (r *PayrollRepo) ContributionBases(ctx context.Context, period *domain.Period) (*domain.ResultSet, error) {
	const q = `
	SELECT
		pp.name AS "薪资周期",
		pp.start_date AS "周期开始日期",
		pp.end_date AS "周期结束日期",
		pp.pay_date AS "发放日期",
		eb.employee_code AS "员工编号",
		COALESCE(eb.full_name, '未知姓名') AS "员工姓名",
		eb.id_number AS "身份证号",
		eb.personnel_category_name AS "人员类别",
		eb.department_name AS "部门名称",
		eb.position_name AS "职位名称",
		eb.hire_date AS "入职日期",
		CASE WHEN eb.is_active THEN '在职' ELSE '离职' END AS "员工状态",

		COALESCE(pc."社保缴费基数", 0.00) AS "社保缴费基数",
		COALESCE(pc."养老保险缴费基数", 0.00) AS "养老保险缴费基数",
		COALESCE(pc."医疗保险缴费基数", 0.00) AS "医疗保险缴费基数",
		COALESCE(pc."住房公积金缴费基数", 0.00) AS "住房公积金缴费基数",
		COALESCE(pc."职业年金缴费基数", 0.00) AS "职业年金缴费基数",
		COALESCE(pc."计税基数", 0.00) AS "个人所得税计税基数",
		COALESCE(pc."基本工资", 0.00) AS "基本工资",

		COALESCE(pc."养老保险个人费率", 0.00) AS "养老保险个人费率",
		COALESCE(pc."医疗保险个人费率", 0.00) AS "医疗保险个人费率",
		COALESCE(pc."住房公积金个人费率", 0.00) AS "住房公积金个人费率",
		COALESCE(pc."养老保险单位费率", 0.00) AS "养老保险单位费率",
		COALESCE(pc."医疗保险单位费率", 0.00) AS "医疗保险单位费率",
		COALESCE(pc."住房公积金单位费率", 0.00) AS "住房公积金单位费率",

		ROUND(COALESCE(pc."养老保险缴费基数", 0.00) * COALESCE(pc."养老保险个人费率", 0.00) / 100, 2) AS "养老保险个人缴费",
		ROUND(COALESCE(pc."医疗保险缴费基数", 0.00) * COALESCE(pc."医疗保险个人费率", 0.00) / 100, 2) AS "医疗保险个人缴费",
		ROUND(COALESCE(pc."住房公积金缴费基数", 0.00) * COALESCE(pc."住房公积金个人费率", 0.00) / 100, 2) AS "住房公积金个人缴费",
		ROUND(COALESCE(pc."养老保险缴费基数", 0.00) * COALESCE(pc."养老保险单位费率", 0.00) / 100, 2) AS "养老保险单位缴费",
		ROUND(COALESCE(pc."医疗保险缴费基数", 0.00) * COALESCE(pc."医疗保险单位费率", 0.00) / 100, 2) AS "医疗保险单位缴费",
		ROUND(COALESCE(pc."住房公积金缴费基数", 0.00) * COALESCE(pc."住房公积金单位费率", 0.00) / 100, 2) AS "住房公积金单位缴费",

		pe.gross_pay AS "应发合计",
		pe.total_deductions AS "扣除合计",
		pe.net_pay AS "实发合计",
		pe.calculated_at AS "计算时间"
	FROM payroll_entries pe
	JOIN payroll_periods pp ON pe.payroll_period_id = pp.id
	JOIN v_employees_basic eb ON pe.employee_id = eb.id
	LEFT JOIN v_payroll_calculations pc ON pe.id = pc."薪资条目id"
	WHERE pp.id = ?
	ORDER BY
		COALESCE(eb.personnel_category_name, '未分类'),
		eb.employee_code,
		eb.full_name`

	rows, err := r.db.QueryContext(ctx, q, period.ID)
	if err != nil {
		return nil, fmt.Errorf("query contribution bases: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	return captureResultSet(rows, contributionKinds)
}

// contributionKinds covers the contribution query's computed columns.
var contributionKinds = map[string]domain.ColumnKind{
	"员工姓名": domain.KindText,
	"员工状态": domain.KindText,

	"社保缴费基数":    domain.KindNumeric,
	"养老保险缴费基数":  domain.KindNumeric,
	"医疗保险缴费基数":  domain.KindNumeric,
	"住房公积金缴费基数": domain.KindNumeric,
	"职业年金缴费基数":  domain.KindNumeric,
	"个人所得税计税基数": domain.KindNumeric,
	"基本工资":      domain.KindNumeric,

	"养老保险个人费率":  domain.KindNumeric,
	"医疗保险个人费率":  domain.KindNumeric,
	"住房公积金个人费率": domain.KindNumeric,
	"养老保险单位费率":  domain.KindNumeric,
	"医疗保险单位费率":  domain.KindNumeric,
	"住房公积金单位费率": domain.KindNumeric,

	"养老保险个人缴费":  domain.KindNumeric,
	"医疗保险个人缴费":  domain.KindNumeric,
	"住房公积金个人缴费": domain.KindNumeric,
	"养老保险单位缴费":  domain.KindNumeric,
	"医疗保险单位缴费":  domain.KindNumeric,
	"住房公积金单位缴费": domain.KindNumeric,
}

// EmployeeCategories fetches the employee identity category export for a
// resolved period, joining the category code and description.
func (r *PayrollRepo) EmployeeCategories(ctx context.Context, period *domain.Period) (*domain.ResultSet, error) {
	const q = `
	SELECT
		pp.name AS "薪资周期",
		pp.start_date AS "周期开始日期",
		pp.end_date AS "周期结束日期",
		pp.pay_date AS "发放日期",
		eb.employee_code AS "员工编号",
		COALESCE(eb.full_name, '未知姓名') AS "员工姓名",
		eb.id_number AS "身份证号",
		eb.personnel_category_name AS "人员类别名称",
		pc.code AS "人员类别编码",
		pc.description AS "人员类别描述",
		eb.department_name AS "部门名称",
		eb.position_name AS "职位名称",
		eb.hire_date AS "入职日期",
		CASE WHEN eb.is_active THEN '在职' ELSE '离职' END AS "员工状态",
		pe.gross_pay AS "应发合计",
		pe.total_deductions AS "扣除合计",
		pe.net_pay AS "实发合计",
		pe.calculated_at AS "计算时间"
	FROM payroll_entries pe
	JOIN payroll_periods pp ON pe.payroll_period_id = pp.id
	JOIN v_employees_basic eb ON pe.employee_id = eb.id
	LEFT JOIN personnel_categories pc ON eb.personnel_category_id = pc.id
	WHERE pp.id = ?
	ORDER BY
		COALESCE(eb.personnel_category_name, '未分类'),
		eb.employee_code,
		"员工姓名"`

	rows, err := r.db.QueryContext(ctx, q, period.ID)
	if err != nil {
		return nil, fmt.Errorf("query employee categories: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	return captureResultSet(rows, categoryKinds)
}

var categoryKinds = map[string]domain.ColumnKind{
	"员工姓名": domain.KindText,
	"员工状态": domain.KindText,
}
