package report

import (
	"fmt"
	"io"
	"strings"

	"payroll-reports/internal/domain"
)

// WritePayrollStats renders the per-category payroll detail summary as a
// fixed-width text table.
func WritePayrollStats(w io.Writer, period *domain.Period, stats []domain.CategoryPayrollStats) {
	writePeriodHeader(w, period, "工资明细统计")

	fmt.Fprintln(w, "\n各人员类别工资分布:")
	rule(w, 120)
	fmt.Fprintf(w, "%-15s | %3s | %-10s | %-10s | %-10s | %-20s | %-12s | %-12s\n",
		"类别", "人数", "平均应发", "平均扣除", "平均实发", "应发范围", "类别应发总额", "类别实发总额")
	rule(w, 120)

	var totalEmployees int
	var totalGross, totalNet float64
	for _, s := range stats {
		grossRange := fmt.Sprintf("%.0f~%.0f", s.MinGrossPay, s.MaxGrossPay)
		fmt.Fprintf(w, "%-15s | %3d人 | %10.2f | %10.2f | %10.2f | %-20s | %12.2f | %12.2f\n",
			s.Category, s.EmployeeCount, s.AvgGrossPay, s.AvgDeductions, s.AvgNetPay,
			grossRange, s.TotalGrossPay, s.TotalNetPay)
		totalEmployees += s.EmployeeCount
		totalGross += s.TotalGrossPay
		totalNet += s.TotalNetPay
	}

	rule(w, 120)
	fmt.Fprintf(w, "%-15s | %3d人 | %10s | %10s | %10s | %-20s | %12.2f | %12.2f\n",
		"总计", totalEmployees, "", "", "", "", totalGross, totalNet)
	fmt.Fprintln(w)
}

// WriteBaseStats renders the per-category contribution base summary.
func WriteBaseStats(w io.Writer, period *domain.Period, stats []domain.CategoryBaseStats) {
	writePeriodHeader(w, period, "缴费基数统计")

	fmt.Fprintln(w, "\n各人员类别缴费基数情况:")
	rule(w, 100)
	fmt.Fprintf(w, "%-15s | %3s | %-12s | %-14s | %-12s | %-20s\n",
		"类别", "人数", "平均社保基数", "平均公积金基数", "平均计税基数", "社保基数范围")
	rule(w, 100)

	var totalEmployees int
	for _, s := range stats {
		baseRange := fmt.Sprintf("%.0f~%.0f", s.MinSocialBase, s.MaxSocialBase)
		fmt.Fprintf(w, "%-15s | %3d人 | %12.2f | %14.2f | %12.2f | %-20s\n",
			s.Category, s.EmployeeCount, s.AvgSocialBase, s.AvgHousingBase, s.AvgTaxBase, baseRange)
		totalEmployees += s.EmployeeCount
	}

	rule(w, 100)
	fmt.Fprintf(w, "%-15s | %3d人\n", "总计", totalEmployees)
	fmt.Fprintln(w)
}

// WriteCategorySummary renders the employee category distribution.
func WriteCategorySummary(w io.Writer, period *domain.Period, stats []domain.CategorySummary) {
	writePeriodHeader(w, period, "员工类别统计")

	fmt.Fprintln(w, "\n人员类别分布:")
	rule(w, 60)

	var totalEmployees int
	for _, s := range stats {
		fmt.Fprintf(w, "%-15s | %3d人 | 平均应发: %10.2f | 平均实发: %10.2f\n",
			s.Category, s.EmployeeCount, s.AvgGrossPay, s.AvgNetPay)
		totalEmployees += s.EmployeeCount
	}

	rule(w, 60)
	fmt.Fprintf(w, "%-15s | %3d人\n", "总计", totalEmployees)
	fmt.Fprintln(w)
}

func writePeriodHeader(w io.Writer, period *domain.Period, title string) {
	fmt.Fprintf(w, "\n=== %s %s ===\n", period.Name, title)
	fmt.Fprintf(w, "周期时间: %s 至 %s\n",
		period.StartDate.Format(dateLayout), period.EndDate.Format(dateLayout))
	fmt.Fprintf(w, "发放日期: %s\n", period.PayDate.Format(dateLayout))
}

func rule(w io.Writer, width int) {
	fmt.Fprintln(w, strings.Repeat("-", width))
}
