package domain

// CategoryPayrollStats is one per-category row of the payroll detail
// summary (counts and gross/deduction/net aggregates).
type CategoryPayrollStats struct {
	Category      string
	EmployeeCount int
	AvgGrossPay   float64
	AvgDeductions float64
	AvgNetPay     float64
	MinGrossPay   float64
	MaxGrossPay   float64
	TotalGrossPay float64
	TotalNetPay   float64
}

// CategoryBaseStats is one per-category row of the contribution base
// summary (social insurance, housing fund, and tax base aggregates).
type CategoryBaseStats struct {
	Category       string
	EmployeeCount  int
	AvgSocialBase  float64
	AvgHousingBase float64
	AvgTaxBase     float64
	MinSocialBase  float64
	MaxSocialBase  float64
}

// CategorySummary is one per-category row of the employee category
// distribution summary.
type CategorySummary struct {
	Category      string
	EmployeeCount int
	AvgGrossPay   float64
	AvgNetPay     float64
}
