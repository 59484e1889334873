package report

import (
	"fmt"
	"io"

	"payroll-reports/internal/domain"
)

// FieldStructure groups a result set's column names by classification.
type FieldStructure struct {
	Identity  []string
	Earning   []string
	Deduction []string
	Other     []string
}

// Total returns the number of classified columns.
func (s FieldStructure) Total() int {
	return len(s.Identity) + len(s.Earning) + len(s.Deduction) + len(s.Other)
}

// AnalyzeFields classifies every column of a result set.
func AnalyzeFields(cols []domain.Column, c *Classifier) FieldStructure {
	var s FieldStructure
	for _, col := range cols {
		switch c.Classify(col.Name) {
		case ClassIdentity:
			s.Identity = append(s.Identity, col.Name)
		case ClassEarning:
			s.Earning = append(s.Earning, col.Name)
		case ClassDeduction:
			s.Deduction = append(s.Deduction, col.Name)
		default:
			s.Other = append(s.Other, col.Name)
		}
	}
	return s
}

// WriteFieldStructure renders the field-structure analysis.
func WriteFieldStructure(w io.Writer, s FieldStructure) {
	fmt.Fprintln(w, "\n=== 工资明细字段结构分析 ===")
	fmt.Fprintf(w, "总字段数: %d\n", s.Total())
	fmt.Fprintf(w, "基本信息字段: %d 个\n", len(s.Identity))
	fmt.Fprintf(w, "收入项目字段: %d 个\n", len(s.Earning))
	fmt.Fprintf(w, "扣除项目字段: %d 个\n", len(s.Deduction))
	fmt.Fprintf(w, "其他字段: %d 个\n", len(s.Other))
	fmt.Fprintln(w)
}
