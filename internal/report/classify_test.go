package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_ExactMatches(t *testing.T) {
	c := DefaultClassifier()

	tests := []struct {
		name string
		want Classification
	}{
		{"员工编号", ClassIdentity},
		{"入职日期", ClassIdentity},
		{"薪资期间名称", ClassIdentity},
		{"应发合计", ClassEarning},
		{"基本工资", ClassEarning},
		{"奖励性绩效工资", ClassEarning},
		{"扣除合计", ClassDeduction},
		{"个人所得税", ClassDeduction},
		{"个人缴住房公积金", ClassDeduction},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Classify(tt.name), "column %s", tt.name)
	}
}

func TestClassify_KeywordRules(t *testing.T) {
	c := DefaultClassifier()

	tests := []struct {
		name string
		want Classification
	}{
		// Earning keyword, no exclusion.
		{"取暖补贴", ClassEarning},
		{"补发工资", ClassEarning},
		// Earning keyword blocked by an exclusion, deduction keyword applies.
		{"绩效工资个人扣款", ClassDeduction},
		// Deduction keywords only.
		{"失业保险个人缴纳", ClassDeduction},
		{"代扣水电费", ClassDeduction},
		// No earning or deduction keyword matches at all.
		{"住房公积金单位缴费", ClassOther},
		// Nothing matches.
		{"备注", ClassOther},
		{"remark", ClassOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Classify(tt.name), "column %s", tt.name)
	}
}

func TestClassify_TotalAndDeterministic(t *testing.T) {
	c := DefaultClassifier()

	names := []string{"", "员工编号", "独生子女费", "随便什么字段", "住房公积金单位缴费"}
	for _, name := range names {
		first := c.Classify(name)
		assert.Contains(t,
			[]Classification{ClassIdentity, ClassEarning, ClassDeduction, ClassOther}, first)
		// Repeated calls with the same name always agree.
		assert.Equal(t, first, c.Classify(name))
	}
}

func TestClassificationString(t *testing.T) {
	assert.Equal(t, "identity", ClassIdentity.String())
	assert.Equal(t, "earning", ClassEarning.String())
	assert.Equal(t, "deduction", ClassDeduction.String())
	assert.Equal(t, "other", ClassOther.String())
}
