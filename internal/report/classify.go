// Package report implements the tabular post-processing pass applied to
// payroll result sets before emission: zero-column pruning, column
// classification, value normalization, and summary rendering.
package report

import "strings"

// Classification is the semantic bucket assigned to a column for
// reporting and field-structure analysis.
type Classification int

const (
	ClassOther Classification = iota
	ClassIdentity
	ClassEarning
	ClassDeduction
)

// String returns a short lowercase name for the classification.
func (c Classification) String() string {
	switch c {
	case ClassIdentity:
		return "identity"
	case ClassEarning:
		return "earning"
	case ClassDeduction:
		return "deduction"
	default:
		return "other"
	}
}

// Classifier assigns a Classification to a column name. Exact-match sets
// are consulted first, then substring keyword rules. Classification is a
// pure function of the name: every input maps to exactly one bucket, with
// unrecognized names falling back to ClassOther.
type Classifier struct {
	Identity  map[string]struct{}
	Earning   map[string]struct{}
	Deduction map[string]struct{}

	// Keyword rules, applied in order when no exact match hits:
	// a name containing an earning keyword and none of the earning
	// exclusions is an earning; otherwise a name containing a deduction
	// keyword is a deduction.
	EarningKeywords   []string
	EarningExclusions []string
	DeductionKeywords []string
}

// DefaultClassifier returns the classifier configured with the payroll
// view's fixed field sets and keyword rules.
func DefaultClassifier() *Classifier {
	return &Classifier{
		Identity: nameSet(
			"薪资条目ID", "员工ID", "薪资期间ID", "薪资运行ID", "员工编号", "姓名", "身份证号",
			"部门名称", "职位名称", "人员类别", "薪资期间名称", "薪资期间开始日期", "薪资期间结束日期",
			"薪资发放日期", "入职日期", "员工状态",
		),
		Earning: nameSet(
			"应发合计", "基本工资", "岗位工资", "级别工资", "薪级工资", "绩效工资",
			"奖励性绩效工资", "基础性绩效工资", "津贴", "补助", "各种津补贴",
		),
		Deduction: nameSet(
			"扣除合计", "个人所得税", "养老保险个人应缴金额", "医疗保险个人缴纳金额",
			"失业保险个人应缴金额", "职业年金个人应缴费额", "个人缴住房公积金",
		),
		EarningKeywords:   []string{"工资", "津贴", "补贴", "奖", "补发", "绩效"},
		EarningExclusions: []string{"扣", "个人", "单位"},
		DeductionKeywords: []string{"个人", "扣", "税"},
	}
}

// Classify returns the classification for a column name.
func (c *Classifier) Classify(name string) Classification {
	if _, ok := c.Identity[name]; ok {
		return ClassIdentity
	}
	if _, ok := c.Earning[name]; ok {
		return ClassEarning
	}
	if _, ok := c.Deduction[name]; ok {
		return ClassDeduction
	}
	if containsAny(name, c.EarningKeywords) && !containsAny(name, c.EarningExclusions) {
		return ClassEarning
	}
	if containsAny(name, c.DeductionKeywords) {
		return ClassDeduction
	}
	return ClassOther
}

func nameSet(names ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func containsAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
