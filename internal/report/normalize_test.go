package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"payroll-reports/internal/domain"
)

func textCol(name string) domain.Column  { return domain.Column{Name: name, Kind: domain.KindText} }
func dateCol(name string) domain.Column  { return domain.Column{Name: name, Kind: domain.KindDate} }
func numCol(name string) domain.Column   { return domain.Column{Name: name, Kind: domain.KindNumeric} }
func stampCol(name string) domain.Column { return domain.Column{Name: name, Kind: domain.KindTimestamp} }

func TestFormat_NullIsEmptyString(t *testing.T) {
	f := NewFormatter()
	assert.Equal(t, "", f.Format(textCol("备注"), nil))
	assert.Equal(t, "", f.Format(numCol("津贴"), nil))
}

func TestFormat_DateColumn(t *testing.T) {
	f := NewFormatter()
	hire := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-01", f.Format(dateCol("入职日期"), hire))
}

func TestFormat_TimestampColumn(t *testing.T) {
	f := NewFormatter()
	calc := time.Date(2025, 6, 28, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-28 10:30:00", f.Format(stampCol("审核时间"), calc))
}

func TestFormat_TimestampClassifiedNameForcesTimeComponent(t *testing.T) {
	f := NewFormatter()
	// 计算时间 is timestamp-classified: even a date-kind column with a
	// midnight value renders with the time-of-day component.
	calc := time.Date(2025, 6, 28, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-28 00:00:00", f.Format(dateCol("计算时间"), calc))
}

func TestFormat_TemporalStringsRecanonicalized(t *testing.T) {
	f := NewFormatter()
	// Drivers may hand temporal cells back as text.
	assert.Equal(t, "2024-03-01", f.Format(dateCol("入职日期"), "2024-03-01"))
	assert.Equal(t, "2024-03-01", f.Format(dateCol("入职日期"), "2024-03-01 00:00:00"))
	assert.Equal(t, "2025-06-28 10:30:00",
		f.Format(stampCol("计算时间"), "2025-06-28 10:30:00"))
}

func TestFormat_NumericNaturalRepresentation(t *testing.T) {
	f := NewFormatter()
	assert.Equal(t, "4200", f.Format(numCol("基本工资"), 4200.0))
	assert.Equal(t, "486.5", f.Format(numCol("个人所得税"), 486.5))
	assert.Equal(t, "672", f.Format(numCol("养老保险个人应缴金额"), int64(672)))
	// Text-typed decimals keep the scale the query produced.
	assert.Equal(t, "0.00", f.Format(numCol("住房公积金单位缴费"), "0.00"))
}

func TestFormat_TruncationOnlyWhenConfigured(t *testing.T) {
	f := NewFormatter()
	long := "身份证号110101198001011234110101198001011234"
	assert.Equal(t, long, f.Format(textCol("身份证号"), long))

	f.MaxDisplayLen = 5
	assert.Equal(t, "身份证号1", f.Format(textCol("身份证号"), long))
}
