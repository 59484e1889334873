package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll-reports/internal/domain"
	"payroll-reports/internal/report"
)

func exportResultSet() *domain.ResultSet {
	return &domain.ResultSet{
		Columns: []domain.Column{
			{Name: "员工编号", Kind: domain.KindText, Ordinal: 0},
			{Name: "姓名", Kind: domain.KindText, Ordinal: 1},
			{Name: "基本工资", Kind: domain.KindNumeric, Ordinal: 2},
			{Name: "入职日期", Kind: domain.KindDate, Ordinal: 3},
			{Name: "备注", Kind: domain.KindText, Ordinal: 4},
		},
		Rows: []domain.Row{
			{"E001", "张伟", 4200.0, time.Date(2005, 7, 1, 0, 0, 0, 0, time.UTC), nil},
			{"E002", "李, 娜", 3600.0, time.Date(2010, 9, 1, 0, 0, 0, 0, time.UTC), "含\"引号\""},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	rs := exportResultSet()
	path := filepath.Join(t.TempDir(), "extract.csv")

	n, err := WriteCSV(path, rs, rs.Columns, report.NewFormatter())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	// Leading UTF-8 BOM, then plain CSV.
	require.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}))

	r := csv.NewReader(bytes.NewReader(raw[3:]))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"员工编号", "姓名", "基本工资", "入职日期", "备注"}, records[0])
	assert.Equal(t, []string{"E001", "张伟", "4200", "2005-07-01", ""}, records[1])
	// Commas and quotes survive the round trip.
	assert.Equal(t, []string{"E002", "李, 娜", "3600", "2010-09-01", "含\"引号\""}, records[2])
}

func TestWriteCSV_ColumnSubset(t *testing.T) {
	rs := exportResultSet()
	path := filepath.Join(t.TempDir(), "extract.csv")

	// Export a pruned column list; ordinals still index the full row.
	kept := []domain.Column{rs.Columns[0], rs.Columns[2]}
	n, err := WriteCSV(path, rs, kept, report.NewFormatter())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(raw[3:]))
	records, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"员工编号", "基本工资"}, records[0])
	assert.Equal(t, []string{"E001", "4200"}, records[1])
}

func TestWriteCSV_EmptyResultWritesNoFile(t *testing.T) {
	rs := exportResultSet()
	rs.Rows = nil
	path := filepath.Join(t.TempDir(), "extract.csv")

	_, err := WriteCSV(path, rs, rs.Columns, report.NewFormatter())
	require.Error(t, err)
	var empty *domain.EmptyResultError
	assert.ErrorAs(t, err, &empty)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "empty export must not create a file")
}

func TestWriteCSV_UncreatablePath(t *testing.T) {
	rs := exportResultSet()

	_, err := WriteCSV(filepath.Join(t.TempDir(), "no-such-dir", "extract.csv"),
		rs, rs.Columns, report.NewFormatter())
	assert.Error(t, err)
}

func TestDefaultFilename(t *testing.T) {
	key := domain.PeriodKey{Year: 2025, Month: time.June}
	now := time.Date(2025, 7, 5, 14, 30, 0, 0, time.UTC)

	name := DefaultFilename("工资明细_有效字段", key, now)
	assert.Equal(t, "工资明细_有效字段_2025-06_20250705_143000.csv", name)
}
