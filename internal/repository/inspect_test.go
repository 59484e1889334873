package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll-reports/internal/domain"
)

func TestInspectTable(t *testing.T) {
	repo := seededRepo(t)

	info, err := repo.InspectTable(context.Background(), "employee_salary_configs", 3)
	require.NoError(t, err)

	assert.Equal(t, "employee_salary_configs", info.Table)
	assert.Equal(t, int64(5), info.RowCount)
	require.NotNil(t, info.Sample)
	assert.Len(t, info.Sample.Rows, 3)

	// Base and rate columns are flagged as contribution data.
	assert.Contains(t, info.BaseColumns, "social_insurance_base")
	assert.Contains(t, info.BaseColumns, "pension_base")
	assert.Contains(t, info.BaseColumns, "housing_fund_base")
	assert.NotContains(t, info.BaseColumns, "id")

	require.NotEmpty(t, info.BaseStats)
	for _, s := range info.BaseStats {
		if s.Column == "social_insurance_base" {
			assert.InDelta(t, 4600.0, s.Min, 0.001)
			assert.InDelta(t, 8400.0, s.Max, 0.001)
			assert.Equal(t, int64(5), s.NonNullCount)
		}
	}
}

func TestInspectTable_SchemaMetadata(t *testing.T) {
	repo := seededRepo(t)

	info, err := repo.InspectTable(context.Background(), "payroll_periods", 1)
	require.NoError(t, err)

	byName := map[string]TableColumn{}
	for _, c := range info.Columns {
		byName[c.Name] = c
	}
	require.Contains(t, byName, "name")
	require.Contains(t, byName, "start_date")
	assert.False(t, byName["name"].Nullable)
}

func TestInspectTable_RejectsUnsafeName(t *testing.T) {
	repo := seededRepo(t)

	_, err := repo.InspectTable(context.Background(), `employees; DROP TABLE employees`, 5)
	require.Error(t, err)
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestInspectTable_UnknownTable(t *testing.T) {
	repo := seededRepo(t)

	_, err := repo.InspectTable(context.Background(), "no_such_table", 5)
	require.Error(t, err)
	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
}
