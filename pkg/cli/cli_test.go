package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll-reports/internal/domain"
)

// runCLI executes the root command with a seeded database and captured
// output. HOME and the PAYROLL_* env vars are isolated so profile config
// and the ambient environment cannot leak into assertions.
func runCLI(t *testing.T, dsn string, args ...string) (string, error) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("PAYROLL_DB_DRIVER", "")
	t.Setenv("PAYROLL_DB_DSN", "")
	t.Setenv("PAYROLL_LOG_LEVEL", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--dsn", dsn))
	err := cmd.Execute()
	return out.String(), err
}

// seededDSN builds a migrated, seeded database file via the seed command.
func seededDSN(t *testing.T) string {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "payroll.sqlite")
	out, err := runCLI(t, dsn, "seed")
	require.NoError(t, err, out)
	return dsn
}

func TestDetailsCommand(t *testing.T) {
	dsn := seededDSN(t)
	output := filepath.Join(t.TempDir(), "details.csv")

	out, err := runCLI(t, dsn, "details", "2025-06", "-o", output)
	require.NoError(t, err, out)

	assert.Contains(t, out, "=== 2025年06月工资 工资明细统计 ===")
	assert.Contains(t, out, "columns after zero-column pruning")
	assert.Contains(t, out, "Exported 5 payroll detail rows to ")

	raw, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}))
	// Pruned extracts drop the all-zero salary items.
	assert.NotContains(t, string(raw), "取暖补贴")
	assert.Contains(t, string(raw), "基本工资")
}

func TestDetailsCommand_IncludeZeroColumns(t *testing.T) {
	dsn := seededDSN(t)
	output := filepath.Join(t.TempDir(), "details_full.csv")

	out, err := runCLI(t, dsn, "details", "2025-06", "-o", output, "--include-zero-columns")
	require.NoError(t, err, out)
	assert.NotContains(t, out, "zero-column pruning")

	raw, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "取暖补贴")
	assert.Contains(t, string(raw), "独生子女费")
}

func TestDetailsCommand_StatsOnlyWritesNoFile(t *testing.T) {
	dsn := seededDSN(t)
	output := filepath.Join(t.TempDir(), "details.csv")

	out, err := runCLI(t, dsn, "details", "2025-06", "-o", output, "--stats-only", "--analyze-fields")
	require.NoError(t, err, out)

	assert.Contains(t, out, "Stats-only mode, no file exported.")
	assert.Contains(t, out, "=== 工资明细字段结构分析 ===")

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDetailsCommand_InvalidPeriod(t *testing.T) {
	dsn := seededDSN(t)

	_, err := runCLI(t, dsn, "details", "202506")
	require.Error(t, err)
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestDetailsCommand_PeriodNotFound(t *testing.T) {
	dsn := seededDSN(t)

	_, err := runCLI(t, dsn, "details", "2030-01")
	require.Error(t, err)
	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestContributionCommand(t *testing.T) {
	dsn := seededDSN(t)
	output := filepath.Join(t.TempDir(), "bases.csv")

	out, err := runCLI(t, dsn, "contribution", "2025-06", "-o", output)
	require.NoError(t, err, out)

	assert.Contains(t, out, "=== 2025年06月工资 缴费基数统计 ===")

	raw, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "社保缴费基数")
	assert.Contains(t, string(raw), "养老保险个人缴费")
}

func TestCategoriesCommand(t *testing.T) {
	dsn := seededDSN(t)
	output := filepath.Join(t.TempDir(), "categories.csv")

	out, err := runCLI(t, dsn, "categories", "2025-06", "-o", output)
	require.NoError(t, err, out)

	assert.Contains(t, out, "=== 2025年06月工资 员工类别统计 ===")

	raw, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "人员类别编码")
	assert.Contains(t, string(raw), "A01")
}

func TestInspectCommand(t *testing.T) {
	dsn := seededDSN(t)

	out, err := runCLI(t, dsn, "inspect", "employee_salary_configs", "--sample", "2")
	require.NoError(t, err, out)

	assert.Contains(t, out, "=== employee_salary_configs ===")
	assert.Contains(t, out, "Total records: 5")
	assert.Contains(t, out, "Sample (2 rows):")
	assert.Contains(t, out, "social_insurance_base")
}

func TestInspectCommand_JSONReport(t *testing.T) {
	dsn := seededDSN(t)
	jsonOut := filepath.Join(t.TempDir(), "schema.json")

	out, err := runCLI(t, dsn, "inspect", "payroll_entries", "--json-out", jsonOut)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Schema report written to ")

	raw, err := os.ReadFile(jsonOut)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"table": "payroll_entries"`)
	assert.Contains(t, string(raw), `"sample_data"`)
}

func TestSeedCommand_Idempotent(t *testing.T) {
	dsn := seededDSN(t)

	out, err := runCLI(t, dsn, "seed")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Demo data seeded.")
}

func TestMigrateCommand_RejectsDuckDB(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "payroll.duckdb")

	_, err := runCLI(t, dsn, "migrate", "--driver", "duckdb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite3")
}

func TestRootCommand_RejectsUnknownDriver(t *testing.T) {
	_, err := runCLI(t, "x.db", "details", "2025-06", "--driver", "postgres")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestCommandsCommand(t *testing.T) {
	out, err := runCLI(t, "unused.sqlite", "commands", "--filter", "details")
	require.NoError(t, err)
	assert.Contains(t, out, "details")
	assert.NotContains(t, out, "inspect")

	out, err = runCLI(t, "unused.sqlite", "commands", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"path": "details"`)
	assert.Contains(t, out, `"flags"`)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "unused.sqlite", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "payroll version")
}
