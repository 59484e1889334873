package repository

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"payroll-reports/internal/domain"
)

// identPattern is the set of table names InspectTable will interpolate.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// contributionKeywords flag columns that look like statutory contribution
// base data during inspection.
var contributionKeywords = []string{
	"base", "contribution", "social", "insurance", "pension", "medical", "housing",
}

// TableColumn describes one column of an inspected table.
type TableColumn struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
	Default  string `json:"default,omitempty"`
}

// ColumnStats holds aggregate statistics for one contribution-base column.
type ColumnStats struct {
	Column         string  `json:"column"`
	Min            float64 `json:"min"`
	Max            float64 `json:"max"`
	Avg            float64 `json:"avg"`
	DistinctValues int64   `json:"distinct_values"`
	NonNullCount   int64   `json:"non_null_count"`
}

// TableInfo is the full inspection report for one table: schema, row
// count, a small sample, and contribution-base column statistics.
type TableInfo struct {
	Table       string            `json:"table"`
	Columns     []TableColumn     `json:"columns"`
	RowCount    int64             `json:"total_records"`
	Sample      *domain.ResultSet `json:"-"`
	BaseColumns []string          `json:"contribution_base_columns,omitempty"`
	BaseStats   []ColumnStats     `json:"contribution_base_stats,omitempty"`
}

// InspectTable collects schema metadata, a row sample, and
// contribution-base statistics for the named table. The table name is
// interpolated into SQL and therefore restricted to plain identifiers.
func (r *PayrollRepo) InspectTable(ctx context.Context, table string, sampleLimit int) (*TableInfo, error) {
	if !identPattern.MatchString(table) {
		return nil, domain.ErrValidation("invalid table name %q", table)
	}
	if sampleLimit <= 0 {
		sampleLimit = 5
	}

	info := &TableInfo{Table: table}

	cols, err := r.tableColumns(ctx, table)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, domain.ErrNotFound("table not found: %s", table)
	}
	info.Columns = cols

	if err := r.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %q`, table)).
		Scan(&info.RowCount); err != nil {
		return nil, fmt.Errorf("count %s: %w", table, err)
	}

	sample, err := r.tableSample(ctx, table, sampleLimit)
	if err != nil {
		return nil, err
	}
	info.Sample = sample

	for _, c := range cols {
		if isContributionColumn(c.Name) {
			info.BaseColumns = append(info.BaseColumns, c.Name)
		}
	}
	for _, name := range info.BaseColumns {
		stats, err := r.columnStats(ctx, table, name)
		if err != nil {
			return nil, err
		}
		if stats != nil {
			info.BaseStats = append(info.BaseStats, *stats)
		}
	}

	return info, nil
}

func (r *PayrollRepo) tableColumns(ctx context.Context, table string) ([]TableColumn, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`PRAGMA table_info(%q)`, table))
	if err != nil {
		return nil, fmt.Errorf("table info %s: %w", table, err)
	}
	defer rows.Close() //nolint:errcheck

	var cols []TableColumn
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scan table info: %w", err)
		}
		cols = append(cols, TableColumn{
			Name:     name,
			Type:     ctype,
			Nullable: notNull == 0,
			Default:  dflt.String,
		})
	}
	return cols, rows.Err()
}

func (r *PayrollRepo) tableSample(ctx context.Context, table string, limit int) (*domain.ResultSet, error) {
	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT * FROM %q LIMIT %d`, table, limit))
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w", table, err)
	}
	defer rows.Close() //nolint:errcheck

	return captureResultSet(rows, nil)
}

// columnStats returns nil (no error) for columns that are entirely null.
func (r *PayrollRepo) columnStats(ctx context.Context, table, column string) (*ColumnStats, error) {
	if !identPattern.MatchString(column) {
		return nil, domain.ErrValidation("invalid column name %q", column)
	}

	q := fmt.Sprintf(`
		SELECT MIN(%[1]q), MAX(%[1]q), AVG(%[1]q), COUNT(DISTINCT %[1]q), COUNT(%[1]q)
		FROM %[2]q
		WHERE %[1]q IS NOT NULL`, column, table)

	var (
		min, max, avg          sql.NullFloat64
		distinct, nonNullCount int64
	)
	if err := r.db.QueryRowContext(ctx, q).Scan(&min, &max, &avg, &distinct, &nonNullCount); err != nil {
		return nil, fmt.Errorf("stats %s.%s: %w", table, column, err)
	}
	if !min.Valid {
		return nil, nil
	}
	return &ColumnStats{
		Column:         column,
		Min:            min.Float64,
		Max:            max.Float64,
		Avg:            avg.Float64,
		DistinctValues: distinct,
		NonNullCount:   nonNullCount,
	}, nil
}

func isContributionColumn(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range contributionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
