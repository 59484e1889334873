// Package repository runs the payroll reporting queries and materializes
// their output as domain.ResultSet values.
package repository

import (
	"database/sql"
	"fmt"

	"payroll-reports/internal/domain"
)

// captureResultSet drains *sql.Rows into an immutable ResultSet. Column
// kinds come from the driver-reported database type names; the overrides
// map supplies kinds for computed columns (COALESCE/ROUND expressions)
// whose declared type the driver cannot see. []byte cells are converted
// to string so the result set holds no driver-owned memory.
func captureResultSet(rows *sql.Rows, overrides map[string]domain.ColumnKind) (*domain.ResultSet, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("column types: %w", err)
	}

	cols := make([]domain.Column, len(types))
	for i, ct := range types {
		kind := domain.KindFromDatabaseType(ct.DatabaseTypeName())
		if k, ok := overrides[ct.Name()]; ok {
			kind = k
		}
		cols[i] = domain.Column{Name: ct.Name(), Kind: kind, Ordinal: i}
	}

	rs := &domain.ResultSet{Columns: cols}
	for rows.Next() {
		vals := make(domain.Row, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		for i, v := range vals {
			if b, ok := v.([]byte); ok {
				vals[i] = string(b)
			}
		}
		rs.Rows = append(rs.Rows, vals)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return rs, nil
}
