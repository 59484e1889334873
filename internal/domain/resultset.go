package domain

import "strings"

// ColumnKind is the declared type of a result set column.
type ColumnKind int

const (
	KindText ColumnKind = iota
	KindNumeric
	KindInteger
	KindDate
	KindTimestamp
	KindBoolean
)

// String returns a short lowercase name for the kind.
func (k ColumnKind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindInteger:
		return "integer"
	case KindDate:
		return "date"
	case KindTimestamp:
		return "timestamp"
	case KindBoolean:
		return "boolean"
	default:
		return "text"
	}
}

// Column describes one named, typed column of a result set.
// Ordinal is the zero-based position and defines display order.
type Column struct {
	Name    string
	Kind    ColumnKind
	Ordinal int
}

// Row holds one value per column, indexed by column ordinal.
// A nil entry is the null marker.
type Row []any

// ResultSet is the in-memory tabular output of a single query execution.
// It is produced atomically, never mutated, and consumed once.
type ResultSet struct {
	Columns []Column
	Rows    []Row
}

// ColumnIndex returns the ordinal of the named column, or -1.
func (rs *ResultSet) ColumnIndex(name string) int {
	for _, c := range rs.Columns {
		if c.Name == name {
			return c.Ordinal
		}
	}
	return -1
}

// KindFromDatabaseType maps a driver-reported database type name
// (sql.ColumnType.DatabaseTypeName) to a ColumnKind. Unknown or empty
// type names map to text; callers with better knowledge of the query
// can override per column.
func KindFromDatabaseType(dbType string) ColumnKind {
	t := strings.ToUpper(dbType)
	// Strip precision, e.g. DECIMAL(10,2).
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = t[:i]
	}
	switch {
	case t == "":
		return KindText
	case strings.Contains(t, "INT"):
		return KindInteger
	case t == "NUMERIC" || t == "DECIMAL" || t == "REAL" ||
		strings.Contains(t, "FLOAT") || strings.Contains(t, "DOUBLE"):
		return KindNumeric
	case t == "DATE":
		return KindDate
	case strings.Contains(t, "TIMESTAMP") || t == "DATETIME":
		return KindTimestamp
	case strings.Contains(t, "BOOL"):
		return KindBoolean
	default:
		return KindText
	}
}
