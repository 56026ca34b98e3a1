package query

import "regexp"

// FilterKind is the typed interpretation of a filter value.
type FilterKind int

const (
	// FilterBool matches "true"/"1"/"yes" (and their negations) with equality.
	FilterBool FilterKind = iota
	// FilterString matches with exact equality.
	FilterString
	// FilterInt matches an integer value with exact equality.
	FilterInt
	// FilterIntMin / FilterIntMax apply inclusive range bounds to a numeric column.
	FilterIntMin
	FilterIntMax
	// FilterTimeAfter / FilterTimeBefore apply inclusive range bounds to a
	// timestamp column. Values are RFC 3339 or "2006-01-02".
	FilterTimeAfter
	FilterTimeBefore
)

// FilterField binds a request filter key to a column and a typed kind.
type FilterField struct {
	Key    string
	Column string
	Kind   FilterKind
}

// ColumnKind is the value domain of a sortable column. Cursor tokens carry
// column values as strings; the kind drives the typed decoding so the bound
// parameter matches the column's type on every driver, not just the ones
// with loose column affinity.
type ColumnKind int

const (
	ColumnString ColumnKind = iota
	ColumnInt
	ColumnTime
)

// SortColumn declares one client-sortable column. Nullable columns cannot
// drive a cursor walk: a NULL boundary value cannot anchor the compound
// comparison, and rows with NULL sort values vanish once a bound applies.
type SortColumn struct {
	Name     string
	Kind     ColumnKind
	Nullable bool
}

// JoinSpec describes an auxiliary table that may be joined into a list query.
// The join is attached only when the request actually references it: through
// the explicit include flag, a filter key from Filters, or a search term that
// matches Keywords.
type JoinSpec struct {
	Name string
	// Clause is the full join clause, e.g.
	// "LEFT JOIN pdc_retention_policies ON ...".
	Clause string
	// Filters is the auxiliary table's recognized filter vocabulary.
	// Columns must be table-qualified.
	Filters []FilterField
	// SearchColumns are table-qualified auxiliary text columns included in
	// free-text search while the join is attached.
	SearchColumns []string
	// Keywords classify a search term as plausibly targeting the auxiliary
	// domain. Matching is case-insensitive substring in either direction.
	Keywords []string
}

// EntitySpec is the declarative query vocabulary of one entity. A single
// generic engine consumes it; entities never build predicates themselves.
// PrimaryKey must appear in SortColumns: it is the cursor tie-breaker and the
// fallback sort for cursor walks over nullable columns.
type EntitySpec struct {
	Table       string
	PrimaryKey  string
	DefaultSort string
	// SortColumns are the columns a client may sort on.
	SortColumns []SortColumn
	// SearchColumns are the entity's own free-text columns.
	SearchColumns []string
	// Filters is the entity's recognized filter vocabulary.
	Filters []FilterField
	// SoftDeleteColumn, when set, gates list queries with "<col> = false"
	// unless the request asks for deleted rows.
	SoftDeleteColumn string
	// ActiveColumn, when set, gates list queries with "<col> = true" unless
	// the request asks for inactive rows.
	ActiveColumn string
	Join         *JoinSpec
}

// validColumnName guards every identifier interpolated into SQL.
var validColumnName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.]*$`)

// Sortable reports whether the column may be used for ordering.
func (s EntitySpec) Sortable(column string) bool {
	if !validColumnName.MatchString(column) {
		return false
	}
	_, ok := s.sortColumn(column)
	return ok
}

// sortColumn looks up a declared sort column by name.
func (s EntitySpec) sortColumn(name string) (SortColumn, bool) {
	for _, c := range s.SortColumns {
		if c.Name == name {
			return c, true
		}
	}
	return SortColumn{}, false
}

// columnKind returns the declared kind of a sort column, defaulting to string
// comparison for anything undeclared.
func (s EntitySpec) columnKind(name string) ColumnKind {
	if c, ok := s.sortColumn(name); ok {
		return c.Kind
	}
	return ColumnString
}

// filterByKey looks up key in the entity vocabulary first, then in the
// auxiliary vocabulary. The second result reports whether the field belongs
// to the auxiliary table.
func (s EntitySpec) filterByKey(key string) (FilterField, bool, bool) {
	for _, f := range s.Filters {
		if f.Key == key {
			return f, false, true
		}
	}
	if s.Join != nil {
		for _, f := range s.Join.Filters {
			if f.Key == key {
				return f, true, true
			}
		}
	}
	return FilterField{}, false, false
}
