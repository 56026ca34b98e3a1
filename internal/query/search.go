package query

import (
	"strings"

	"gorm.io/gorm"
)

// applySearch attaches a disjunction of case-insensitive substring predicates
// across the given text columns. A blank term produces no predicate at all.
func applySearch(db *gorm.DB, spec EntitySpec, term string, columns []string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return db
	}

	pattern := "%" + strings.ToLower(term) + "%"
	var sb strings.Builder
	args := make([]any, 0, len(columns))
	for i, col := range columns {
		if !validColumnName.MatchString(col) {
			continue
		}
		if !strings.Contains(col, ".") {
			col = spec.Table + "." + col
		}
		if i > 0 && sb.Len() > 0 {
			sb.WriteString(" OR ")
		}
		sb.WriteString("LOWER(" + col + ") LIKE ?")
		args = append(args, pattern)
	}
	if sb.Len() == 0 {
		return db
	}
	return db.Where(sb.String(), args...)
}

// searchColumns collects the columns eligible for the current search: the
// entity's own text columns, plus the auxiliary table's only when the search
// term itself targets the auxiliary domain. An enrichment-only join must not
// widen the search, since the count query never sees that join.
func searchColumns(spec EntitySpec, searchAux bool) []string {
	if !searchAux || spec.Join == nil {
		return spec.SearchColumns
	}
	cols := make([]string, 0, len(spec.SearchColumns)+len(spec.Join.SearchColumns))
	cols = append(cols, spec.SearchColumns...)
	cols = append(cols, spec.Join.SearchColumns...)
	return cols
}

// suggestsJoinedData classifies a search term against the auxiliary domain's
// keyword list. Matching is case-insensitive and bidirectional: "reten"
// matches the keyword "retention" and "legal hold review" matches "legal".
func suggestsJoinedData(term string, keywords []string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if strings.Contains(term, kw) || strings.Contains(kw, term) {
			return true
		}
	}
	return false
}
