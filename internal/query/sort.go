package query

import (
	"fmt"

	"github.com/hbaskar/GC-PDC/internal/domain"
)

// resolveSort maps the requested sort column to a safe column reference.
// In permissive mode an unknown or unsafe column silently falls back to the
// entity default; in strict mode it is rejected.
func resolveSort(spec EntitySpec, sortBy string, strict bool) (string, error) {
	if sortBy == "" {
		return spec.DefaultSort, nil
	}
	if spec.Sortable(sortBy) {
		return sortBy, nil
	}
	if strict {
		return "", domain.NewAppError(domain.CodeInvalidParameter,
			fmt.Sprintf("unknown sort field %q", sortBy), nil)
	}
	return spec.DefaultSort, nil
}

// orderClause renders the ORDER BY expression for the resolved column with
// the primary key as a deterministic tie-breaker. Both identifiers have been
// validated against the entity spec before reaching this point.
func orderClause(spec EntitySpec, column string, order SortOrder) string {
	dir := "DESC"
	if order == SortAsc {
		dir = "ASC"
	}
	if column == spec.PrimaryKey {
		return fmt.Sprintf("%s.%s %s", spec.Table, column, dir)
	}
	return fmt.Sprintf("%s.%s %s, %s.%s %s", spec.Table, column, dir, spec.Table, spec.PrimaryKey, dir)
}
