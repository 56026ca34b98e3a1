package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hbaskar/GC-PDC/internal/domain"
	"gorm.io/gorm"
)

// appliedFilter is one recognized, well-typed filter ready to become a
// predicate. Filters are resolved before query construction so that the join
// planner can see which ones reference the auxiliary table.
type appliedFilter struct {
	field FilterField
	value any
	aux   bool
	raw   string
}

// resolveFilters types the raw filter map against the entity vocabulary.
// Unknown keys are always ignored; the engine is deliberately permissive at
// the transport boundary so callers can send a superset of possible filters.
// Malformed values are dropped in permissive mode and rejected in strict mode.
func resolveFilters(spec EntitySpec, filters map[string]string, strict bool) ([]appliedFilter, error) {
	if len(filters) == 0 {
		return nil, nil
	}

	applied := make([]appliedFilter, 0, len(filters))
	for key, raw := range filters {
		field, aux, ok := spec.filterByKey(key)
		if !ok {
			continue
		}
		value, err := typeFilterValue(field.Kind, raw)
		if err != nil {
			if strict {
				return nil, domain.NewAppError(domain.CodeInvalidParameter,
					fmt.Sprintf("invalid value %q for filter %q", raw, key), err)
			}
			continue
		}
		applied = append(applied, appliedFilter{field: field, value: value, aux: aux, raw: raw})
	}
	return applied, nil
}

// typeFilterValue converts a raw filter string to the kind's Go type.
func typeFilterValue(kind FilterKind, raw string) (any, error) {
	switch kind {
	case FilterBool:
		switch strings.ToLower(raw) {
		case "true", "1", "yes":
			return true, nil
		case "false", "0", "no":
			return false, nil
		}
		return nil, fmt.Errorf("not a boolean: %q", raw)
	case FilterInt, FilterIntMin, FilterIntMax:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		return n, nil
	case FilterTimeAfter, FilterTimeBefore:
		return parseTime(raw)
	default:
		return raw, nil
	}
}

func parseTime(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("not a timestamp: %q", raw)
}

// applyFilters attaches the resolved predicates as a conjunction.
func applyFilters(db *gorm.DB, spec EntitySpec, applied []appliedFilter) *gorm.DB {
	for _, a := range applied {
		column := a.field.Column
		if !a.aux && !strings.Contains(column, ".") {
			column = spec.Table + "." + column
		}
		switch a.field.Kind {
		case FilterIntMin, FilterTimeAfter:
			db = db.Where(column+" >= ?", a.value)
		case FilterIntMax, FilterTimeBefore:
			db = db.Where(column+" <= ?", a.value)
		default:
			db = db.Where(column+" = ?", a.value)
		}
	}
	return db
}

// echoFilters returns the recognized filter map for the response envelope.
func echoFilters(applied []appliedFilter) map[string]string {
	echo := make(map[string]string, len(applied))
	for _, a := range applied {
		echo[a.field.Key] = a.raw
	}
	return echo
}
