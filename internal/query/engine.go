package query

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hbaskar/GC-PDC/internal/domain"
	"gorm.io/gorm"
)

// Options tunes engine behavior. The zero value is the permissive engine
// with no automatic strategy switching.
type Options struct {
	// Strict rejects unknown sort fields, malformed filter values, and
	// undecodable cursors instead of normalizing them away.
	Strict bool
	// CursorDepthThreshold switches an offset request to cursor paging once
	// the requested depth (skip + size) exceeds it. Zero disables the
	// heuristic. Deep offset scans are where count-plus-skip cost blows up,
	// so the façade steers those to the bounded strategy.
	CursorDepthThreshold int
}

// Engine turns a PageRequest and an EntitySpec into one page of rows plus
// navigation metadata. It is stateless: every dependency arrives per call,
// and it issues at most two read queries per request.
type Engine struct {
	opts Options
}

// New creates an Engine with the given options.
func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Run executes one paginated list query. The generic parameter is the row
// type; it must expose its column values for cursor construction.
//
// Invalid sort and filter inputs never reach the store: they are normalized
// (or, in strict mode, rejected) before query construction. Store failures
// propagate unchanged.
func Run[T CursorSource](ctx context.Context, e *Engine, db *gorm.DB, spec EntitySpec, req PageRequest) (*Result[T], error) {
	start := time.Now()

	sortBy, err := resolveSort(spec, req.SortBy, e.opts.Strict)
	if err != nil {
		return nil, err
	}

	cursorMode := e.useCursor(req)
	if cursorMode {
		// A NULL sort value cannot anchor the compound boundary comparison,
		// and NULL rows vanish behind any cursor bound. Nullable columns
		// therefore cannot drive a cursor walk.
		if col, ok := spec.sortColumn(sortBy); ok && col.Nullable {
			if e.opts.Strict {
				return nil, domain.NewAppError(domain.CodeInvalidParameter,
					fmt.Sprintf("sort field %q is nullable and cannot drive cursor pagination", sortBy), nil)
			}
			sortBy = spec.PrimaryKey
		}
	}

	applied, err := resolveFilters(spec, req.Filters, e.opts.Strict)
	if err != nil {
		return nil, err
	}

	plan := planJoin(spec, req, applied)

	// buildBase assembles the predicate portion of the query. The count query
	// in offset mode reuses it without the join when the join serves
	// enrichment only; the search disjunction follows the plan, not the join,
	// so both queries apply identical predicates.
	buildBase := func(withJoin bool) *gorm.DB {
		q := db.WithContext(ctx).Table(spec.Table)
		if withJoin && spec.Join != nil {
			q = q.Joins(spec.Join.Clause).Select(spec.Table + ".*")
		}
		if spec.SoftDeleteColumn != "" && !req.IncludeDeleted {
			q = q.Where(spec.Table+"."+spec.SoftDeleteColumn+" = ?", false)
		}
		if spec.ActiveColumn != "" && !req.IncludeInactive {
			q = q.Where(spec.Table+"."+spec.ActiveColumn+" = ?", true)
		}
		q = applyFilters(q, spec, applied)
		q = applySearch(q, spec, req.Search, searchColumns(spec, plan.searchAux))
		return q
	}

	var result *Result[T]
	if cursorMode {
		result, err = runCursor[T](e, buildBase(plan.joined), spec, req, sortBy)
	} else {
		result, err = runOffset[T](buildBase(plan.joined), buildBase(plan.predicated), spec, req, sortBy)
	}
	if err != nil {
		return nil, err
	}

	result.FiltersApplied = echoFilters(applied)
	result.SearchApplied = req.Search
	result.Pagination.QueryTimeMs = float64(time.Since(start).Microseconds()) / 1000.0
	return result, nil
}

// useCursor selects the paging strategy: the explicit request flag wins,
// otherwise deep offset requests are steered to cursor paging.
func (e *Engine) useCursor(req PageRequest) bool {
	if req.Type == TypeCursor {
		return true
	}
	if e.opts.CursorDepthThreshold > 0 && req.Skip()+req.Size > e.opts.CursorDepthThreshold {
		return true
	}
	return false
}

// runOffset computes a total count plus a skip/limit page slice.
func runOffset[T CursorSource](pageQ, countQ *gorm.DB, spec EntitySpec, req PageRequest, sortBy string) (*Result[T], error) {
	var total int64
	if err := countQ.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count query: %w", err)
	}

	var items []T
	err := pageQ.Order(orderClause(spec, sortBy, req.SortOrder)).
		Offset(req.Skip()).
		Limit(req.Size).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("page query: %w", err)
	}
	if items == nil {
		items = []T{}
	}

	pages := 0
	if req.Size > 0 {
		pages = int(math.Ceil(float64(total) / float64(req.Size)))
	}

	return &Result[T]{
		Items: items,
		Pagination: Pagination{
			Page:        req.Page,
			Size:        req.Size,
			Total:       total,
			Pages:       pages,
			HasNext:     req.Page < pages,
			HasPrevious: req.Page > 1,
		},
		SortInfo: SortInfo{
			SortBy:         sortBy,
			SortOrder:      string(req.SortOrder),
			PaginationType: string(TypeOffset),
		},
	}, nil
}

// runCursor computes a bounded page via the over-fetch-by-one technique. The
// boundary comparison is strictly-greater (or strictly-less, descending) on
// the compound (sort column, primary key) pair, so rows with duplicate sort
// values are neither re-emitted nor skipped across page boundaries.
func runCursor[T CursorSource](e *Engine, q *gorm.DB, spec EntitySpec, req PageRequest, sortBy string) (*Result[T], error) {
	hadCursor := false
	if req.Cursor != "" {
		var value, pkValue any
		cur, derr := DecodeCursor(req.Cursor)
		if derr == nil {
			value, derr = typedCursorValue(spec.columnKind(sortBy), cur.Value)
		}
		if derr == nil {
			pkValue, derr = typedCursorValue(spec.columnKind(spec.PrimaryKey), cur.PK)
		}
		if derr != nil {
			if e.opts.Strict {
				return nil, domain.NewAppError(domain.CodeInvalidParameter, "invalid cursor", derr)
			}
			// Stale or tampered token: restart from the first page.
		} else {
			hadCursor = true
			q = applyCursorBound(q, spec, sortBy, req.SortOrder, value, pkValue)
		}
	}

	var rows []T
	err := q.Order(orderClause(spec, sortBy, req.SortOrder)).
		Limit(req.Size + 1).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("cursor page query: %w", err)
	}

	hasNext := len(rows) > req.Size
	if hasNext {
		rows = rows[:req.Size]
	}
	if rows == nil {
		rows = []T{}
	}

	var nextCursor, previousCursor *string
	if hasNext && len(rows) > 0 {
		if cur, ok := cursorFromRow(rows[len(rows)-1], spec, sortBy); ok {
			token := EncodeCursor(cur)
			nextCursor = &token
		}
	}
	if hadCursor && len(rows) > 0 {
		if cur, ok := cursorFromRow(rows[0], spec, sortBy); ok {
			token := EncodeCursor(cur)
			previousCursor = &token
		}
	}

	return &Result[T]{
		Items: rows,
		Pagination: Pagination{
			Page:           req.Page,
			Size:           req.Size,
			Total:          -1,
			Pages:          -1,
			HasNext:        hasNext,
			HasPrevious:    hadCursor,
			NextCursor:     nextCursor,
			PreviousCursor: previousCursor,
		},
		SortInfo: SortInfo{
			SortBy:         sortBy,
			SortOrder:      string(req.SortOrder),
			PaginationType: string(TypeCursor),
		},
	}, nil
}

// applyCursorBound filters rows to those strictly after the cursor position
// in the requested order. Values arrive already typed per the entity spec.
func applyCursorBound(q *gorm.DB, spec EntitySpec, sortBy string, order SortOrder, value, pkValue any) *gorm.DB {
	col := spec.Table + "." + sortBy
	pk := spec.Table + "." + spec.PrimaryKey

	if sortBy == spec.PrimaryKey {
		if order == SortAsc {
			return q.Where(pk+" > ?", pkValue)
		}
		return q.Where(pk+" < ?", pkValue)
	}

	if order == SortAsc {
		return q.Where("("+col+" > ?) OR ("+col+" = ? AND "+pk+" > ?)", value, value, pkValue)
	}
	return q.Where("("+col+" < ?) OR ("+col+" = ? AND "+pk+" < ?)", value, value, pkValue)
}
