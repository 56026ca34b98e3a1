package query

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// SortOrder is the direction applied to the sort column.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// PaginationType selects the paging strategy for a list request.
type PaginationType string

const (
	TypeOffset PaginationType = "offset"
	TypeCursor PaginationType = "cursor"
)

const (
	DefaultPage = 1
	DefaultSize = 20
	MaxSize     = 100
)

// reservedParams lists query parameter names consumed by the engine itself.
// Everything else in the query string is treated as a candidate filter.
var reservedParams = map[string]bool{
	"page":             true,
	"size":             true,
	"sort_by":          true,
	"sort_order":       true,
	"pagination_type":  true,
	"cursor":           true,
	"search":           true,
	"include_deleted":  true,
	"include_inactive": true,
	"include":          true,
}

// PageRequest holds the paging, sorting, filtering, and search parameters of
// one list request. Filters carry raw string values; typing happens against
// the entity's filter vocabulary in the predicate builder.
type PageRequest struct {
	Page            int
	Size            int
	SortBy          string
	SortOrder       SortOrder
	Type            PaginationType
	Cursor          string
	Filters         map[string]string
	Search          string
	IncludeDeleted  bool
	IncludeInactive bool
	// IncludeJoined forces the auxiliary join regardless of what the
	// filters and search reference, for response enrichment.
	IncludeJoined bool
}

// Skip returns the offset derived from page and size. Only meaningful in
// offset mode.
func (r PageRequest) Skip() int {
	return (r.Page - 1) * r.Size
}

// ParsePageRequest extracts a PageRequest from the request query string.
// Out-of-range page and size values are clamped into [1,..] and [1,100];
// unknown sort/filter inputs are left for the engine to validate against
// the entity spec.
func ParsePageRequest(c *gin.Context) PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	if page < 1 {
		page = DefaultPage
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(DefaultSize)))
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	order := SortDesc
	if strings.EqualFold(c.Query("sort_order"), string(SortAsc)) {
		order = SortAsc
	}

	ptype := TypeOffset
	if strings.EqualFold(c.Query("pagination_type"), string(TypeCursor)) {
		ptype = TypeCursor
	}

	filters := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if reservedParams[key] {
			continue
		}
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	return PageRequest{
		Page:            page,
		Size:            size,
		SortBy:          c.Query("sort_by"),
		SortOrder:       order,
		Type:            ptype,
		Cursor:          c.Query("cursor"),
		Filters:         filters,
		Search:          strings.TrimSpace(c.Query("search")),
		IncludeDeleted:  parseBool(c.Query("include_deleted")),
		IncludeInactive: parseBool(c.Query("include_inactive")),
		IncludeJoined:   parseBool(c.Query("include")),
	}
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true
	}
	return false
}
