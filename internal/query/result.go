package query

// Pagination is the navigation metadata of one page. In cursor mode Total and
// Pages are -1 and the cursor fields carry navigation instead.
type Pagination struct {
	Page           int     `json:"page"`
	Size           int     `json:"size"`
	Total          int64   `json:"total"`
	Pages          int     `json:"pages"`
	HasNext        bool    `json:"has_next"`
	HasPrevious    bool    `json:"has_previous"`
	NextCursor     *string `json:"next_cursor"`
	PreviousCursor *string `json:"previous_cursor"`
	QueryTimeMs    float64 `json:"query_time_ms"`
}

// SortInfo echoes the effective sorting back to the caller. SortBy reflects
// the column actually used, which may be the entity default when the
// requested column was unknown.
type SortInfo struct {
	SortBy         string `json:"sort_by"`
	SortOrder      string `json:"sort_order"`
	PaginationType string `json:"pagination_type"`
}

// Result is the engine's response envelope. Items is never nil.
type Result[T any] struct {
	Items          []T               `json:"items"`
	Pagination     Pagination        `json:"pagination"`
	FiltersApplied map[string]string `json:"filters_applied"`
	SortInfo       SortInfo          `json:"sort_info"`
	SearchApplied  string            `json:"search_applied"`
}
