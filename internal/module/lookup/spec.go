package lookup

import "github.com/hbaskar/GC-PDC/internal/query"

// CodeSpec is the lookup code query vocabulary. Codes sort by their value by
// default since creation order carries no meaning for vocabularies.
var CodeSpec = query.EntitySpec{
	Table:       "pdc_lookup_codes",
	PrimaryKey:  "lookup_code",
	DefaultSort: "lookup_code",
	SortColumns: []query.SortColumn{
		{Name: "lookup_type"},
		{Name: "lookup_code"},
		{Name: "display_name"},
		{Name: "sort_order", Kind: query.ColumnInt},
		{Name: "created_at", Kind: query.ColumnTime},
	},
	SearchColumns: []string{
		"lookup_code", "display_name", "description",
	},
	Filters: []query.FilterField{
		{Key: "lookup_type", Column: "lookup_type", Kind: query.FilterString},
		{Key: "created_after", Column: "created_at", Kind: query.FilterTimeAfter},
		{Key: "created_before", Column: "created_at", Kind: query.FilterTimeBefore},
	},
	ActiveColumn: "is_active",
}
