package library

import "github.com/hbaskar/GC-PDC/internal/query"

// Spec is the library query vocabulary.
var Spec = query.EntitySpec{
	Table:       "pdc_libraries",
	PrimaryKey:  "library_id",
	DefaultSort: "created_at",
	SortColumns: []query.SortColumn{
		{Name: "library_id", Kind: query.ColumnInt},
		{Name: "code"},
		{Name: "name"},
		{Name: "created_at", Kind: query.ColumnTime},
	},
	SearchColumns: []string{
		"code", "name", "description",
	},
	Filters: []query.FilterField{
		{Key: "created_after", Column: "created_at", Kind: query.FilterTimeAfter},
		{Key: "created_before", Column: "created_at", Kind: query.FilterTimeBefore},
	},
}
