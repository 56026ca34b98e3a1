package template

import "github.com/hbaskar/GC-PDC/internal/query"

// Spec is the labeling template query vocabulary.
var Spec = query.EntitySpec{
	Table:       "pdc_templates",
	PrimaryKey:  "template_id",
	DefaultSort: "created_at",
	SortColumns: []query.SortColumn{
		{Name: "template_id", Kind: query.ColumnInt},
		{Name: "template_name"},
		{Name: "version"},
		{Name: "created_at", Kind: query.ColumnTime},
	},
	SearchColumns: []string{
		"template_name", "description", "version",
	},
	Filters: []query.FilterField{
		{Key: "body_format", Column: "body_format", Kind: query.FilterString},
		{Key: "version", Column: "version", Kind: query.FilterString},
		{Key: "created_after", Column: "created_at", Kind: query.FilterTimeAfter},
		{Key: "created_before", Column: "created_at", Kind: query.FilterTimeBefore},
	},
	ActiveColumn: "is_active",
}
