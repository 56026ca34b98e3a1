package organization

import "github.com/hbaskar/GC-PDC/internal/query"

// Spec is the organization query vocabulary. Organizations have no soft
// deletion; inactive units are hidden from lists unless requested.
var Spec = query.EntitySpec{
	Table:       "pdc_organizations",
	PrimaryKey:  "organization_id",
	DefaultSort: "organization_name",
	SortColumns: []query.SortColumn{
		{Name: "organization_id", Kind: query.ColumnInt},
		{Name: "organization_name"},
		{Name: "organization_code"},
		{Name: "created_at", Kind: query.ColumnTime},
	},
	SearchColumns: []string{
		"organization_name", "organization_code", "description",
	},
	Filters: []query.FilterField{
		{Key: "parent_organization_id", Column: "parent_organization_id", Kind: query.FilterInt},
		{Key: "created_after", Column: "created_at", Kind: query.FilterTimeAfter},
		{Key: "created_before", Column: "created_at", Kind: query.FilterTimeBefore},
	},
	ActiveColumn: "is_active",
}
