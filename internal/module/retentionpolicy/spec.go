package retentionpolicy

import "github.com/hbaskar/GC-PDC/internal/query"

// Spec is the retention policy query vocabulary. Policies have no soft
// deletion; inactive rows are hidden from lists unless requested.
var Spec = query.EntitySpec{
	Table:       "pdc_retention_policies",
	PrimaryKey:  "retention_policy_id",
	DefaultSort: "created_at",
	SortColumns: []query.SortColumn{
		{Name: "retention_policy_id", Kind: query.ColumnInt},
		{Name: "name"},
		{Name: "retention_code"},
		{Name: "retention_type"},
		{Name: "retention_period_days", Kind: query.ColumnInt},
		{Name: "jurisdiction"},
		{Name: "created_at", Kind: query.ColumnTime},
		{Name: "modified_at", Kind: query.ColumnTime, Nullable: true},
	},
	SearchColumns: []string{
		"name", "description", "retention_code", "retention_type",
		"jurisdiction", "policy_owner", "legal_basis",
	},
	Filters: []query.FilterField{
		{Key: "audit_required", Column: "audit_required", Kind: query.FilterBool},
		{Key: "retention_type", Column: "retention_type", Kind: query.FilterString},
		{Key: "jurisdiction", Column: "jurisdiction", Kind: query.FilterString},
		{Key: "policy_owner", Column: "policy_owner", Kind: query.FilterString},
		{Key: "review_frequency", Column: "review_frequency", Kind: query.FilterString},
		{Key: "retention_days_min", Column: "retention_period_days", Kind: query.FilterIntMin},
		{Key: "retention_days_max", Column: "retention_period_days", Kind: query.FilterIntMax},
		{Key: "created_after", Column: "created_at", Kind: query.FilterTimeAfter},
		{Key: "created_before", Column: "created_at", Kind: query.FilterTimeBefore},
	},
	ActiveColumn: "is_active",
}
