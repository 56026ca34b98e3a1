package classification

import "github.com/hbaskar/GC-PDC/internal/query"

// Spec is the classification catalog's query vocabulary. The retention join is
// auxiliary: it is attached only when the request filters on retention fields,
// searches with retention-flavored terms, or asks for it explicitly.
var Spec = query.EntitySpec{
	Table:       "pdc_classifications",
	PrimaryKey:  "classification_id",
	DefaultSort: "created_at",
	SortColumns: []query.SortColumn{
		{Name: "classification_id", Kind: query.ColumnInt},
		{Name: "name"},
		{Name: "code"},
		{Name: "series"},
		{Name: "classification_level"},
		{Name: "sensitivity_rating", Kind: query.ColumnInt, Nullable: true},
		{Name: "media_type"},
		{Name: "file_type"},
		{Name: "created_at", Kind: query.ColumnTime},
		{Name: "modified_at", Kind: query.ColumnTime, Nullable: true},
		{Name: "effective_date", Kind: query.ColumnTime, Nullable: true},
	},
	SearchColumns: []string{
		"name", "description", "code", "series",
		"classification_purpose", "citation",
		"media_type", "file_type",
	},
	Filters: []query.FilterField{
		{Key: "is_active", Column: "is_active", Kind: query.FilterBool},
		{Key: "classification_level", Column: "classification_level", Kind: query.FilterString},
		{Key: "media_type", Column: "media_type", Kind: query.FilterString},
		{Key: "file_type", Column: "file_type", Kind: query.FilterString},
		{Key: "series", Column: "series", Kind: query.FilterString},
		{Key: "organization_id", Column: "organization_id", Kind: query.FilterInt},
		{Key: "template_id", Column: "template_id", Kind: query.FilterInt},
		{Key: "sensitivity_min", Column: "sensitivity_rating", Kind: query.FilterIntMin},
		{Key: "sensitivity_max", Column: "sensitivity_rating", Kind: query.FilterIntMax},
		{Key: "created_after", Column: "created_at", Kind: query.FilterTimeAfter},
		{Key: "created_before", Column: "created_at", Kind: query.FilterTimeBefore},
	},
	SoftDeleteColumn: "is_deleted",
	Join: &query.JoinSpec{
		Name: "retention",
		Clause: "LEFT JOIN pdc_retention_policies" +
			" ON pdc_retention_policies.retention_policy_id = pdc_classifications.retention_policy_id",
		Filters: []query.FilterField{
			{Key: "retention_code", Column: "pdc_retention_policies.retention_code", Kind: query.FilterString},
			{Key: "retention_type", Column: "pdc_retention_policies.retention_type", Kind: query.FilterString},
			{Key: "jurisdiction", Column: "pdc_retention_policies.jurisdiction", Kind: query.FilterString},
			{Key: "retention_days_min", Column: "pdc_retention_policies.retention_period_days", Kind: query.FilterIntMin},
			{Key: "retention_days_max", Column: "pdc_retention_policies.retention_period_days", Kind: query.FilterIntMax},
		},
		SearchColumns: []string{
			"pdc_retention_policies.retention_code",
			"pdc_retention_policies.retention_type",
			"pdc_retention_policies.jurisdiction",
			"pdc_retention_policies.legal_basis",
			"pdc_retention_policies.disposition_method",
		},
		Keywords: []string{
			"retention", "legal", "hold", "disposition", "jurisdiction",
			"policy", "compliance", "audit", "destroy", "archive",
		},
	},
}
