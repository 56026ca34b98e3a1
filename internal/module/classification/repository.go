package classification

import (
	"context"

	"github.com/hbaskar/GC-PDC/internal/domain"
	"github.com/hbaskar/GC-PDC/internal/pkg"
	"github.com/hbaskar/GC-PDC/internal/query"
	"gorm.io/gorm"
)

// Repository is the persistence contract for classifications.
type Repository interface {
	Create(ctx context.Context, c *domain.Classification) error
	GetByID(ctx context.Context, id uint) (*domain.Classification, error)
	List(ctx context.Context, req query.PageRequest) (*query.Result[domain.Classification], error)
	Update(ctx context.Context, c *domain.Classification) error
	HardDelete(ctx context.Context, id uint) error
	Summary(ctx context.Context) (*Summary, error)
	DistinctValues(ctx context.Context, column string) ([]string, error)
}

// distinctColumns limits DistinctValues to the known reference columns.
var distinctColumns = map[string]bool{
	"classification_level": true,
	"media_type":           true,
	"file_type":            true,
	"series":               true,
}

// repository implements Repository using GORM.
type repository struct {
	db     *gorm.DB
	engine *query.Engine
}

// NewRepository creates a Repository backed by the given GORM database and
// query engine.
func NewRepository(db *gorm.DB, engine *query.Engine) Repository {
	return &repository{db: db, engine: engine}
}

// Create inserts a new classification.
func (r *repository) Create(ctx context.Context, c *domain.Classification) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a classification by primary key, including soft-deleted
// rows. Callers decide whether a deleted row is visible.
func (r *repository) GetByID(ctx context.Context, id uint) (*domain.Classification, error) {
	var c domain.Classification
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &c, nil
}

// List runs the paginated catalog query and, when the caller asked for joined
// data, enriches the page with template and retention display fields.
func (r *repository) List(ctx context.Context, req query.PageRequest) (*query.Result[domain.Classification], error) {
	result, err := query.Run[domain.Classification](ctx, r.engine, r.db, Spec, req)
	if err != nil {
		return nil, err
	}
	if req.IncludeJoined {
		if err := r.enrich(ctx, result.Items); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// enrich fills TemplateName and RetentionCode from the referenced rows with
// one IN query per related table. The list join selects base columns only, so
// display fields come from here.
func (r *repository) enrich(ctx context.Context, items []domain.Classification) error {
	templateIDs := make([]uint, 0, len(items))
	policyIDs := make([]uint, 0, len(items))
	for _, c := range items {
		if c.TemplateID != nil {
			templateIDs = append(templateIDs, *c.TemplateID)
		}
		policyIDs = append(policyIDs, c.RetentionPolicyID)
	}

	templateNames := make(map[uint]string)
	if len(templateIDs) > 0 {
		var templates []domain.Template
		if err := r.db.WithContext(ctx).
			Where("template_id IN ?", templateIDs).
			Find(&templates).Error; err != nil {
			return pkg.MapDBError(err)
		}
		for _, t := range templates {
			templateNames[t.TemplateID] = t.TemplateName
		}
	}

	retentionCodes := make(map[uint]string)
	if len(policyIDs) > 0 {
		var policies []domain.RetentionPolicy
		if err := r.db.WithContext(ctx).
			Where("retention_policy_id IN ?", policyIDs).
			Find(&policies).Error; err != nil {
			return pkg.MapDBError(err)
		}
		for _, p := range policies {
			retentionCodes[p.RetentionPolicyID] = p.RetentionCode
		}
	}

	for i := range items {
		if items[i].TemplateID != nil {
			if name, ok := templateNames[*items[i].TemplateID]; ok {
				items[i].TemplateName = &name
			}
		}
		if code, ok := retentionCodes[items[i].RetentionPolicyID]; ok {
			items[i].RetentionCode = &code
		}
	}
	return nil
}

// Update saves changes to an existing classification.
func (r *repository) Update(ctx context.Context, c *domain.Classification) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// HardDelete permanently removes a classification row.
func (r *repository) HardDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Classification{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Summary computes catalog-level statistics in a handful of aggregate queries.
func (r *repository) Summary(ctx context.Context) (*Summary, error) {
	s := &Summary{
		ByLevel:     make(map[string]int64),
		ByMediaType: make(map[string]int64),
	}

	model := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&domain.Classification{})
	}

	if err := model().Count(&s.Total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	if err := model().Where("is_deleted = ? AND is_active = ?", false, true).
		Count(&s.Active).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	if err := model().Where("is_deleted = ?", true).Count(&s.Deleted).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	type bucket struct {
		Key   string
		Count int64
	}

	var levels []bucket
	if err := model().Where("is_deleted = ?", false).
		Select("classification_level AS key, COUNT(*) AS count").
		Group("classification_level").
		Scan(&levels).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	for _, b := range levels {
		if b.Key != "" {
			s.ByLevel[b.Key] = b.Count
		}
	}

	var mediaTypes []bucket
	if err := model().Where("is_deleted = ?", false).
		Select("media_type AS key, COUNT(*) AS count").
		Group("media_type").
		Scan(&mediaTypes).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	for _, b := range mediaTypes {
		if b.Key != "" {
			s.ByMediaType[b.Key] = b.Count
		}
	}

	return s, nil
}

// DistinctValues returns the sorted distinct non-empty values of a reference
// column across non-deleted rows. Only the known reference columns are
// queryable.
func (r *repository) DistinctValues(ctx context.Context, column string) ([]string, error) {
	if !distinctColumns[column] {
		return nil, domain.NewAppError(domain.CodeInvalidParameter, "unknown reference column", nil)
	}

	var values []string
	err := r.db.WithContext(ctx).Model(&domain.Classification{}).
		Where("is_deleted = ?", false).
		Where(column+" <> ''").
		Distinct(column).
		Order(column).
		Pluck(column, &values).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return values, nil
}
