package retentionpolicy

import (
	"context"

	"github.com/hbaskar/GC-PDC/internal/domain"
	"github.com/hbaskar/GC-PDC/internal/pkg"
	"github.com/hbaskar/GC-PDC/internal/query"
	"gorm.io/gorm"
)

// Repository is the persistence contract for retention policies.
type Repository interface {
	Create(ctx context.Context, p *domain.RetentionPolicy) error
	GetByID(ctx context.Context, id uint) (*domain.RetentionPolicy, error)
	List(ctx context.Context, req query.PageRequest) (*query.Result[domain.RetentionPolicy], error)
	Update(ctx context.Context, p *domain.RetentionPolicy) error
	Delete(ctx context.Context, id uint) error
	UsageCount(ctx context.Context, id uint) (int64, error)
	Summary(ctx context.Context) (*Summary, error)
	DistinctValues(ctx context.Context, column string) ([]string, error)
}

var distinctColumns = map[string]bool{
	"retention_type": true,
	"jurisdiction":   true,
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

// Create inserts a new retention policy.
func (r *repository) Create(ctx context.Context, p *domain.RetentionPolicy) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a retention policy by primary key.
func (r *repository) GetByID(ctx context.Context, id uint) (*domain.RetentionPolicy, error) {
	var p domain.RetentionPolicy
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &p, nil
}

// List runs the paginated policy query.
func (r *repository) List(ctx context.Context, req query.PageRequest) (*query.Result[domain.RetentionPolicy], error) {
	return query.Run[domain.RetentionPolicy](ctx, r.engine, r.db, Spec, req)
}

// Update saves changes to an existing retention policy.
func (r *repository) Update(ctx context.Context, p *domain.RetentionPolicy) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a retention policy row. Referential guarding happens in the
// service layer via UsageCount.
func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.RetentionPolicy{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UsageCount returns how many non-deleted classifications reference the
// policy.
func (r *repository) UsageCount(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Classification{}).
		Where("retention_policy_id = ? AND is_deleted = ?", id, false).
		Count(&count).Error
	if err != nil {
		return 0, pkg.MapDBError(err)
	}
	return count, nil
}

// Summary computes policy-level statistics.
func (r *repository) Summary(ctx context.Context) (*Summary, error) {
	s := &Summary{
		ByType:         make(map[string]int64),
		ByJurisdiction: make(map[string]int64),
	}

	model := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&domain.RetentionPolicy{})
	}

	if err := model().Count(&s.Total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	if err := model().Where("is_active = ?", true).Count(&s.Active).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	if err := model().Where("audit_required = ?", true).Count(&s.AuditRequired).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	type bucket struct {
		Key   string
		Count int64
	}

	var types []bucket
	if err := model().Select("retention_type AS key, COUNT(*) AS count").
		Group("retention_type").
		Scan(&types).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	for _, b := range types {
		if b.Key != "" {
			s.ByType[b.Key] = b.Count
		}
	}

	var jurisdictions []bucket
	if err := model().Select("jurisdiction AS key, COUNT(*) AS count").
		Group("jurisdiction").
		Scan(&jurisdictions).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	for _, b := range jurisdictions {
		if b.Key != "" {
			s.ByJurisdiction[b.Key] = b.Count
		}
	}

	return s, nil
}

// DistinctValues returns the sorted distinct non-empty values of a reference
// column across active rows.
func (r *repository) DistinctValues(ctx context.Context, column string) ([]string, error) {
	if !distinctColumns[column] {
		return nil, domain.NewAppError(domain.CodeInvalidParameter, "unknown reference column", nil)
	}

	var values []string
	err := r.db.WithContext(ctx).Model(&domain.RetentionPolicy{}).
		Where("is_active = ?", true).
		Where(column+" <> ''").
		Distinct(column).
		Order(column).
		Pluck(column, &values).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return values, nil
}
