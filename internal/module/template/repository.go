package template

import (
	"context"

	"github.com/hbaskar/GC-PDC/internal/domain"
	"github.com/hbaskar/GC-PDC/internal/pkg"
	"github.com/hbaskar/GC-PDC/internal/query"
	"gorm.io/gorm"
)

// Repository is the persistence contract for templates.
type Repository interface {
	Create(ctx context.Context, t *domain.Template) error
	GetByID(ctx context.Context, id uint) (*domain.Template, error)
	List(ctx context.Context, req query.PageRequest) (*query.Result[domain.Template], error)
	Update(ctx context.Context, t *domain.Template) error
	Delete(ctx context.Context, id uint) error
	UsageCount(ctx context.Context, id uint) (int64, error)
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

// Create inserts a new template.
func (r *repository) Create(ctx context.Context, t *domain.Template) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a template by primary key.
func (r *repository) GetByID(ctx context.Context, id uint) (*domain.Template, error) {
	var t domain.Template
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &t, nil
}

// List runs the paginated template query.
func (r *repository) List(ctx context.Context, req query.PageRequest) (*query.Result[domain.Template], error) {
	return query.Run[domain.Template](ctx, r.engine, r.db, Spec, req)
}

// Update saves changes to an existing template.
func (r *repository) Update(ctx context.Context, t *domain.Template) error {
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a template row.
func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Template{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UsageCount returns how many non-deleted classifications reference the
// template.
func (r *repository) UsageCount(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Classification{}).
		Where("template_id = ? AND is_deleted = ?", id, false).
		Count(&count).Error
	if err != nil {
		return 0, pkg.MapDBError(err)
	}
	return count, nil
}
