package organization

import (
	"context"

	"github.com/hbaskar/GC-PDC/internal/domain"
	"github.com/hbaskar/GC-PDC/internal/pkg"
	"github.com/hbaskar/GC-PDC/internal/query"
	"gorm.io/gorm"
)

// Repository is the persistence contract for organizations.
type Repository interface {
	Create(ctx context.Context, o *domain.Organization) error
	GetByID(ctx context.Context, id uint) (*domain.Organization, error)
	List(ctx context.Context, req query.PageRequest) (*query.Result[domain.Organization], error)
	Update(ctx context.Context, o *domain.Organization) error
	Delete(ctx context.Context, id uint) error
	ChildCount(ctx context.Context, id uint) (int64, error)
	UsageCount(ctx context.Context, id uint) (int64, error)
	Hierarchy(ctx context.Context) ([]domain.OrganizationHierarchy, error)
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

// Create inserts a new organization.
func (r *repository) Create(ctx context.Context, o *domain.Organization) error {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves an organization by primary key.
func (r *repository) GetByID(ctx context.Context, id uint) (*domain.Organization, error) {
	var o domain.Organization
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &o, nil
}

// List runs the paginated organization query.
func (r *repository) List(ctx context.Context, req query.PageRequest) (*query.Result[domain.Organization], error) {
	return query.Run[domain.Organization](ctx, r.engine, r.db, Spec, req)
}

// Update saves changes to an existing organization.
func (r *repository) Update(ctx context.Context, o *domain.Organization) error {
	if err := r.db.WithContext(ctx).Save(o).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes an organization row.
func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Organization{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ChildCount returns how many organizations name this one as their parent.
func (r *repository) ChildCount(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Organization{}).
		Where("parent_organization_id = ?", id).
		Count(&count).Error
	if err != nil {
		return 0, pkg.MapDBError(err)
	}
	return count, nil
}

// UsageCount returns how many non-deleted classifications reference the
// organization.
func (r *repository) UsageCount(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Classification{}).
		Where("organization_id = ? AND is_deleted = ?", id, false).
		Count(&count).Error
	if err != nil {
		return 0, pkg.MapDBError(err)
	}
	return count, nil
}

// Hierarchy reads the whole flattened organization tree ordered by level.
// Level filtering happens in the service, which needs the full set anyway to
// resolve parent names.
func (r *repository) Hierarchy(ctx context.Context) ([]domain.OrganizationHierarchy, error) {
	var rows []domain.OrganizationHierarchy
	err := r.db.WithContext(ctx).Model(&domain.OrganizationHierarchy{}).
		Order("level").
		Find(&rows).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return rows, nil
}
