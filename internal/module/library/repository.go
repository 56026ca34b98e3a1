package library

import (
	"context"

	"github.com/hbaskar/GC-PDC/internal/domain"
	"github.com/hbaskar/GC-PDC/internal/pkg"
	"github.com/hbaskar/GC-PDC/internal/query"
	"gorm.io/gorm"
)

// Repository is the persistence contract for libraries.
type Repository interface {
	Create(ctx context.Context, l *domain.Library) error
	GetByID(ctx context.Context, id uint) (*domain.Library, error)
	List(ctx context.Context, req query.PageRequest) (*query.Result[domain.Library], error)
	Update(ctx context.Context, l *domain.Library) error
	Delete(ctx context.Context, id uint) error
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

// Create inserts a new library. A duplicate code surfaces as AlreadyExists.
func (r *repository) Create(ctx context.Context, l *domain.Library) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a library by primary key.
func (r *repository) GetByID(ctx context.Context, id uint) (*domain.Library, error) {
	var l domain.Library
	if err := r.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &l, nil
}

// List runs the paginated library query.
func (r *repository) List(ctx context.Context, req query.PageRequest) (*query.Result[domain.Library], error) {
	return query.Run[domain.Library](ctx, r.engine, r.db, Spec, req)
}

// Update saves changes to an existing library.
func (r *repository) Update(ctx context.Context, l *domain.Library) error {
	if err := r.db.WithContext(ctx).Save(l).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a library row.
func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Library{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
