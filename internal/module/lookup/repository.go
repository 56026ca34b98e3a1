package lookup

import (
	"context"
	"errors"

	"github.com/hbaskar/GC-PDC/internal/domain"
	"github.com/hbaskar/GC-PDC/internal/pkg"
	"github.com/hbaskar/GC-PDC/internal/query"
	"gorm.io/gorm"
)

// Repository is the persistence contract for lookup vocabularies.
type Repository interface {
	CreateType(ctx context.Context, t *domain.LookupType) error
	GetType(ctx context.Context, lookupType string) (*domain.LookupType, error)
	ListTypes(ctx context.Context) ([]domain.LookupType, error)
	UpdateType(ctx context.Context, t *domain.LookupType) error
	DeleteType(ctx context.Context, lookupType string) error
	CodeCount(ctx context.Context, lookupType string) (int64, error)

	CreateCode(ctx context.Context, c *domain.LookupCode) error
	GetCode(ctx context.Context, lookupType, code string) (*domain.LookupCode, error)
	ListCodes(ctx context.Context, req query.PageRequest) (*query.Result[domain.LookupCode], error)
	UpdateCode(ctx context.Context, c *domain.LookupCode) error
	DeleteCode(ctx context.Context, lookupType, code string) error

	BatchGetCodes(ctx context.Context, lookupTypes []string) (map[string][]domain.LookupCode, error)
	BatchUpsertCodes(ctx context.Context, codes []domain.LookupCode) error

	Summary(ctx context.Context) (*Summary, error)
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

// CreateType inserts a new lookup type.
func (r *repository) CreateType(ctx context.Context, t *domain.LookupType) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetType retrieves a lookup type by its key.
func (r *repository) GetType(ctx context.Context, lookupType string) (*domain.LookupType, error) {
	var t domain.LookupType
	err := r.db.WithContext(ctx).
		Where("lookup_type = ?", lookupType).
		First(&t).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &t, nil
}

// ListTypes returns all lookup types ordered by key. Vocabularies are small;
// no pagination is needed here.
func (r *repository) ListTypes(ctx context.Context) ([]domain.LookupType, error) {
	var types []domain.LookupType
	err := r.db.WithContext(ctx).
		Order("lookup_type").
		Find(&types).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return types, nil
}

// UpdateType saves changes to an existing lookup type.
func (r *repository) UpdateType(ctx context.Context, t *domain.LookupType) error {
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// DeleteType removes a lookup type row.
func (r *repository) DeleteType(ctx context.Context, lookupType string) error {
	result := r.db.WithContext(ctx).
		Where("lookup_type = ?", lookupType).
		Delete(&domain.LookupType{})
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CodeCount returns how many codes a vocabulary holds.
func (r *repository) CodeCount(ctx context.Context, lookupType string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.LookupCode{}).
		Where("lookup_type = ?", lookupType).
		Count(&count).Error
	if err != nil {
		return 0, pkg.MapDBError(err)
	}
	return count, nil
}

// CreateCode inserts a new lookup code.
func (r *repository) CreateCode(ctx context.Context, c *domain.LookupCode) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetCode retrieves a lookup code by its composite key.
func (r *repository) GetCode(ctx context.Context, lookupType, code string) (*domain.LookupCode, error) {
	var c domain.LookupCode
	err := r.db.WithContext(ctx).
		Where("lookup_type = ? AND lookup_code = ?", lookupType, code).
		First(&c).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &c, nil
}

// ListCodes runs the paginated code query.
func (r *repository) ListCodes(ctx context.Context, req query.PageRequest) (*query.Result[domain.LookupCode], error) {
	return query.Run[domain.LookupCode](ctx, r.engine, r.db, CodeSpec, req)
}

// UpdateCode saves changes to an existing lookup code.
func (r *repository) UpdateCode(ctx context.Context, c *domain.LookupCode) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// DeleteCode removes a lookup code row.
func (r *repository) DeleteCode(ctx context.Context, lookupType, code string) error {
	result := r.db.WithContext(ctx).
		Where("lookup_type = ? AND lookup_code = ?", lookupType, code).
		Delete(&domain.LookupCode{})
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// BatchGetCodes fetches the active codes of several vocabularies with a
// single IN query and groups them by type. Types without codes are present
// in the result with an empty slice.
func (r *repository) BatchGetCodes(ctx context.Context, lookupTypes []string) (map[string][]domain.LookupCode, error) {
	var codes []domain.LookupCode
	err := r.db.WithContext(ctx).
		Where("lookup_type IN ? AND is_active = ?", lookupTypes, true).
		Order("lookup_type, sort_order, lookup_code").
		Find(&codes).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}

	grouped := make(map[string][]domain.LookupCode, len(lookupTypes))
	for _, t := range lookupTypes {
		grouped[t] = []domain.LookupCode{}
	}
	for _, c := range codes {
		grouped[c.LookupType] = append(grouped[c.LookupType], c)
	}
	return grouped, nil
}

// BatchUpsertCodes inserts or updates the given codes atomically. Existing
// rows keep their audit trail; the caller sets modification fields.
func (r *repository) BatchUpsertCodes(ctx context.Context, codes []domain.LookupCode) error {
	return pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		for i := range codes {
			var existing domain.LookupCode
			err := tx.Where("lookup_type = ? AND lookup_code = ?",
				codes[i].LookupType, codes[i].LookupCode).
				First(&existing).Error
			switch {
			case err == nil:
				codes[i].CreatedAt = existing.CreatedAt
				codes[i].CreatedBy = existing.CreatedBy
				if err := tx.Save(&codes[i]).Error; err != nil {
					return pkg.MapDBError(err)
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(&codes[i]).Error; err != nil {
					return pkg.MapDBError(err)
				}
			default:
				return pkg.MapDBError(err)
			}
		}
		return nil
	})
}

// Summary computes vocabulary statistics.
func (r *repository) Summary(ctx context.Context) (*Summary, error) {
	s := &Summary{CodesByType: make(map[string]int64)}

	if err := r.db.WithContext(ctx).Model(&domain.LookupType{}).
		Count(&s.Types).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	if err := r.db.WithContext(ctx).Model(&domain.LookupCode{}).
		Count(&s.Codes).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	if err := r.db.WithContext(ctx).Model(&domain.LookupCode{}).
		Where("is_active = ?", true).
		Count(&s.ActiveCodes).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	type bucket struct {
		Key   string
		Count int64
	}
	var buckets []bucket
	if err := r.db.WithContext(ctx).Model(&domain.LookupCode{}).
		Select("lookup_type AS key, COUNT(*) AS count").
		Group("lookup_type").
		Scan(&buckets).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	for _, b := range buckets {
		s.CodesByType[b.Key] = b.Count
	}

	return s, nil
}
