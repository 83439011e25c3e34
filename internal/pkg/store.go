package pkg

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
)

// CrudStore is the shared gorm-backed implementation of
// domain.CrudRepository. One store instance plus one ListSpec replaces the
// near-identical per-entity repositories the content modules would
// otherwise duplicate.
//
// Reads are unscoped: trashed rows are visible to GetByID and GetBySlug.
// Visibility filtering happens only in List, driven by the status option.
type CrudStore[T domain.SoftDeletable] struct {
	db   *gorm.DB
	spec ListSpec
}

// NewCrudStore creates a CrudStore for one entity kind.
func NewCrudStore[T domain.SoftDeletable](db *gorm.DB, spec ListSpec) *CrudStore[T] {
	return &CrudStore[T]{db: db, spec: spec}
}

// Create inserts a new entity. Unique-constraint violations surface as
// already-exists errors so callers can react instead of treating them as fatal.
func (s *CrudStore[T]) Create(ctx context.Context, entity *T) error {
	if err := s.db.WithContext(ctx).Create(entity).Error; err != nil {
		return MapGormError(err)
	}
	return nil
}

// GetByID retrieves an entity by primary key, trashed or not.
func (s *CrudStore[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	query := s.db.WithContext(ctx)
	for _, preload := range s.spec.Preloads {
		query = query.Preload(preload)
	}
	if err := query.First(&entity, id).Error; err != nil {
		return nil, MapGormError(err)
	}
	return &entity, nil
}

// GetBySlug retrieves an entity by its unique slug, trashed or not.
func (s *CrudStore[T]) GetBySlug(ctx context.Context, slug string) (*T, error) {
	var entity T
	query := s.db.WithContext(ctx)
	for _, preload := range s.spec.Preloads {
		query = query.Preload(preload)
	}
	if err := query.Where("slug = ?", slug).First(&entity).Error; err != nil {
		return nil, MapGormError(err)
	}
	return &entity, nil
}

// List returns one filtered, sorted page plus the filtered total.
func (s *CrudStore[T]) List(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[T], error) {
	return RunListQuery[T](ctx, s.db, s.spec, opts)
}

// Update saves changes to an existing entity.
func (s *CrudStore[T]) Update(ctx context.Context, entity *T) error {
	if err := s.db.WithContext(ctx).Save(entity).Error; err != nil {
		return MapGormError(err)
	}
	return nil
}

// SoftDelete moves an active entity to the trashed partition by stamping
// deleted_at. Already-trashed entities are left untouched; unknown ids
// report not found. The read-then-update shape keeps the no-op case
// independent of driver RowsAffected semantics.
func (s *CrudStore[T]) SoftDelete(ctx context.Context, id uint) error {
	var entity T
	if err := s.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		return MapGormError(err)
	}
	if entity.Trashed() {
		return nil
	}
	if err := s.db.WithContext(ctx).Model(new(T)).
		Where("id = ?", id).
		Update("deleted_at", time.Now()).Error; err != nil {
		return MapGormError(err)
	}
	return nil
}

// Restore moves a trashed entity back to the active partition. Restoring an
// already-active entity is a no-op; unknown ids report not found.
func (s *CrudStore[T]) Restore(ctx context.Context, id uint) error {
	var entity T
	if err := s.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		return MapGormError(err)
	}
	if !entity.Trashed() {
		return nil
	}
	if err := s.db.WithContext(ctx).Model(new(T)).
		Where("id = ?", id).
		Update("deleted_at", nil).Error; err != nil {
		return MapGormError(err)
	}
	return nil
}

// ForceDelete removes the row permanently. Terminal and irreversible;
// callers gate it behind an explicit force flag.
func (s *CrudStore[T]) ForceDelete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return MapGormError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MapGormError converts gorm errors to domain errors.
func MapGormError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. Not all gorm dialectors translate driver-level errors to
// gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
