package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/gorm"

	"github.com/folio-hq/folio/internal/domain/resource"
	"github.com/folio-hq/folio/internal/shared/db"
	"github.com/folio-hq/folio/internal/shared/logger"
)

// ResourceRepository is the GORM store for one content record type. T is a
// pointer to a record struct, e.g. *resource.Skill.
type ResourceRepository[T resource.Record] struct {
	db     *gorm.DB
	kind   resource.Kind
	logger logger.Interface
}

func NewResourceRepository[T resource.Record](db *gorm.DB, kind resource.Kind, logger logger.Interface) *ResourceRepository[T] {
	return &ResourceRepository[T]{
		db:     db,
		kind:   kind,
		logger: logger,
	}
}

// newRecord allocates the struct T points to.
func (r *ResourceRepository[T]) newRecord() T {
	var zero T
	return reflect.New(reflect.TypeOf(zero).Elem()).Interface().(T)
}

func (r *ResourceRepository[T]) Kind() resource.Kind {
	return r.kind
}

func (r *ResourceRepository[T]) Find(ctx context.Context, ownerID uint) ([]T, error) {
	records := make([]T, 0)
	if err := r.db.WithContext(ctx).
		Scopes(db.OwnedBy(ownerID), db.DisplayOrder()).
		Find(&records).Error; err != nil {
		r.logger.Errorw("failed to list resources", "kind", r.kind, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("failed to list %s: %w", r.kind, err)
	}
	return records, nil
}

func (r *ResourceRepository[T]) FindOne(ctx context.Context, id uint) (T, error) {
	record := r.newRecord()
	if err := r.db.WithContext(ctx).First(record, id).Error; err != nil {
		var zero T
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, resource.ErrNotFound
		}
		r.logger.Errorw("failed to get resource", "kind", r.kind, "id", id, "error", err)
		return zero, fmt.Errorf("failed to get %s: %w", r.kind, err)
	}
	return record, nil
}

func (r *ResourceRepository[T]) Create(ctx context.Context, record T) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		r.logger.Errorw("failed to create resource", "kind", r.kind, "owner_id", record.GetOwnerID(), "error", err)
		return fmt.Errorf("failed to create %s: %w", r.kind, err)
	}
	return nil
}

func (r *ResourceRepository[T]) UpdateOne(ctx context.Context, record T) error {
	result := r.db.WithContext(ctx).Save(record)
	if result.Error != nil {
		r.logger.Errorw("failed to update resource", "kind", r.kind, "id", record.GetID(), "error", result.Error)
		return fmt.Errorf("failed to update %s: %w", r.kind, result.Error)
	}
	return nil
}

func (r *ResourceRepository[T]) DeleteOne(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(r.newRecord(), id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete resource", "kind", r.kind, "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete %s: %w", r.kind, result.Error)
	}
	if result.RowsAffected == 0 {
		return resource.ErrNotFound
	}
	return nil
}

func (r *ResourceRepository[T]) Count(ctx context.Context, ownerID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(r.newRecord()).
		Scopes(db.OwnedBy(ownerID)).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count resources", "kind", r.kind, "owner_id", ownerID, "error", err)
		return 0, fmt.Errorf("failed to count %s: %w", r.kind, err)
	}
	return count, nil
}

// CountAll counts records of this kind across every owner.
func (r *ResourceRepository[T]) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(r.newRecord()).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count all resources", "kind", r.kind, "error", err)
		return 0, fmt.Errorf("failed to count %s: %w", r.kind, err)
	}
	return count, nil
}

var _ resource.Repository[*resource.Skill] = (*ResourceRepository[*resource.Skill])(nil)
