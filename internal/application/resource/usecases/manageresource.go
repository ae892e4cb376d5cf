package usecases

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/folio-hq/folio/internal/domain/resource"
	apperrors "github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
	"github.com/folio-hq/folio/internal/shared/sanitize"
)

// SiteInvalidator drops an account's cached public site.
type SiteInvalidator interface {
	Invalidate(ctx context.Context, accountID uint) error
}

// MergeFunc applies a request body onto a loaded or freshly allocated record.
type MergeFunc[T resource.Record] func(record T) error

// ManageResourceUseCase is the owner-scoped CRUD surface for one kind.
// Quota checks run before Create in the HTTP layer.
type ManageResourceUseCase[T resource.Record] struct {
	info   resource.Info
	repo   resource.Repository[T]
	guard  *resource.Guard[T]
	sites  SiteInvalidator
	logger logger.Interface
}

func NewManageResourceUseCase[T resource.Record](
	kind resource.Kind,
	repo resource.Repository[T],
	sites SiteInvalidator,
	logger logger.Interface,
) *ManageResourceUseCase[T] {
	info, ok := kind.Info()
	if !ok {
		panic(fmt.Sprintf("unknown resource kind %q", kind))
	}
	return &ManageResourceUseCase[T]{
		info:   info,
		repo:   repo,
		guard:  resource.NewGuard[T](repo),
		sites:  sites,
		logger: logger,
	}
}

func (uc *ManageResourceUseCase[T]) Info() resource.Info {
	return uc.info
}

func (uc *ManageResourceUseCase[T]) List(ctx context.Context, ownerID uint) ([]T, error) {
	records, err := uc.repo.Find(ctx, ownerID)
	if err != nil {
		return nil, uc.internal("fetching", err)
	}
	return records, nil
}

// Get returns the record only when ownerID owns it.
func (uc *ManageResourceUseCase[T]) Get(ctx context.Context, ownerID, id uint) (T, error) {
	lookup, err := uc.guard.Scope(ctx, ownerID, id)
	if err != nil {
		var zero T
		return zero, uc.internal("fetching", err)
	}
	record, ok := lookup.Get()
	if !ok {
		var zero T
		return zero, apperrors.NewResourceUnavailableError()
	}
	return record, nil
}

func (uc *ManageResourceUseCase[T]) Create(ctx context.Context, ownerID uint, merge MergeFunc[T]) (T, error) {
	var zero T
	record := newRecord[T]()
	if err := merge(record); err != nil {
		return zero, err
	}
	resource.Pin(record, 0, ownerID, time.Time{})
	if d, ok := any(record).(resource.Defaulter); ok {
		d.ApplyDefaults()
	}
	sanitize.Struct(record)

	if err := uc.repo.Create(ctx, record); err != nil {
		return zero, uc.internal("creating", err)
	}

	uc.logger.Infow("resource created", "kind", uc.info.Kind, "id", record.GetID(), "owner_id", ownerID)
	uc.invalidate(ctx, ownerID)
	return record, nil
}

// Update merges the body onto the owned record. Identity fields are restored
// after the merge so a body cannot move the record to another owner.
func (uc *ManageResourceUseCase[T]) Update(ctx context.Context, ownerID, id uint, merge MergeFunc[T]) (T, error) {
	var zero T
	record, err := uc.Get(ctx, ownerID, id)
	if err != nil {
		return zero, err
	}

	createdAt := record.GetCreatedAt()
	if err := merge(record); err != nil {
		return zero, err
	}
	resource.Pin(record, id, ownerID, createdAt)
	sanitize.Struct(record)

	if err := uc.repo.UpdateOne(ctx, record); err != nil {
		return zero, uc.internal("updating", err)
	}

	uc.invalidate(ctx, ownerID)
	return record, nil
}

func (uc *ManageResourceUseCase[T]) Delete(ctx context.Context, ownerID, id uint) error {
	if _, err := uc.Get(ctx, ownerID, id); err != nil {
		return err
	}

	if err := uc.repo.DeleteOne(ctx, id); err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return apperrors.NewResourceUnavailableError()
		}
		return uc.internal("deleting", err)
	}

	uc.logger.Infow("resource deleted", "kind", uc.info.Kind, "id", id, "owner_id", ownerID)
	uc.invalidate(ctx, ownerID)
	return nil
}

// GetSingleton returns the owner's only record of a singleton kind.
func (uc *ManageResourceUseCase[T]) GetSingleton(ctx context.Context, ownerID uint) (T, error) {
	var zero T
	records, err := uc.repo.Find(ctx, ownerID)
	if err != nil {
		return zero, uc.internal("fetching", err)
	}
	if len(records) == 0 {
		return zero, apperrors.NewNotFoundError(fmt.Sprintf("%s information not found", Label(uc.info.Kind)))
	}
	return records[0], nil
}

// Upsert updates the owner's singleton record or creates it when absent.
func (uc *ManageResourceUseCase[T]) Upsert(ctx context.Context, ownerID uint, merge MergeFunc[T]) (T, error) {
	var zero T
	records, err := uc.repo.Find(ctx, ownerID)
	if err != nil {
		return zero, uc.internal("updating", err)
	}
	if len(records) == 0 {
		return uc.Create(ctx, ownerID, merge)
	}
	return uc.Update(ctx, ownerID, records[0].GetID(), merge)
}

// DeletedMessage is the confirmation returned after a delete.
func (uc *ManageResourceUseCase[T]) DeletedMessage() string {
	return Label(uc.info.Kind) + " deleted successfully"
}

func (uc *ManageResourceUseCase[T]) invalidate(ctx context.Context, ownerID uint) {
	if uc.sites == nil {
		return
	}
	if err := uc.sites.Invalidate(ctx, ownerID); err != nil {
		uc.logger.Warnw("failed to invalidate site cache", "error", err, "owner_id", ownerID)
	}
}

func (uc *ManageResourceUseCase[T]) internal(action string, err error) error {
	uc.logger.Errorw("resource operation failed", "kind", uc.info.Kind, "action", action, "error", err)
	return apperrors.NewInternalError(fmt.Sprintf("Error %s %s", action, Label(uc.info.Kind)))
}

// newRecord allocates the struct T points to.
func newRecord[T resource.Record]() T {
	var zero T
	return reflect.New(reflect.TypeOf(zero).Elem()).Interface().(T)
}

var labels = map[resource.Kind]string{
	resource.KindAbout:        "About",
	resource.KindSkill:        "Skill",
	resource.KindExperience:   "Experience",
	resource.KindEducation:    "Education",
	resource.KindPortfolio:    "Portfolio",
	resource.KindTestimonial:  "Testimonial",
	resource.KindService:      "Service",
	resource.KindFunFact:      "Fun fact",
	resource.KindBrand:        "Brand",
	resource.KindPricing:      "Pricing",
	resource.KindAward:        "Award",
	resource.KindIntroFeature: "Intro feature",
}

// Label is the human readable name of kind used in messages.
func Label(kind resource.Kind) string {
	if l, ok := labels[kind]; ok {
		return l
	}
	return string(kind)
}
