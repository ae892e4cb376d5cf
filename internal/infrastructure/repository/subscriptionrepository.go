package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/domain/subscription"
	"github.com/folio-hq/folio/internal/infrastructure/persistence/mappers"
	"github.com/folio-hq/folio/internal/infrastructure/persistence/models"
	"github.com/folio-hq/folio/internal/shared/db"
	"github.com/folio-hq/folio/internal/shared/logger"
)

// SubscriptionRepository implements subscription.Repository with GORM.
type SubscriptionRepository struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) subscription.Repository {
	return &SubscriptionRepository{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription in database", "account_id", model.AccountID, "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := sub.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}

	r.logger.Infow("subscription created",
		"id", model.ID,
		"account_id", model.AccountID,
		"plan", model.PlanID,
		"status", model.Status,
	)
	return nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "id", sub.ID(), "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update subscription", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) GetActiveByAccountID(ctx context.Context, accountID uint) (*subscription.Subscription, error) {
	return r.newest(ctx, r.byStatus(ctx, accountID, subscription.StatusActive))
}

func (r *SubscriptionRepository) GetCurrentByAccountID(ctx context.Context, accountID uint) (*subscription.Subscription, error) {
	active, err := r.GetActiveByAccountID(ctx, accountID)
	if err != nil || active != nil {
		return active, err
	}
	return r.newest(ctx, r.byStatus(ctx, accountID, subscription.StatusCancelled))
}

func (r *SubscriptionRepository) GetLatestCancelledByAccountID(ctx context.Context, accountID uint) (*subscription.Subscription, error) {
	query := r.byStatus(ctx, accountID, subscription.StatusCancelled).
		Where("plan_id <> ?", entitlement.PlanFree.String())
	return r.newest(ctx, query)
}

func (r *SubscriptionRepository) GetLatestByAccountID(ctx context.Context, accountID uint) (*subscription.Subscription, error) {
	return r.newest(ctx, r.byStatus(ctx, accountID))
}

// byStatus scopes to accountID's rows whose status is one of statuses (any
// status when none are given).
func (r *SubscriptionRepository) byStatus(ctx context.Context, accountID uint, statuses ...subscription.Status) *gorm.DB {
	query := r.db.WithContext(ctx).Where("account_id = ?", accountID)
	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, s.String())
		}
		query = query.Where("status IN ?", values)
	}
	return query
}

// newest returns the most recently created row matched by query.
func (r *SubscriptionRepository) newest(ctx context.Context, query *gorm.DB) (*subscription.Subscription, error) {
	// First would prepend a primary key ORDER BY ahead of the scope's
	// ordering, so the newest row is taken explicitly.
	var model models.SubscriptionModel
	if err := query.Scopes(db.NewestFirst()).Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription", "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map subscription model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map subscription: %w", err)
	}
	return entity, nil
}

func (r *SubscriptionRepository) ListByAccountID(ctx context.Context, accountID uint, limit int) ([]*subscription.Subscription, error) {
	var rows []*models.SubscriptionModel

	query := r.db.WithContext(ctx).Where("account_id = ?", accountID).Scopes(db.NewestFirst())
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return r.toEntities(rows)
}

func (r *SubscriptionRepository) CountByStatus(ctx context.Context) (map[subscription.Status]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	if err := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to count subscriptions by status", "error", err)
		return nil, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	counts := make(map[subscription.Status]int64, len(rows))
	for _, row := range rows {
		counts[subscription.Status(row.Status)] = row.Total
	}
	return counts, nil
}

func (r *SubscriptionRepository) ListActive(ctx context.Context) ([]*subscription.Subscription, error) {
	var rows []*models.SubscriptionModel
	if err := r.db.WithContext(ctx).Where("status = ?", subscription.StatusActive.String()).Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list active subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list active subscriptions: %w", err)
	}
	return r.toEntities(rows)
}

func (r *SubscriptionRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]*subscription.Subscription, error) {
	var rows []*models.SubscriptionModel
	if err := r.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions since", "since", since, "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return r.toEntities(rows)
}

func (r *SubscriptionRepository) CountCancelledSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("status = ? AND updated_at >= ?", subscription.StatusCancelled.String(), since).
		Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count cancelled subscriptions", "since", since, "error", err)
		return 0, fmt.Errorf("failed to count cancelled subscriptions: %w", err)
	}
	return total, nil
}

func (r *SubscriptionRepository) toEntities(rows []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	entities, err := r.mapper.ToEntities(rows)
	if err != nil {
		r.logger.Errorw("failed to map subscription models to entities", "error", err)
		return nil, fmt.Errorf("failed to map subscriptions: %w", err)
	}
	if entities == nil {
		entities = []*subscription.Subscription{}
	}
	return entities, nil
}
