package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/infrastructure/persistence/mappers"
	"github.com/folio-hq/folio/internal/infrastructure/persistence/models"
	"github.com/folio-hq/folio/internal/shared/db"
	"github.com/folio-hq/folio/internal/shared/logger"
)

// AccountRepository implements account.Repository with GORM.
type AccountRepository struct {
	db     *gorm.DB
	mapper mappers.AccountMapper
	logger logger.Interface
}

func NewAccountRepository(db *gorm.DB, logger logger.Interface) account.Repository {
	return &AccountRepository{
		db:     db,
		mapper: mappers.NewAccountMapper(),
		logger: logger,
	}
}

func (r *AccountRepository) Create(ctx context.Context, entity *account.Account) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create account in database", "error", err)
		return fmt.Errorf("failed to create account: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set account ID: %w", err)
	}

	r.logger.Infow("account created", "id", model.ID, "subdomain", model.Subdomain)
	return nil
}

func (r *AccountRepository) Update(ctx context.Context, entity *account.Account) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update account", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	return r.first(ctx, "id", r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	return r.first(ctx, "email", r.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))))
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	return r.first(ctx, "username", r.db.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)))
}

func (r *AccountRepository) GetBySubdomain(ctx context.Context, subdomain string) (*account.Account, error) {
	return r.first(ctx, "subdomain", r.db.WithContext(ctx).Where("LOWER(subdomain) = ?", strings.ToLower(subdomain)))
}

func (r *AccountRepository) GetActiveBySubdomain(ctx context.Context, subdomain string) (*account.Account, error) {
	query := r.db.WithContext(ctx).
		Where("LOWER(subdomain) = ?", strings.ToLower(subdomain)).
		Where("is_active = ?", true)
	return r.first(ctx, "active subdomain", query)
}

func (r *AccountRepository) first(ctx context.Context, by string, query *gorm.DB) (*account.Account, error) {
	var model models.AccountModel
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get account", "by", by, "error", err)
		return nil, fmt.Errorf("failed to get account by %s: %w", by, err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map account model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map account: %w", err)
	}
	return entity, nil
}

func (r *AccountRepository) UpdateTier(ctx context.Context, id uint, tier entitlement.PlanID, expiresAt *time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"tier":            tier.String(),
			"tier_expires_at": expiresAt,
			"updated_at":      time.Now().UTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update account tier", "id", id, "tier", tier, "error", result.Error)
		return fmt.Errorf("failed to update account tier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) List(ctx context.Context, filter account.ListFilter) ([]*account.Account, int64, error) {
	var accountModels []*models.AccountModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.AccountModel{}).
		Scopes(db.Search(filter.Search, "username", "email", "full_name", "subdomain"))

	if filter.Tier != "" {
		query = query.Where("tier = ?", filter.Tier)
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at >= ?", *filter.CreatedAfter)
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count accounts", "error", err)
		return nil, 0, fmt.Errorf("failed to count accounts: %w", err)
	}

	if err := query.Scopes(db.NewestFirst(), db.Paginate(filter.Page, filter.PageSize)).Find(&accountModels).Error; err != nil {
		r.logger.Errorw("failed to list accounts", "error", err)
		return nil, 0, fmt.Errorf("failed to list accounts: %w", err)
	}

	entities, err := r.mapper.ToEntities(accountModels)
	if err != nil {
		r.logger.Errorw("failed to map account models to entities", "error", err)
		return nil, 0, fmt.Errorf("failed to map accounts: %w", err)
	}
	return entities, total, nil
}

func (r *AccountRepository) CountByTier(ctx context.Context) (map[entitlement.PlanID]int64, error) {
	var rows []struct {
		Tier  string
		Total int64
	}
	if err := r.db.WithContext(ctx).Model(&models.AccountModel{}).
		Select("tier, COUNT(*) AS total").
		Group("tier").
		Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to count accounts by tier", "error", err)
		return nil, fmt.Errorf("failed to count accounts by tier: %w", err)
	}

	counts := make(map[entitlement.PlanID]int64, len(rows))
	for _, row := range rows {
		counts[entitlement.PlanID(row.Tier)] = row.Total
	}
	return counts, nil
}
