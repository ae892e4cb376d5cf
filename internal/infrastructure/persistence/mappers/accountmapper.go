package mappers

import (
	"fmt"

	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/infrastructure/persistence/models"
	"github.com/folio-hq/folio/internal/shared/mapper"
)

type AccountMapper interface {
	ToEntity(model *models.AccountModel) (*account.Account, error)
	ToModel(entity *account.Account) *models.AccountModel
	ToEntities(models []*models.AccountModel) ([]*account.Account, error)
}

type AccountMapperImpl struct{}

func NewAccountMapper() AccountMapper {
	return &AccountMapperImpl{}
}

func (m *AccountMapperImpl) ToEntity(model *models.AccountModel) (*account.Account, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := account.ReconstructAccount(account.ReconstructParams{
		ID:                     model.ID,
		Username:               model.Username,
		Email:                  model.Email,
		Subdomain:              model.Subdomain,
		PasswordHash:           model.PasswordHash,
		FullName:               model.FullName,
		ProfilePicture:         model.ProfilePicture,
		IsActive:               model.IsActive,
		Tier:                   entitlement.PlanID(model.Tier),
		TierExpiresAt:          model.TierExpiresAt,
		EmailVerified:          model.EmailVerified,
		EmailVerificationToken: model.EmailVerificationToken,
		LastLoginAt:            model.LastLoginAt,
		CreatedAt:              model.CreatedAt,
		UpdatedAt:              model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct account entity: %w", err)
	}
	return entity, nil
}

func (m *AccountMapperImpl) ToModel(entity *account.Account) *models.AccountModel {
	if entity == nil {
		return nil
	}
	return &models.AccountModel{
		ID:                     entity.ID(),
		Username:               entity.Username(),
		Email:                  entity.Email(),
		Subdomain:              entity.Subdomain(),
		PasswordHash:           entity.PasswordHash(),
		FullName:               entity.FullName(),
		ProfilePicture:         entity.ProfilePicture(),
		IsActive:               entity.IsActive(),
		Tier:                   entity.Tier().String(),
		TierExpiresAt:          entity.TierExpiresAt(),
		EmailVerified:          entity.EmailVerified(),
		EmailVerificationToken: entity.EmailVerificationToken(),
		LastLoginAt:            entity.LastLoginAt(),
		CreatedAt:              entity.CreatedAt(),
		UpdatedAt:              entity.UpdatedAt(),
	}
}

func (m *AccountMapperImpl) ToEntities(modelList []*models.AccountModel) ([]*account.Account, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.AccountModel) uint { return model.ID })
}
