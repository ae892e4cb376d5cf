package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/domain/subscription"
	"github.com/folio-hq/folio/internal/infrastructure/persistence/models"
	"github.com/folio-hq/folio/internal/shared/mapper"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	var features entitlement.Features
	if len(model.Features) > 0 {
		if err := json.Unmarshal(model.Features, &features); err != nil {
			return nil, fmt.Errorf("failed to unmarshal features: %w", err)
		}
	}

	var metadata subscription.Metadata
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}

	entity, err := subscription.ReconstructSubscription(subscription.ReconstructParams{
		ID:            model.ID,
		AccountID:     model.AccountID,
		PlanID:        entitlement.PlanID(model.PlanID),
		Status:        subscription.Status(model.Status),
		StartDate:     model.StartDate,
		EndDate:       model.EndDate,
		AutoRenew:     model.AutoRenew,
		PaymentMethod: subscription.PaymentMethod(model.PaymentMethod),
		PaymentID:     model.PaymentID,
		Amount:        model.Amount,
		Currency:      model.Currency,
		BillingCycle:  subscription.BillingCycle(model.BillingCycle),
		Features:      features,
		Metadata:      metadata,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}
	return entity, nil
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	features, err := json.Marshal(entity.Features())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal features: %w", err)
	}

	var metadataJSON datatypes.JSON
	if md := entity.Metadata(); md != (subscription.Metadata{}) {
		data, err := json.Marshal(md)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata: %w", err)
		}
		metadataJSON = data
	}

	return &models.SubscriptionModel{
		ID:            entity.ID(),
		AccountID:     entity.AccountID(),
		PlanID:        entity.PlanID().String(),
		Status:        entity.Status().String(),
		StartDate:     entity.StartDate(),
		EndDate:       entity.EndDate(),
		AutoRenew:     entity.AutoRenew(),
		PaymentMethod: string(entity.PaymentMethod()),
		PaymentID:     entity.PaymentID(),
		Amount:        entity.Amount(),
		Currency:      entity.Currency(),
		BillingCycle:  string(entity.BillingCycle()),
		Features:      datatypes.JSON(features),
		Metadata:      metadataJSON,
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

func (m *SubscriptionMapperImpl) ToEntities(modelList []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.SubscriptionModel) uint { return model.ID })
}
