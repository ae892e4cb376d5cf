package handlers

import (
	"context"

	"github.com/folio-hq/folio/internal/application/subscription/dto"
	"github.com/folio-hq/folio/internal/application/subscription/usecases"
	"github.com/folio-hq/folio/internal/domain/entitlement"
)

type getCurrentSubscriptionUseCase interface {
	Execute(ctx context.Context, accountID uint) (*dto.SubscriptionDTO, error)
}

type getSubscriptionHistoryUseCase interface {
	Execute(ctx context.Context, accountID uint) ([]*dto.SubscriptionDTO, error)
}

type getPlansUseCase interface {
	Execute() []entitlement.Offering
}

type upgradeSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpgradeSubscriptionCommand) (*dto.TransitionDTO, error)
}

type cancelSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.CancelSubscriptionCommand) (*dto.TransitionDTO, error)
}

type reactivateSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.ReactivateSubscriptionCommand) (*dto.TransitionDTO, error)
}

type checkLimitsUseCase interface {
	Execute(ctx context.Context, accountID uint, resourceType string) (*dto.LimitsDTO, error)
}
