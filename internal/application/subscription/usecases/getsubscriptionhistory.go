package usecases

import (
	"context"

	"github.com/folio-hq/folio/internal/application/subscription/dto"
	"github.com/folio-hq/folio/internal/domain/subscription"
	apperrors "github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

const historyLimit = 20

type GetSubscriptionHistoryUseCase struct {
	subscriptions subscription.Repository
	logger        logger.Interface
}

func NewGetSubscriptionHistoryUseCase(subscriptions subscription.Repository, logger logger.Interface) *GetSubscriptionHistoryUseCase {
	return &GetSubscriptionHistoryUseCase{subscriptions: subscriptions, logger: logger}
}

// Execute returns the newest rows first.
func (uc *GetSubscriptionHistoryUseCase) Execute(ctx context.Context, accountID uint) ([]*dto.SubscriptionDTO, error) {
	subs, err := uc.subscriptions.ListByAccountID(ctx, accountID, historyLimit)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err, "account_id", accountID)
		return nil, apperrors.NewInternalError("Failed to get subscription history")
	}
	return dto.ToSubscriptionDTOs(subs), nil
}
