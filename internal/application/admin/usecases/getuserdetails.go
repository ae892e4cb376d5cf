package usecases

import (
	"context"

	accountdto "github.com/folio-hq/folio/internal/application/account/dto"
	"github.com/folio-hq/folio/internal/application/admin/dto"
	subscriptiondto "github.com/folio-hq/folio/internal/application/subscription/dto"
	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/domain/subscription"
	"github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

type GetUserDetailsUseCase struct {
	accounts      account.Repository
	subscriptions subscription.Repository
	portfolios    PortfolioCounter
	logger        logger.Interface
}

func NewGetUserDetailsUseCase(
	accounts account.Repository,
	subscriptions subscription.Repository,
	portfolios PortfolioCounter,
	log logger.Interface,
) *GetUserDetailsUseCase {
	return &GetUserDetailsUseCase{
		accounts:      accounts,
		subscriptions: subscriptions,
		portfolios:    portfolios,
		logger:        log,
	}
}

func (uc *GetUserDetailsUseCase) Execute(ctx context.Context, accountID uint) (*dto.UserDetailsDTO, error) {
	a, err := uc.accounts.GetByID(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "account_id", accountID, "error", err)
		return nil, errors.NewInternalError("Server error")
	}
	if a == nil {
		return nil, errors.NewNotFoundError("User not found")
	}

	sub, err := uc.subscriptions.GetCurrentByAccountID(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to get user subscription", "account_id", accountID, "error", err)
		return nil, errors.NewInternalError("Server error")
	}

	count, err := uc.portfolios.Count(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to count user portfolios", "account_id", accountID, "error", err)
		return nil, errors.NewInternalError("Server error")
	}

	return &dto.UserDetailsDTO{
		User:           accountdto.ToUserDTO(a),
		Subscription:   subscriptiondto.ToSubscriptionDTO(sub),
		PortfolioCount: count,
	}, nil
}
