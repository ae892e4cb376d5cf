package usecases

import (
	"context"

	"github.com/folio-hq/folio/internal/application/account/dto"
	"github.com/folio-hq/folio/internal/domain/account"
	apperrors "github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

type GetProfileUseCase struct {
	accounts account.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(accounts account.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{accounts: accounts, logger: logger}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, accountID uint) (*dto.UserDTO, error) {
	acc, err := uc.accounts.GetByID(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to get account", "error", err, "account_id", accountID)
		return nil, apperrors.NewInternalError("Failed to get user")
	}
	if acc == nil {
		return nil, apperrors.NewNotFoundError("User not found")
	}
	return dto.ToUserDTO(acc), nil
}
