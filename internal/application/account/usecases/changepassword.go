package usecases

import (
	"context"

	"github.com/folio-hq/folio/internal/domain/account"
	apperrors "github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

type ChangePasswordCommand struct {
	AccountID       uint
	CurrentPassword string
	NewPassword     string
}

type ChangePasswordUseCase struct {
	accounts account.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewChangePasswordUseCase(accounts account.Repository, hasher PasswordHasher, logger logger.Interface) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{accounts: accounts, hasher: hasher, logger: logger}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	acc, err := uc.accounts.GetByID(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to get account", "error", err, "account_id", cmd.AccountID)
		return apperrors.NewInternalError("Failed to change password")
	}
	if acc == nil {
		return apperrors.NewNotFoundError("User not found")
	}

	if err := uc.hasher.Verify(cmd.CurrentPassword, acc.PasswordHash()); err != nil {
		return apperrors.NewValidationError("Current password is incorrect")
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		return apperrors.NewValidationError("New password is required")
	}
	if err := acc.ChangePasswordHash(hash); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	if err := uc.accounts.Update(ctx, acc); err != nil {
		uc.logger.Errorw("failed to update password", "error", err, "account_id", acc.ID())
		return apperrors.NewInternalError("Failed to change password")
	}

	uc.logger.Infow("password changed", "account_id", acc.ID())
	return nil
}
