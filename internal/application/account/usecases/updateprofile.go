package usecases

import (
	"context"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/folio-hq/folio/internal/application/account/dto"
	"github.com/folio-hq/folio/internal/domain/account"
	apperrors "github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

// UpdateProfileCommand leaves nil fields unchanged.
type UpdateProfileCommand struct {
	AccountID      uint
	FullName       *string
	Email          *string
	ProfilePicture *string
}

type UpdateProfileUseCase struct {
	accounts account.Repository
	sites    SiteInvalidator
	logger   logger.Interface
}

func NewUpdateProfileUseCase(accounts account.Repository, sites SiteInvalidator, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{accounts: accounts, sites: sites, logger: logger}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error) {
	acc, err := uc.accounts.GetByID(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to get account", "error", err, "account_id", cmd.AccountID)
		return nil, apperrors.NewInternalError("Failed to update profile")
	}
	if acc == nil {
		return nil, apperrors.NewNotFoundError("User not found")
	}

	if cmd.Email != nil && strings.TrimSpace(*cmd.Email) != "" {
		wanted := strings.ToLower(strings.TrimSpace(*cmd.Email))
		other, err := uc.accounts.GetByEmail(ctx, wanted)
		if err != nil {
			uc.logger.Errorw("failed to check email", "error", err)
			return nil, apperrors.NewInternalError("Failed to update profile")
		}
		if other != nil && other.ID() != acc.ID() {
			return nil, apperrors.NewValidationError("Email already exists")
		}
	}

	if cmd.FullName != nil {
		normalized := norm.NFC.String(*cmd.FullName)
		cmd.FullName = &normalized
	}
	acc.UpdateProfile(cmd.FullName, cmd.Email, cmd.ProfilePicture)

	if err := uc.accounts.Update(ctx, acc); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewValidationError("Email already exists")
		}
		uc.logger.Errorw("failed to update account", "error", err, "account_id", acc.ID())
		return nil, apperrors.NewInternalError("Failed to update profile")
	}

	if uc.sites != nil {
		if err := uc.sites.Invalidate(ctx, acc.ID()); err != nil {
			uc.logger.Warnw("failed to invalidate site cache", "error", err, "account_id", acc.ID())
		}
	}

	return dto.ToUserDTO(acc), nil
}
