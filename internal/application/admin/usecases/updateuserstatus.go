package usecases

import (
	"context"

	accountdto "github.com/folio-hq/folio/internal/application/account/dto"
	"github.com/folio-hq/folio/internal/application/admin/dto"
	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

// SiteInvalidator drops a tenant's cached public site.
type SiteInvalidator interface {
	Invalidate(ctx context.Context, ownerID uint) error
}

type UpdateUserStatusCommand struct {
	AccountID uint
	IsActive  bool
}

// UpdateUserStatusUseCase activates or deactivates an account. A deactivated
// account stops resolving as a tenant and fails authentication.
type UpdateUserStatusUseCase struct {
	accounts account.Repository
	sites    SiteInvalidator
	logger   logger.Interface
}

func NewUpdateUserStatusUseCase(
	accounts account.Repository,
	sites SiteInvalidator,
	log logger.Interface,
) *UpdateUserStatusUseCase {
	return &UpdateUserStatusUseCase{
		accounts: accounts,
		sites:    sites,
		logger:   log,
	}
}

func (uc *UpdateUserStatusUseCase) Execute(ctx context.Context, cmd UpdateUserStatusCommand) (*dto.UserStatusDTO, error) {
	a, err := uc.accounts.GetByID(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "account_id", cmd.AccountID, "error", err)
		return nil, errors.NewInternalError("Server error")
	}
	if a == nil {
		return nil, errors.NewNotFoundError("User not found")
	}

	a.SetActive(cmd.IsActive)
	if err := uc.accounts.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to update user status", "account_id", cmd.AccountID, "error", err)
		return nil, errors.NewInternalError("Server error")
	}

	if uc.sites != nil {
		if err := uc.sites.Invalidate(ctx, a.ID()); err != nil {
			uc.logger.Warnw("failed to invalidate site cache", "account_id", a.ID(), "error", err)
		}
	}

	message := "User deactivated successfully"
	if cmd.IsActive {
		message = "User activated successfully"
	}
	uc.logger.Infow("user status updated", "account_id", a.ID(), "is_active", cmd.IsActive)

	return &dto.UserStatusDTO{
		Message: message,
		User:    accountdto.ToUserDTO(a),
	}, nil
}
