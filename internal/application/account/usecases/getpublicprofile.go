package usecases

import (
	"context"

	"github.com/folio-hq/folio/internal/application/account/dto"
	"github.com/folio-hq/folio/internal/domain/account"
	apperrors "github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

// GetPublicProfileUseCase looks up an active account by subdomain for
// rendering its site.
type GetPublicProfileUseCase struct {
	accounts account.Repository
	logger   logger.Interface
}

func NewGetPublicProfileUseCase(accounts account.Repository, logger logger.Interface) *GetPublicProfileUseCase {
	return &GetPublicProfileUseCase{accounts: accounts, logger: logger}
}

func (uc *GetPublicProfileUseCase) Execute(ctx context.Context, subdomain string) (*dto.PublicProfileDTO, error) {
	acc, err := uc.accounts.GetActiveBySubdomain(ctx, subdomain)
	if err != nil {
		uc.logger.Errorw("failed to get account by subdomain", "error", err, "subdomain", subdomain)
		return nil, apperrors.NewInternalError("Failed to get portfolio")
	}
	if acc == nil {
		return nil, apperrors.NewNotFoundError("Portfolio not found")
	}
	return dto.ToPublicProfileDTO(acc), nil
}
