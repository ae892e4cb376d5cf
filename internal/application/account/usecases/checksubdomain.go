package usecases

import (
	"context"

	"github.com/folio-hq/folio/internal/application/account/dto"
	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/domain/tenancy"
	apperrors "github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

type CheckSubdomainUseCase struct {
	accounts account.Repository
	reserved tenancy.ReservedSet
	logger   logger.Interface
}

func NewCheckSubdomainUseCase(accounts account.Repository, reserved tenancy.ReservedSet, logger logger.Interface) *CheckSubdomainUseCase {
	return &CheckSubdomainUseCase{accounts: accounts, reserved: reserved, logger: logger}
}

func (uc *CheckSubdomainUseCase) Execute(ctx context.Context, subdomain string) (*dto.SubdomainAvailabilityDTO, error) {
	if err := tenancy.ValidateSubdomain(subdomain, uc.reserved); err != nil {
		appErr := apperrors.GetAppError(subdomainError(err))
		return &dto.SubdomainAvailabilityDTO{Available: false, Message: appErr.Message, Invalid: true}, nil
	}

	existing, err := uc.accounts.GetBySubdomain(ctx, subdomain)
	if err != nil {
		uc.logger.Errorw("failed to check subdomain", "error", err, "subdomain", subdomain)
		return nil, apperrors.NewInternalError("Failed to check subdomain")
	}

	if existing != nil {
		return &dto.SubdomainAvailabilityDTO{Available: false, Message: "Subdomain is already taken"}, nil
	}
	return &dto.SubdomainAvailabilityDTO{Available: true, Message: "Subdomain is available"}, nil
}
