package handlers

import (
	"context"

	"github.com/folio-hq/folio/internal/application/account/dto"
	"github.com/folio-hq/folio/internal/application/account/usecases"
)

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*dto.AuthDTO, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*dto.AuthDTO, error)
}

type getProfileUseCase interface {
	Execute(ctx context.Context, accountID uint) (*dto.UserDTO, error)
}

type updateProfileUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProfileCommand) (*dto.UserDTO, error)
}

type changePasswordUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangePasswordCommand) error
}

type checkSubdomainUseCase interface {
	Execute(ctx context.Context, subdomain string) (*dto.SubdomainAvailabilityDTO, error)
}

type getPublicProfileUseCase interface {
	Execute(ctx context.Context, subdomain string) (*dto.PublicProfileDTO, error)
}
