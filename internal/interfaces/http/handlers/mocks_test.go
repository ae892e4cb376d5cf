package handlers

import (
	"context"

	accountdto "github.com/folio-hq/folio/internal/application/account/dto"
	accountusecases "github.com/folio-hq/folio/internal/application/account/usecases"
	subdto "github.com/folio-hq/folio/internal/application/subscription/dto"
	subusecases "github.com/folio-hq/folio/internal/application/subscription/usecases"
	"github.com/folio-hq/folio/internal/domain/entitlement"
)

type mockRegisterUseCase struct {
	ExecuteFunc func(ctx context.Context, cmd accountusecases.RegisterCommand) (*accountdto.AuthDTO, error)
}

func (m *mockRegisterUseCase) Execute(ctx context.Context, cmd accountusecases.RegisterCommand) (*accountdto.AuthDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockLoginUseCase struct {
	ExecuteFunc func(ctx context.Context, cmd accountusecases.LoginCommand) (*accountdto.AuthDTO, error)
}

func (m *mockLoginUseCase) Execute(ctx context.Context, cmd accountusecases.LoginCommand) (*accountdto.AuthDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockGetProfileUseCase struct {
	ExecuteFunc func(ctx context.Context, accountID uint) (*accountdto.UserDTO, error)
}

func (m *mockGetProfileUseCase) Execute(ctx context.Context, accountID uint) (*accountdto.UserDTO, error) {
	return m.ExecuteFunc(ctx, accountID)
}

type mockUpdateProfileUseCase struct {
	ExecuteFunc func(ctx context.Context, cmd accountusecases.UpdateProfileCommand) (*accountdto.UserDTO, error)
}

func (m *mockUpdateProfileUseCase) Execute(ctx context.Context, cmd accountusecases.UpdateProfileCommand) (*accountdto.UserDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockChangePasswordUseCase struct {
	ExecuteFunc func(ctx context.Context, cmd accountusecases.ChangePasswordCommand) error
}

func (m *mockChangePasswordUseCase) Execute(ctx context.Context, cmd accountusecases.ChangePasswordCommand) error {
	return m.ExecuteFunc(ctx, cmd)
}

type mockCheckSubdomainUseCase struct {
	ExecuteFunc func(ctx context.Context, subdomain string) (*accountdto.SubdomainAvailabilityDTO, error)
}

func (m *mockCheckSubdomainUseCase) Execute(ctx context.Context, subdomain string) (*accountdto.SubdomainAvailabilityDTO, error) {
	return m.ExecuteFunc(ctx, subdomain)
}

type mockGetPublicProfileUseCase struct {
	ExecuteFunc func(ctx context.Context, subdomain string) (*accountdto.PublicProfileDTO, error)
}

func (m *mockGetPublicProfileUseCase) Execute(ctx context.Context, subdomain string) (*accountdto.PublicProfileDTO, error) {
	return m.ExecuteFunc(ctx, subdomain)
}

type mockCurrentSubscriptionUseCase struct {
	ExecuteFunc func(ctx context.Context, accountID uint) (*subdto.SubscriptionDTO, error)
}

func (m *mockCurrentSubscriptionUseCase) Execute(ctx context.Context, accountID uint) (*subdto.SubscriptionDTO, error) {
	return m.ExecuteFunc(ctx, accountID)
}

type mockHistoryUseCase struct {
	ExecuteFunc func(ctx context.Context, accountID uint) ([]*subdto.SubscriptionDTO, error)
}

func (m *mockHistoryUseCase) Execute(ctx context.Context, accountID uint) ([]*subdto.SubscriptionDTO, error) {
	return m.ExecuteFunc(ctx, accountID)
}

type mockPlansUseCase struct {
	offerings []entitlement.Offering
}

func (m *mockPlansUseCase) Execute() []entitlement.Offering {
	return m.offerings
}

type mockUpgradeUseCase struct {
	ExecuteFunc func(ctx context.Context, cmd subusecases.UpgradeSubscriptionCommand) (*subdto.TransitionDTO, error)
}

func (m *mockUpgradeUseCase) Execute(ctx context.Context, cmd subusecases.UpgradeSubscriptionCommand) (*subdto.TransitionDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockCancelUseCase struct {
	ExecuteFunc func(ctx context.Context, cmd subusecases.CancelSubscriptionCommand) (*subdto.TransitionDTO, error)
}

func (m *mockCancelUseCase) Execute(ctx context.Context, cmd subusecases.CancelSubscriptionCommand) (*subdto.TransitionDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockReactivateUseCase struct {
	ExecuteFunc func(ctx context.Context, cmd subusecases.ReactivateSubscriptionCommand) (*subdto.TransitionDTO, error)
}

func (m *mockReactivateUseCase) Execute(ctx context.Context, cmd subusecases.ReactivateSubscriptionCommand) (*subdto.TransitionDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockLimitsUseCase struct {
	ExecuteFunc func(ctx context.Context, accountID uint, resourceType string) (*subdto.LimitsDTO, error)
}

func (m *mockLimitsUseCase) Execute(ctx context.Context, accountID uint, resourceType string) (*subdto.LimitsDTO, error) {
	return m.ExecuteFunc(ctx, accountID, resourceType)
}
