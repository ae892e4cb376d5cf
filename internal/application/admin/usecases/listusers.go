package usecases

import (
	"context"
	"strings"

	accountdto "github.com/folio-hq/folio/internal/application/account/dto"
	"github.com/folio-hq/folio/internal/application/admin/dto"
	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
	"github.com/folio-hq/folio/internal/shared/utils"
)

// ListUsersCommand filters the admin user list. Status is "active",
// "inactive" or empty.
type ListUsersCommand struct {
	Page         int
	PageSize     int
	Search       string
	Subscription string
	Status       string
}

type ListUsersUseCase struct {
	accounts account.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(accounts account.Repository, log logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		accounts: accounts,
		logger:   log,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, cmd ListUsersCommand) (*dto.UserListDTO, error) {
	filter := account.ListFilter{
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
		Search:   strings.TrimSpace(cmd.Search),
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	if cmd.Subscription != "" {
		plan := entitlement.PlanID(strings.ToLower(cmd.Subscription))
		if !plan.IsValid() {
			return nil, errors.NewValidationError("Invalid subscription filter")
		}
		filter.Tier = plan.String()
	}

	switch strings.ToLower(cmd.Status) {
	case "":
	case "active":
		active := true
		filter.Active = &active
	case "inactive":
		active := false
		filter.Active = &active
	default:
		return nil, errors.NewValidationError("Invalid status filter")
	}

	accounts, total, err := uc.accounts.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("Server error")
	}

	users := make([]*accountdto.UserDTO, 0, len(accounts))
	for _, a := range accounts {
		users = append(users, accountdto.ToUserDTO(a))
	}

	totalPages := utils.TotalPages(total, filter.PageSize)
	return &dto.UserListDTO{
		Users: users,
		Pagination: dto.PaginationDTO{
			CurrentPage: filter.Page,
			TotalPages:  totalPages,
			TotalUsers:  total,
			HasNext:     filter.Page < totalPages,
			HasPrev:     filter.Page > 1,
		},
	}, nil
}
