package usecases

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/folio-hq/folio/internal/application/admin/dto"
	"github.com/folio-hq/folio/internal/domain/account"
	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/domain/subscription"
	"github.com/folio-hq/folio/internal/shared/biztime"
	"github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

const recentRegistrationWindow = 30 * 24 * time.Hour

// GetStatisticsUseCase builds the admin dashboard snapshot.
type GetStatisticsUseCase struct {
	accounts      account.Repository
	subscriptions subscription.Repository
	portfolios    PortfolioCounter
	logger        logger.Interface
}

func NewGetStatisticsUseCase(
	accounts account.Repository,
	subscriptions subscription.Repository,
	portfolios PortfolioCounter,
	log logger.Interface,
) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{
		accounts:      accounts,
		subscriptions: subscriptions,
		portfolios:    portfolios,
		logger:        log,
	}
}

func (uc *GetStatisticsUseCase) Execute(ctx context.Context) (*dto.StatisticsDTO, error) {
	recentSince := biztime.NowUTC().Add(-recentRegistrationWindow)
	active := true

	var (
		totalUsers  int64
		activeUsers int64
		recentUsers int64
		byTier      map[entitlement.PlanID]int64
		byStatus    map[subscription.Status]int64
		portfolios  int64
		activeSubs  []*subscription.Subscription
	)

	g, gctx := errgroup.WithContext(ctx)

	// Users: total
	g.Go(func() error {
		_, total, err := uc.accounts.List(gctx, account.ListFilter{Page: 1, PageSize: 1})
		if err != nil {
			return errors.NewInternalError("failed to count users")
		}
		totalUsers = total
		return nil
	})

	// Users: active
	g.Go(func() error {
		_, total, err := uc.accounts.List(gctx, account.ListFilter{Page: 1, PageSize: 1, Active: &active})
		if err != nil {
			return errors.NewInternalError("failed to count active users")
		}
		activeUsers = total
		return nil
	})

	// Users: registered in the last 30 days
	g.Go(func() error {
		_, total, err := uc.accounts.List(gctx, account.ListFilter{Page: 1, PageSize: 1, CreatedAfter: &recentSince})
		if err != nil {
			return errors.NewInternalError("failed to count recent users")
		}
		recentUsers = total
		return nil
	})

	g.Go(func() error {
		counts, err := uc.accounts.CountByTier(gctx)
		if err != nil {
			return errors.NewInternalError("failed to count users by subscription")
		}
		byTier = counts
		return nil
	})

	g.Go(func() error {
		counts, err := uc.subscriptions.CountByStatus(gctx)
		if err != nil {
			return errors.NewInternalError("failed to count subscriptions")
		}
		byStatus = counts
		return nil
	})

	g.Go(func() error {
		total, err := uc.portfolios.CountAll(gctx)
		if err != nil {
			return errors.NewInternalError("failed to count portfolios")
		}
		portfolios = total
		return nil
	})

	g.Go(func() error {
		subs, err := uc.subscriptions.ListActive(gctx)
		if err != nil {
			return errors.NewInternalError("failed to list active subscriptions")
		}
		activeSubs = subs
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to build admin statistics", "error", err)
		return nil, err
	}

	var average float64
	if totalUsers > 0 {
		average = round2(float64(portfolios) / float64(totalUsers))
	}

	return &dto.StatisticsDTO{
		Users: dto.UserStatistics{
			Total:    totalUsers,
			Active:   activeUsers,
			Inactive: totalUsers - activeUsers,
			Recent:   recentUsers,
			BySubscription: map[string]int64{
				entitlement.PlanFree.String():       byTier[entitlement.PlanFree],
				entitlement.PlanPremium.String():    byTier[entitlement.PlanPremium],
				entitlement.PlanEnterprise.String(): byTier[entitlement.PlanEnterprise],
			},
		},
		Portfolios: dto.PortfolioStatistics{
			Total:          portfolios,
			AveragePerUser: average,
		},
		Subscriptions: dto.SubscriptionStatistics{
			Active:    byStatus[subscription.StatusActive],
			Cancelled: byStatus[subscription.StatusCancelled],
			Expired:   byStatus[subscription.StatusExpired],
		},
		Revenue: dto.RevenueStatistics{
			EstimatedMonthly: EstimateMonthlyRevenue(activeSubs),
			Currency:         "USD",
		},
	}, nil
}

// EstimateMonthlyRevenue sums monthly amounts and yearly amounts spread over
// twelve months. Free and lifetime rows contribute nothing.
func EstimateMonthlyRevenue(subs []*subscription.Subscription) float64 {
	var total float64
	for _, sub := range subs {
		switch sub.BillingCycle() {
		case subscription.CycleMonthly:
			total += sub.Amount()
		case subscription.CycleYearly:
			total += sub.Amount() / 12
		}
	}
	return round2(total)
}
