package usecases

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/folio-hq/folio/internal/application/admin/dto"
	"github.com/folio-hq/folio/internal/domain/subscription"
	"github.com/folio-hq/folio/internal/shared/biztime"
	"github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
)

const (
	defaultAnalyticsDays = 30
	maxAnalyticsDays     = 365
)

type GetSubscriptionAnalyticsUseCase struct {
	subscriptions subscription.Repository
	logger        logger.Interface
}

func NewGetSubscriptionAnalyticsUseCase(subscriptions subscription.Repository, log logger.Interface) *GetSubscriptionAnalyticsUseCase {
	return &GetSubscriptionAnalyticsUseCase{
		subscriptions: subscriptions,
		logger:        log,
	}
}

// Execute reports daily subscription creations per plan and the churn rate
// (rows cancelled in the window over currently active rows) for the last
// days days.
func (uc *GetSubscriptionAnalyticsUseCase) Execute(ctx context.Context, days int) (*dto.SubscriptionAnalyticsDTO, error) {
	if days <= 0 {
		days = defaultAnalyticsDays
	}
	if days > maxAnalyticsDays {
		days = maxAnalyticsDays
	}
	since := biztime.NowUTC().AddDate(0, 0, -days)

	created, err := uc.subscriptions.ListCreatedSince(ctx, since)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions for analytics", "since", since, "error", err)
		return nil, errors.NewInternalError("Server error")
	}

	cancelled, err := uc.subscriptions.CountCancelledSince(ctx, since)
	if err != nil {
		uc.logger.Errorw("failed to count cancellations", "since", since, "error", err)
		return nil, errors.NewInternalError("Server error")
	}

	byStatus, err := uc.subscriptions.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count subscriptions by status", "error", err)
		return nil, errors.NewInternalError("Server error")
	}

	var churn float64
	if active := byStatus[subscription.StatusActive]; active > 0 {
		churn = round2(float64(cancelled) / float64(active) * 100)
	}

	return &dto.SubscriptionAnalyticsDTO{
		SubscriptionTrends: Trends(created),
		ChurnRate:          churn,
		Period:             fmt.Sprintf("%d days", days),
	}, nil
}

// Trends groups subscriptions by creation day and plan, ordered by day then
// plan.
func Trends(subs []*subscription.Subscription) []dto.TrendPointDTO {
	type key struct {
		date string
		plan string
	}
	counts := make(map[key]int)
	for _, sub := range subs {
		k := key{date: sub.CreatedAt().UTC().Format(time.DateOnly), plan: sub.PlanID().String()}
		counts[k]++
	}

	points := make([]dto.TrendPointDTO, 0, len(counts))
	for k, n := range counts {
		points = append(points, dto.TrendPointDTO{Date: k.date, PlanID: k.plan, Count: n})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Date != points[j].Date {
			return points[i].Date < points[j].Date
		}
		return points[i].PlanID < points[j].PlanID
	})
	return points
}
