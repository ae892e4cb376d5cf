package dto

import (
	"time"

	accountdto "github.com/folio-hq/folio/internal/application/account/dto"
	subscriptiondto "github.com/folio-hq/folio/internal/application/subscription/dto"
)

// StatisticsDTO is the platform-wide snapshot shown on the admin dashboard.
type StatisticsDTO struct {
	Users         UserStatistics         `json:"users"`
	Portfolios    PortfolioStatistics    `json:"portfolios"`
	Subscriptions SubscriptionStatistics `json:"subscriptions"`
	Revenue       RevenueStatistics      `json:"revenue"`
}

type UserStatistics struct {
	Total          int64            `json:"total"`
	Active         int64            `json:"active"`
	Inactive       int64            `json:"inactive"`
	Recent         int64            `json:"recent"`
	BySubscription map[string]int64 `json:"bySubscription"`
}

type PortfolioStatistics struct {
	Total          int64   `json:"total"`
	AveragePerUser float64 `json:"averagePerUser"`
}

type SubscriptionStatistics struct {
	Active    int64 `json:"active"`
	Cancelled int64 `json:"cancelled"`
	Expired   int64 `json:"expired"`
}

type RevenueStatistics struct {
	EstimatedMonthly float64 `json:"estimatedMonthly"`
	Currency         string  `json:"currency"`
}

// PaginationDTO describes the page returned by a list query.
type PaginationDTO struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalUsers  int64 `json:"totalUsers"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

type UserListDTO struct {
	Users      []*accountdto.UserDTO `json:"users"`
	Pagination PaginationDTO         `json:"pagination"`
}

type UserDetailsDTO struct {
	User           *accountdto.UserDTO              `json:"user"`
	Subscription   *subscriptiondto.SubscriptionDTO `json:"subscription"`
	PortfolioCount int64                            `json:"portfolioCount"`
}

type UserStatusDTO struct {
	Message string              `json:"message"`
	User    *accountdto.UserDTO `json:"user"`
}

// TrendPointDTO is the number of subscriptions created on one day for one plan.
type TrendPointDTO struct {
	Date   string `json:"date"`
	PlanID string `json:"planId"`
	Count  int    `json:"count"`
}

type SubscriptionAnalyticsDTO struct {
	SubscriptionTrends []TrendPointDTO `json:"subscriptionTrends"`
	ChurnRate          float64         `json:"churnRate"`
	Period             string          `json:"period"`
}

type DatabaseHealthDTO struct {
	Status       string `json:"status"`
	ResponseTime string `json:"responseTime"`
}

type MemoryDTO struct {
	UsedMB  uint64 `json:"used"`
	TotalMB uint64 `json:"total"`
}

type SystemHealthDTO struct {
	Status     string            `json:"status"`
	Database   DatabaseHealthDTO `json:"database"`
	Memory     MemoryDTO         `json:"memory"`
	Goroutines int               `json:"goroutines"`
	Uptime     string            `json:"uptime"`
	Timestamp  time.Time         `json:"timestamp"`
}
