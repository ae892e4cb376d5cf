package dto

import (
	"time"

	"github.com/folio-hq/folio/internal/domain/entitlement"
	"github.com/folio-hq/folio/internal/domain/subscription"
)

type SubscriptionDTO struct {
	ID            uint                  `json:"id"`
	UserID        uint                  `json:"userId"`
	PlanID        string                `json:"planId"`
	Status        string                `json:"status"`
	StartDate     time.Time             `json:"startDate"`
	EndDate       time.Time             `json:"endDate"`
	AutoRenew     bool                  `json:"autoRenew"`
	PaymentMethod string                `json:"paymentMethod"`
	PaymentID     string                `json:"paymentId,omitempty"`
	Amount        float64               `json:"amount"`
	Currency      string                `json:"currency"`
	BillingCycle  string                `json:"billingCycle"`
	Features      entitlement.Features  `json:"features"`
	Metadata      subscription.Metadata `json:"metadata"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// TransitionDTO answers upgrade, cancel and reactivate.
type TransitionDTO struct {
	Message      string           `json:"message"`
	Subscription *SubscriptionDTO `json:"subscription"`
}

// LimitsDTO reports how much of a plan limit an account has used.
// Unlimited kinds only carry hasLimit, limit and message.
type LimitsDTO struct {
	HasLimit     bool   `json:"hasLimit"`
	Limit        int    `json:"limit"`
	CurrentCount *int64 `json:"currentCount,omitempty"`
	Remaining    *int64 `json:"remaining,omitempty"`
	CanAdd       *bool  `json:"canAdd,omitempty"`
	Message      string `json:"message"`
}

func ToSubscriptionDTO(s *subscription.Subscription) *SubscriptionDTO {
	if s == nil {
		return nil
	}
	return &SubscriptionDTO{
		ID:            s.ID(),
		UserID:        s.AccountID(),
		PlanID:        s.PlanID().String(),
		Status:        s.Status().String(),
		StartDate:     s.StartDate(),
		EndDate:       s.EndDate(),
		AutoRenew:     s.AutoRenew(),
		PaymentMethod: string(s.PaymentMethod()),
		PaymentID:     s.PaymentID(),
		Amount:        s.Amount(),
		Currency:      s.Currency(),
		BillingCycle:  string(s.BillingCycle()),
		Features:      s.Features(),
		Metadata:      s.Metadata(),
		CreatedAt:     s.CreatedAt(),
		UpdatedAt:     s.UpdatedAt(),
	}
}

func ToSubscriptionDTOs(subs []*subscription.Subscription) []*SubscriptionDTO {
	out := make([]*SubscriptionDTO, 0, len(subs))
	for _, s := range subs {
		out = append(out, ToSubscriptionDTO(s))
	}
	return out
}
