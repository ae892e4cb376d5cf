package messaging

import (
	"context"
	"time"
)

// SubscriptionEventType names a subscription lifecycle transition.
type SubscriptionEventType string

const (
	SubscriptionUpgraded    SubscriptionEventType = "upgraded"
	SubscriptionCancelled   SubscriptionEventType = "cancelled"
	SubscriptionReactivated SubscriptionEventType = "reactivated"
	SubscriptionExpired     SubscriptionEventType = "expired"
)

type SubscriptionEvent struct {
	Type           SubscriptionEventType `json:"type"`
	AccountID      uint                  `json:"account_id"`
	SubscriptionID uint                  `json:"subscription_id"`
	PlanID         string                `json:"plan_id"`
	Timestamp      int64                 `json:"timestamp"`
}

func NewSubscriptionEvent(t SubscriptionEventType, accountID, subscriptionID uint, planID string) SubscriptionEvent {
	return SubscriptionEvent{
		Type:           t,
		AccountID:      accountID,
		SubscriptionID: subscriptionID,
		PlanID:         planID,
		Timestamp:      time.Now().Unix(),
	}
}

// RoutingKey is the topic the event is published under.
func (e SubscriptionEvent) RoutingKey() string {
	return "subscription." + string(e.Type)
}

// Publisher delivers subscription events to interested consumers.
// Delivery is best-effort; callers log failures and carry on.
type Publisher interface {
	Publish(ctx context.Context, event SubscriptionEvent) error
	Close() error
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, SubscriptionEvent) error { return nil }
func (NopPublisher) Close() error                                     { return nil }
