package usecases

import (
	"context"

	"github.com/folio-hq/folio/internal/infrastructure/messaging"
	"github.com/folio-hq/folio/internal/shared/logger"
)

// EventPublisher is the subset of messaging.Publisher the use cases need.
type EventPublisher interface {
	Publish(ctx context.Context, event messaging.SubscriptionEvent) error
}

// publish delivers event without failing the calling transition.
func publish(ctx context.Context, p EventPublisher, log logger.Interface, event messaging.SubscriptionEvent) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, event); err != nil {
		log.Warnw("failed to publish subscription event",
			"error", err,
			"type", event.Type,
			"account_id", event.AccountID,
		)
	}
}
