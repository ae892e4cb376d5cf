package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/folio-hq/folio/internal/shared/logger"
)

const subscriptionEventChannel = "folio:subscription:events"

// RedisPublisher fans events out over redis pub/sub when no broker is
// configured.
type RedisPublisher struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisPublisher(client *redis.Client, log logger.Interface) *RedisPublisher {
	return &RedisPublisher{client: client, logger: log}
}

func (p *RedisPublisher) Publish(ctx context.Context, event SubscriptionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.client.Publish(ctx, subscriptionEventChannel, data).Err(); err != nil {
		p.logger.Errorw("failed to publish subscription event",
			"type", event.Type,
			"account_id", event.AccountID,
			"error", err,
		)
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Subscribe calls handler for every event until ctx is done.
func (p *RedisPublisher) Subscribe(ctx context.Context, handler func(SubscriptionEvent)) error {
	sub := p.client.Subscribe(ctx, subscriptionEventChannel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel: %w", err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var event SubscriptionEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				p.logger.Warnw("failed to unmarshal subscription event", "payload", msg.Payload, "error", err)
				continue
			}
			handler(event)
		}
	}
}

func (p *RedisPublisher) Close() error { return nil }
