package redis

import (
	"context"

	"go.uber.org/zap"

	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
)

// PublisherAdapter publishes todo events as JSON on a Redis pub/sub channel
type PublisherAdapter struct {
	client    *redis.Client
	publisher *redis.Publisher
	health    *redis.HealthChecker
	channel   string
}

var _ queue.EventPublisher = (*PublisherAdapter)(nil)

func NewPublisherAdapter(client *redis.Client, namespace string, channel string) *PublisherAdapter {
	return &PublisherAdapter{
		client:    client,
		publisher: redis.NewPublisher(client, redis.NewPubSubConfig().WithChannelNamespace(namespace)),
		health:    redis.NewHealthChecker(client),
		channel:   channel,
	}
}

func (adapter *PublisherAdapter) Publish(ctx context.Context, event model.TodoEvent) error {
	receivers, err := adapter.publisher.PublishJSON(ctx, adapter.channel, event)
	if err != nil {
		return err
	}

	log.Debug(msg.GetMessage("events.published", event.Type, event.TodoID),
		zap.String("channel", adapter.publisher.ChannelName(adapter.channel)),
		zap.Int64("receivers", receivers))
	return nil
}

func (adapter *PublisherAdapter) Health(ctx context.Context) model.ComponentHealthStatus {
	check := adapter.health.Check(ctx)
	check.Details["driver"] = "redis"
	check.Details["channel"] = adapter.publisher.ChannelName(adapter.channel)
	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(check.Status),
		Details: check.Details,
	}
}

func (adapter *PublisherAdapter) Close() error {
	return adapter.client.Close()
}
