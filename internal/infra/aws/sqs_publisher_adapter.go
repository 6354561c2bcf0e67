package aws

import (
	"context"

	"go.uber.org/zap"

	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/sqs"
)

// SQSPublisherAdapter adapts the pkg/sqs.Sender to the domain queue.EventPublisher interface
type SQSPublisherAdapter struct {
	sender    *sqs.Sender
	queueName string
}

var _ queue.EventPublisher = (*SQSPublisherAdapter)(nil)

func NewSQSPublisherAdapter(client sqs.SQSClient, queueName string) *SQSPublisherAdapter {
	return &SQSPublisherAdapter{
		sender:    sqs.NewSender(client),
		queueName: queueName,
	}
}

func (adapter *SQSPublisherAdapter) Publish(ctx context.Context, event model.TodoEvent) error {
	messageID, err := adapter.sender.SendMessage(ctx, adapter.queueName, event, map[string]string{
		"eventType": string(event.Type),
	})
	if err != nil {
		return err
	}

	log.Debug(msg.GetMessage("events.published", event.Type, event.TodoID), zap.String("message_id", messageID))
	return nil
}

// Health reports UP when the queue URL can be resolved
func (adapter *SQSPublisherAdapter) Health(ctx context.Context) model.ComponentHealthStatus {
	queueURL, err := adapter.sender.QueueURL(ctx, adapter.queueName)
	if err != nil {
		return model.DownStatus(err)
	}
	return model.UpStatus(map[string]string{
		"driver":    "sqs",
		"queue":     adapter.queueName,
		"queue_url": queueURL,
	})
}

func (adapter *SQSPublisherAdapter) Close() error {
	return nil
}
