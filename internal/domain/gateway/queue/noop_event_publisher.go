package queue

import (
	"context"

	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
)

// NoopEventPublisher is used when no events driver is configured
type NoopEventPublisher struct{}

var _ EventPublisher = NoopEventPublisher{}

func NewNoopEventPublisher() NoopEventPublisher {
	return NoopEventPublisher{}
}

func (NoopEventPublisher) Publish(context.Context, model.TodoEvent) error {
	return nil
}

func (NoopEventPublisher) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUnknown,
		Details: map[string]string{"message": msg.GetMessage("events.disabled")},
	}
}

func (NoopEventPublisher) Close() error {
	return nil
}
