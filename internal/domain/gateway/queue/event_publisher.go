package queue

import (
	"context"

	"todo-api/internal/domain/model"
)

// EventPublisher delivers todo change events to an external broker.
// Delivery is best effort; callers log failures and carry on.
type EventPublisher interface {
	HealthGateway
	Publish(ctx context.Context, event model.TodoEvent) error
	Close() error
}
