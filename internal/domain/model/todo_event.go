package model

import (
	"time"

	"github.com/google/uuid"

	"todo-api/internal/domain/entity"
)

type TodoEventType string

const (
	TodoCreated TodoEventType = "todo.created"
	TodoUpdated TodoEventType = "todo.updated"
	TodoDeleted TodoEventType = "todo.deleted"
)

// TodoEvent is published after a todo changes in the store
type TodoEvent struct {
	ID         string        `json:"id"`
	Type       TodoEventType `json:"type"`
	TodoID     string        `json:"todoId"`
	Todo       entity.Todo   `json:"todo"`
	OccurredAt time.Time     `json:"occurredAt"`
}

func NewTodoEvent(eventType TodoEventType, todo entity.Todo) TodoEvent {
	return TodoEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		TodoID:     todo.ID,
		Todo:       todo,
		OccurredAt: time.Now().UTC(),
	}
}
