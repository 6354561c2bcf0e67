package db

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// TodoGateway accesses the todos collection.
// Lookups by id return (nil, nil) when no document matches and a
// *model.InvalidIDError when the id cannot belong to the collection.
type TodoGateway interface {
	FindAll(ctx context.Context, filter model.TodoFilter) ([]entity.Todo, error)
	FindByID(ctx context.Context, id string) (*entity.Todo, error)
	Create(ctx context.Context, todo entity.Todo) (*entity.Todo, error)
	UpdateByID(ctx context.Context, id string, changes model.TodoChanges) (*entity.Todo, error)
	DeleteByID(ctx context.Context, id string) (*entity.Todo, error)
}
