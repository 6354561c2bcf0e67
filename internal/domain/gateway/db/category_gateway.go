package db

import (
	"context"

	"todo-api/internal/domain/entity"
)

// CategoryGateway accesses the categories collection with the same
// not-found and invalid-id conventions as TodoGateway.
type CategoryGateway interface {
	FindAll(ctx context.Context) ([]entity.Category, error)
	FindByID(ctx context.Context, id string) (*entity.Category, error)
	FindByName(ctx context.Context, name string) (*entity.Category, error)
	Create(ctx context.Context, category entity.Category) (*entity.Category, error)
}
