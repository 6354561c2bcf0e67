package category

import (
	"context"

	"todo-api/internal/domain/entity"
)

type UseCase interface {
	FindAll(ctx context.Context) ([]entity.Category, error)
	FindByID(ctx context.Context, id string) (*entity.Category, error)
	// Seed inserts every named category that does not exist yet
	Seed(ctx context.Context, names []string) error
}
