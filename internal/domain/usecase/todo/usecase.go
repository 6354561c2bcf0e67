package todo

import (
	"context"
	"mime/multipart"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// Files are the multipart file parts of a request, keyed by form field
type Files map[string][]*multipart.FileHeader

type UseCase interface {
	FindAll(ctx context.Context, filter model.TodoFilter) ([]entity.Todo, error)
	FindByID(ctx context.Context, id string) (*entity.Todo, error)
	Create(ctx context.Context, dto model.CreateTodoDTO, files Files) (*entity.Todo, error)
	UpdateByID(ctx context.Context, id string, dto model.UpdateTodoDTO, files Files) (*entity.Todo, error)
	DeleteByID(ctx context.Context, id string) (*entity.Todo, error)
}
