package todo

import (
	"context"

	"go.uber.org/zap"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/attachment"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

var (
	createImageFields = []string{"image", "images"}
	updateImageFields = []string{"image"}
)

type todoUseCase struct {
	gateway     db.TodoGateway
	attachments attachment.UseCase
	publisher   queue.EventPublisher
}

func NewTodoUseCase(gateway db.TodoGateway, attachments attachment.UseCase, publisher queue.EventPublisher) UseCase {
	return &todoUseCase{
		gateway:     gateway,
		attachments: attachments,
		publisher:   publisher,
	}
}

func (uc *todoUseCase) FindAll(ctx context.Context, filter model.TodoFilter) ([]entity.Todo, error) {
	return uc.gateway.FindAll(ctx, filter)
}

func (uc *todoUseCase) FindByID(ctx context.Context, id string) (*entity.Todo, error) {
	todo, err := uc.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, &model.NotFoundError{Resource: "todo", ID: id}
	}
	return todo, nil
}

func (uc *todoUseCase) Create(ctx context.Context, dto model.CreateTodoDTO, files Files) (*entity.Todo, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	image, err := uc.attachments.Store(files, createImageFields...)
	if err != nil {
		return nil, err
	}

	created, err := uc.gateway.Create(ctx, dto.ToEntity(image))
	if err != nil {
		uc.attachments.Remove(image)
		return nil, err
	}

	uc.publish(ctx, model.TodoCreated, *created)
	return created, nil
}

func (uc *todoUseCase) UpdateByID(ctx context.Context, id string, dto model.UpdateTodoDTO, files Files) (*entity.Todo, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := uc.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// a todo may keep its own stored image but never point at another one
	if dto.Image != nil && *dto.Image != existing.Image && uc.attachments.Owns(*dto.Image) {
		return nil, &model.ValidationError{Field: "image", Message: msg.GetMessage("todo.error.foreign-image", *dto.Image)}
	}

	image, err := uc.attachments.Store(files, updateImageFields...)
	if err != nil {
		return nil, err
	}

	updated, err := uc.gateway.UpdateByID(ctx, id, dto.ToChanges(image))
	if err == nil && updated == nil {
		err = &model.NotFoundError{Resource: "todo", ID: id}
	}
	if err != nil {
		uc.attachments.Remove(image)
		return nil, err
	}

	// the previous file goes once the todo no longer references it
	if existing.Image != "" && existing.Image != updated.Image {
		uc.attachments.Remove(existing.Image)
	}

	uc.publish(ctx, model.TodoUpdated, *updated)
	return updated, nil
}

func (uc *todoUseCase) DeleteByID(ctx context.Context, id string) (*entity.Todo, error) {
	deleted, err := uc.gateway.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, &model.NotFoundError{Resource: "todo", ID: id}
	}

	uc.attachments.Remove(deleted.Image)
	uc.publish(ctx, model.TodoDeleted, *deleted)
	return deleted, nil
}

func (uc *todoUseCase) publish(ctx context.Context, eventType model.TodoEventType, todo entity.Todo) {
	event := model.NewTodoEvent(eventType, todo)
	if err := uc.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		log.Warn(msg.GetMessage("events.publish-failed", eventType, todo.ID, err), zap.String("event_id", event.ID))
	}
}
