package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// gormColumns maps document field names to column names where they differ
var gormColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type GormTodoGateway struct {
	DB *gorm.DB
}

var _ TodoGateway = (*GormTodoGateway)(nil)

func NewGormTodoGateway(db *gorm.DB) *GormTodoGateway {
	return &GormTodoGateway{DB: db}
}

func (gateway *GormTodoGateway) FindAll(ctx context.Context, filter model.TodoFilter) ([]entity.Todo, error) {
	query := gateway.DB.WithContext(ctx).Model(&entity.Todo{})
	if filter.Done != nil {
		query = query.Where("done = ?", *filter.Done)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	todos := make([]entity.Todo, 0)
	if err := query.Order("created_at ASC").Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (gateway *GormTodoGateway) FindByID(ctx context.Context, id string) (*entity.Todo, error) {
	if err := validateUUID(id); err != nil {
		return nil, err
	}

	var todo entity.Todo
	err := gateway.DB.WithContext(ctx).Where("id = ?", id).First(&todo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) Create(ctx context.Context, todo entity.Todo) (*entity.Todo, error) {
	todo.ID = uuid.NewString()
	now := time.Now().UTC()
	todo.CreatedAt = now
	todo.UpdatedAt = now

	if err := gateway.DB.WithContext(ctx).Create(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) UpdateByID(ctx context.Context, id string, changes model.TodoChanges) (*entity.Todo, error) {
	existing, err := gateway.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	columns := make(map[string]any)
	for field, value := range changes.Fields(time.Now().UTC()) {
		if column, ok := gormColumns[field]; ok {
			field = column
		}
		columns[field] = value
	}

	err = gateway.DB.WithContext(ctx).
		Model(&entity.Todo{}).
		Where("id = ?", id).
		Updates(columns).Error
	if err != nil {
		return nil, err
	}

	return gateway.FindByID(ctx, id)
}

func (gateway *GormTodoGateway) DeleteByID(ctx context.Context, id string) (*entity.Todo, error) {
	existing, err := gateway.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	result := gateway.DB.WithContext(ctx).Where("id = ?", id).Delete(&entity.Todo{})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return existing, nil
}

// validateUUID accepts only the canonical lowercase 8-4-4-4-12 form uuid.NewString produces
func validateUUID(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil || parsed.String() != id {
		return &model.InvalidIDError{ID: id}
	}
	return nil
}
