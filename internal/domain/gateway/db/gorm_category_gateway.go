package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
)

type GormCategoryGateway struct {
	DB *gorm.DB
}

var _ CategoryGateway = (*GormCategoryGateway)(nil)

func NewGormCategoryGateway(db *gorm.DB) *GormCategoryGateway {
	return &GormCategoryGateway{DB: db}
}

func (gateway *GormCategoryGateway) FindAll(ctx context.Context) ([]entity.Category, error) {
	categories := make([]entity.Category, 0)
	if err := gateway.DB.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (gateway *GormCategoryGateway) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	if err := validateUUID(id); err != nil {
		return nil, err
	}
	return gateway.findOne(ctx, "id = ?", id)
}

func (gateway *GormCategoryGateway) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	return gateway.findOne(ctx, "name = ?", name)
}

func (gateway *GormCategoryGateway) Create(ctx context.Context, category entity.Category) (*entity.Category, error) {
	category.ID = uuid.NewString()
	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now

	if err := gateway.DB.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (gateway *GormCategoryGateway) findOne(ctx context.Context, query string, arg any) (*entity.Category, error) {
	var category entity.Category
	err := gateway.DB.WithContext(ctx).Where(query, arg).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}
