package category

import (
	"context"
	"fmt"
	"strings"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

type categoryUseCase struct {
	gateway db.CategoryGateway
}

func NewCategoryUseCase(gateway db.CategoryGateway) UseCase {
	return &categoryUseCase{
		gateway: gateway,
	}
}

func (uc *categoryUseCase) FindAll(ctx context.Context) ([]entity.Category, error) {
	return uc.gateway.FindAll(ctx)
}

func (uc *categoryUseCase) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	category, err := uc.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, &model.NotFoundError{Resource: "category", ID: id}
	}
	return category, nil
}

func (uc *categoryUseCase) Seed(ctx context.Context, names []string) error {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		existing, err := uc.gateway.FindByName(ctx, name)
		if err != nil {
			return fmt.Errorf("%s", msg.GetMessage("category.error.seed-failed", name, err))
		}
		if existing != nil {
			continue
		}

		if _, err := uc.gateway.Create(ctx, entity.Category{Name: name}); err != nil {
			return fmt.Errorf("%s", msg.GetMessage("category.error.seed-failed", name, err))
		}
		log.Info(msg.GetMessage("category.seeded", name))
	}
	return nil
}
