package db

import (
	"context"

	"todo-api/internal/domain/model"
)

type HealthDBGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}
