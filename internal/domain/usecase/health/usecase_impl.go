package health

import (
	"context"

	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	queueGateway queue.HealthGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, queueGateway queue.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		queueGateway: queueGateway,
	}
}

// CheckHealth is DOWN only when the database is not UP; events are informative
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	dbHealth := useCase.dbGateway.Health(ctx)
	eventsHealth := useCase.queueGateway.Health(ctx)

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Events:   eventsHealth,
	}
}
