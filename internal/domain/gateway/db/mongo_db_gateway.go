package db

import (
	"context"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"todo-api/internal/domain/model"
)

type MongoHealthDBGateway struct {
	Client *mongo.Client
}

var _ HealthDBGateway = (*MongoHealthDBGateway)(nil)

func NewMongoHealthDBGateway(client *mongo.Client) *MongoHealthDBGateway {
	return &MongoHealthDBGateway{Client: client}
}

func (gateway *MongoHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	if err := gateway.Client.Ping(ctx, readpref.Primary()); err != nil {
		return model.DownStatus(err)
	}

	return model.UpStatus(map[string]string{
		"driver":        "mongo",
		"sessions":      strconv.Itoa(gateway.Client.NumberSessionsInProgress()),
		"ping_duration": time.Since(start).String(),
	})
}
