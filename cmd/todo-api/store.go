package main

import (
	"context"
	"fmt"

	"todo-api/configs"
	"todo-api/internal/domain/gateway/db"
	gormdb "todo-api/internal/infra/database/gorm"
	mongodb "todo-api/internal/infra/database/mongo"
	"todo-api/pkg/msg"
)

// store groups the gateways of one database driver and how to release it
type store struct {
	todos      db.TodoGateway
	categories db.CategoryGateway
	health     db.HealthDBGateway
	close      func(ctx context.Context)
}

func openStore(ctx context.Context, cfg configs.DBConfig) (*store, error) {
	switch cfg.Driver {
	case "mongo":
		mongoStore, err := mongodb.Connect(ctx, mongodb.Config{
			URL:            cfg.URL,
			Name:           cfg.Name,
			ConnectTimeout: cfg.ConnectTimeout,
		})
		if err != nil {
			return nil, err
		}
		return &store{
			todos:      db.NewMongoTodoGateway(mongoStore.Database),
			categories: db.NewMongoCategoryGateway(mongoStore.Database),
			health:     db.NewMongoHealthDBGateway(mongoStore.Client),
			close:      mongoStore.Close,
		}, nil

	case "postgres", "sqlite":
		database, err := gormdb.Open(gormdb.Config{
			Driver:         cfg.Driver,
			URL:            cfg.URL,
			Name:           cfg.Name,
			ConnectTimeout: cfg.ConnectTimeout,
		})
		if err != nil {
			return nil, err
		}
		return &store{
			todos:      db.NewGormTodoGateway(database),
			categories: db.NewGormCategoryGateway(database),
			health:     db.NewGormHealthDBGateway(database),
			close:      func(context.Context) { gormdb.Close(database) },
		}, nil

	default:
		return nil, fmt.Errorf("%s", msg.GetMessage("db.unsupported-driver", cfg.Driver))
	}
}
