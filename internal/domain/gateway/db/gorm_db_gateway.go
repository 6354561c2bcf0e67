package db

import (
	"context"
	"strconv"
	"time"

	"gorm.io/gorm"

	"todo-api/internal/domain/model"
)

type GormHealthDBGateway struct {
	DB *gorm.DB
}

var _ HealthDBGateway = (*GormHealthDBGateway)(nil)

func NewGormHealthDBGateway(db *gorm.DB) *GormHealthDBGateway {
	return &GormHealthDBGateway{DB: db}
}

func (gateway *GormHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	sqlDB, err := gateway.DB.DB()
	if err != nil {
		return model.DownStatus(err)
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err = sqlDB.PingContext(ctx); err != nil {
		return model.DownStatus(err)
	}

	stats := sqlDB.Stats()
	return model.UpStatus(map[string]string{
		"driver":       gateway.DB.Dialector.Name(),
		"open_conns":   strconv.Itoa(stats.OpenConnections),
		"in_use_conns": strconv.Itoa(stats.InUse),
		"idle_conns":   strconv.Itoa(stats.Idle),
	})
}
