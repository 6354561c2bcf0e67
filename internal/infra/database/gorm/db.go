package gorm

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"todo-api/internal/domain/entity"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

type Config struct {
	// Driver is "postgres" or "sqlite"
	Driver string
	// URL is a postgres URL for postgres, a directory for sqlite
	URL string
	// Name is the database name (postgres) or file name without extension (sqlite)
	Name           string
	ConnectTimeout time.Duration
}

// Open connects through database/sql, pings within ConnectTimeout, hands the pool
// to gorm and creates the todos and categories tables when missing.
func Open(cfg Config) (*gorm.DB, error) {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}

	driverName, dsn, err := dataSource(cfg)
	if err != nil {
		return nil, err
	}

	log.Info(msg.GetMessage("db.connecting", cfg.Driver, cfg.Name))

	sqlDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	if cfg.Driver == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.Driver, err)
	}

	var dialector gorm.Dialector
	if cfg.Driver == "postgres" {
		dialector = postgres.New(postgres.Config{Conn: sqlDB})
	} else {
		dialector = &sqlite.Dialector{Conn: sqlDB}
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	if err := db.AutoMigrate(&entity.Todo{}, &entity.Category{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	log.Info(msg.GetMessage("db.connected"), zap.String("driver", cfg.Driver), zap.String("database", cfg.Name))
	return db, nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.Close()
	}
	if err != nil {
		log.Error(msg.GetMessage("db.close-failed", err), zap.Error(err))
		return
	}
	log.Info(msg.GetMessage("db.closed"))
}

func dataSource(cfg Config) (string, string, error) {
	switch cfg.Driver {
	case "postgres":
		u, err := url.Parse(cfg.URL)
		if err != nil {
			return "", "", fmt.Errorf("invalid postgres url: %w", err)
		}
		u.Path = "/" + cfg.Name
		query := u.Query()
		if query.Get("sslmode") == "" {
			query.Set("sslmode", "disable")
		}
		query.Set("connect_timeout", strconv.Itoa(max(1, int(cfg.ConnectTimeout.Seconds()))))
		u.RawQuery = query.Encode()
		return "postgres", u.String(), nil
	case "sqlite":
		if err := os.MkdirAll(cfg.URL, 0o755); err != nil {
			return "", "", fmt.Errorf("failed to create sqlite directory: %w", err)
		}
		name := strings.TrimSuffix(cfg.Name, ".db") + ".db"
		return "sqlite", filepath.Join(cfg.URL, name), nil
	default:
		return "", "", fmt.Errorf("%s", msg.GetMessage("db.unsupported-driver", cfg.Driver))
	}
}
