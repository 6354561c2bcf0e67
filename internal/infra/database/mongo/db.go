package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

type Config struct {
	URL            string
	Name           string
	ConnectTimeout time.Duration
}

// Store owns the single long-lived client and the database handle
type Store struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Connect opens the client, pings the primary within ConnectTimeout and
// returns an error instead of retrying in the background.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}

	log.Info(msg.GetMessage("db.connecting", "mongo", cfg.Name))

	monitor := &lifecycleMonitor{}
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout).
		SetServerMonitor(monitor.serverMonitor()).
		SetPoolMonitor(monitor.poolMonitor()).
		SetMonitor(monitor.commandMonitor())

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &Store{Client: client, Database: client.Database(cfg.Name)}, nil
}

// Close disconnects the client; the pool monitor logs the closed event
func (store *Store) Close(ctx context.Context) {
	if err := store.Client.Disconnect(ctx); err != nil {
		log.Error(msg.GetMessage("db.close-failed", err), zap.Error(err))
	}
}

// lifecycleMonitor turns driver heartbeats and pool events into the
// connected/disconnected/reconnected/... log lines. It holds no business state.
type lifecycleMonitor struct {
	// everConnected is set after the first successful heartbeat
	everConnected atomic.Bool
	// healthy is false between a failed and a succeeded heartbeat
	healthy atomic.Bool
	// failures counts consecutive failed heartbeats
	failures atomic.Int32
}

func (m *lifecycleMonitor) serverMonitor() *event.ServerMonitor {
	return &event.ServerMonitor{
		ServerHeartbeatSucceeded: func(e *event.ServerHeartbeatSucceededEvent) {
			m.failures.Store(0)
			if m.healthy.Swap(true) {
				return
			}
			if m.everConnected.Swap(true) {
				log.Info(msg.GetMessage("db.reconnected"), zap.String("connection_id", e.ConnectionID))
				return
			}
			log.Info(msg.GetMessage("db.connected"), zap.String("connection_id", e.ConnectionID))
		},
		ServerHeartbeatFailed: func(e *event.ServerHeartbeatFailedEvent) {
			failures := m.failures.Add(1)

			if mongo.IsTimeout(e.Failure) || errors.Is(e.Failure, context.DeadlineExceeded) {
				log.Warn(msg.GetMessage("db.timeout"), zap.String("connection_id", e.ConnectionID), zap.Error(e.Failure))
			}

			if m.healthy.Swap(false) {
				log.Warn(msg.GetMessage("db.disconnected"), zap.String("connection_id", e.ConnectionID), zap.Error(e.Failure))
				return
			}
			if failures > 1 && m.everConnected.Load() {
				log.Error(msg.GetMessage("db.reconnect-failed"), zap.Int32("attempts", failures), zap.Error(e.Failure))
			}
		},
	}
}

func (m *lifecycleMonitor) poolMonitor() *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(e *event.PoolEvent) {
			switch e.Type {
			case event.PoolClosedEvent:
				log.Info(msg.GetMessage("db.closed"), zap.String("address", e.Address))
			case event.PoolCleared:
				log.Debug(msg.GetMessage("db.disconnected"), zap.String("address", e.Address))
			}
		},
	}
}

func (m *lifecycleMonitor) commandMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Failed: func(_ context.Context, e *event.CommandFailedEvent) {
			if isParseError(e.Failure) {
				log.Error(msg.GetMessage("db.parse-error"), zap.String("command", e.CommandName), zap.String("failure", e.Failure))
				return
			}
			log.Error(msg.GetMessage("db.error", e.Failure), zap.String("command", e.CommandName), zap.Int64("request_id", e.RequestID))
		},
	}
}

// isParseError matches server replies for malformed BSON or commands
func isParseError(failure string) bool {
	failure = strings.ToLower(failure)
	for _, marker := range []string{"failedtoparse", "bsonobjecttoolarge", "invalidbson"} {
		if strings.Contains(failure, marker) {
			return true
		}
	}
	return false
}
