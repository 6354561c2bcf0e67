package mongo

import (
	"errors"

	"go.mongodb.org/mongo-driver/event"
)

func succeeded() *event.ServerHeartbeatSucceededEvent {
	return &event.ServerHeartbeatSucceededEvent{ConnectionID: "localhost:27017"}
}

func failed() *event.ServerHeartbeatFailedEvent {
	return &event.ServerHeartbeatFailedEvent{ConnectionID: "localhost:27017", Failure: errors.New("connection refused")}
}
