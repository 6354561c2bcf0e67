package model

import "todo-api/pkg/msg"

// Envelope is the {message, <key>: payload} body returned by every endpoint
type Envelope map[string]any

func NewEnvelope(message string, key string, payload any) Envelope {
	return Envelope{
		"message": message,
		key:       payload,
	}
}

// NewErrorEnvelope builds {message: "ERROR: <cause>", <key>: null}
func NewErrorEnvelope(key string, err error) Envelope {
	return Envelope{
		"message": msg.GetMessage("app.error-prefix", err),
		key:       nil,
	}
}
