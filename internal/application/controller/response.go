package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrInvalidID),
		errors.Is(err, model.ErrBadAttachment):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {message: "ERROR: <cause>", <key>: null} with the mapped status
func respondError(c echo.Context, key string, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error(msg.GetMessage("app.error-prefix", err),
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err))
	}
	return c.JSON(status, model.NewErrorEnvelope(key, err))
}
