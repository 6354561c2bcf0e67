package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
)

// JSONErrorHandler replaces echo's default handler so that unmatched routes
// and framework errors always answer with a JSON {message} body.
func JSONErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
	}

	var body model.Envelope
	switch status {
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		status = http.StatusNotFound
		body = model.Envelope{"message": msg.GetMessage("app.route-not-found")}
	case http.StatusInternalServerError:
		body = model.Envelope{"message": msg.GetMessage("app.error-prefix", err)}
	default:
		body = model.Envelope{"message": msg.GetMessage("app.error-prefix", fmt.Sprint(httpErr.Message))}
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, body)
	}
	if writeErr != nil {
		c.Logger().Error(writeErr)
	}
}
