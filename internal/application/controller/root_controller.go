package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/pkg/msg"
)

type RootController struct {
	api *echo.Group
}

func NewRootController(api *echo.Group) *RootController {
	return &RootController{api: api}
}

// InitRootRoutes initializes the liveness route
func (controller *RootController) InitRootRoutes() {
	controller.api.GET("/", controller.Welcome)
}

// Welcome godoc
// @Summary Liveness probe
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (controller *RootController) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": msg.GetMessage("app.welcome")})
}
