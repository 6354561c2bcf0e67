package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/category"
	"todo-api/pkg/msg"
)

type CategoryController struct {
	api     *echo.Group
	useCase category.UseCase
}

func NewCategoryController(api *echo.Group, useCase category.UseCase) *CategoryController {
	return &CategoryController{api: api, useCase: useCase}
}

// InitCategoryRoutes initializes the read-only category routes
func (controller *CategoryController) InitCategoryRoutes() {
	controller.api.GET("/categories", controller.FindAll)
	controller.api.GET("/categories/:id", controller.FindByID)
}

// FindAll godoc
// @Summary Get all categories
// @Tags categories
// @Produce json
// @Success 200 {object} map[string]any "{message, categories}"
// @Failure 500 {object} map[string]any "{message, categories: null}"
// @Router /categories [get]
func (controller *CategoryController) FindAll(c echo.Context) error {
	categories, err := controller.useCase.FindAll(c.Request().Context())
	if err != nil {
		return respondError(c, "categories", err)
	}
	return c.JSON(http.StatusOK, model.NewEnvelope(msg.GetMessage("category.list"), "categories", categories))
}

// FindByID godoc
// @Summary Get category by id
// @Tags categories
// @Produce json
// @Param id path string true "Category id"
// @Success 200 {object} map[string]any "{message, category}"
// @Failure 400 {object} map[string]any "Malformed id"
// @Failure 404 {object} map[string]any "Category not found"
// @Router /categories/{id} [get]
func (controller *CategoryController) FindByID(c echo.Context) error {
	id := c.Param("id")
	found, err := controller.useCase.FindByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, "category", err)
	}
	return c.JSON(http.StatusOK, model.NewEnvelope(msg.GetMessage("category.get", id), "category", found))
}
