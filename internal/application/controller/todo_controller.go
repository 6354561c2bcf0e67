package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/msg"
	"todo-api/pkg/util/boolutils"
)

type TodoController struct {
	api     *echo.Group
	useCase todo.UseCase
}

func NewTodoController(api *echo.Group, useCase todo.UseCase) *TodoController {
	return &TodoController{api: api, useCase: useCase}
}

// InitTodoRoutes initializes todo routes
func (controller *TodoController) InitTodoRoutes() {
	controller.api.GET("/todos", controller.FindAll)
	controller.api.GET("/todos/:id", controller.FindByID)
	controller.api.POST("/todos", controller.Create)
	controller.api.PUT("/todos/:id", controller.UpdateByID)
	controller.api.DELETE("/todos/:id", controller.DeleteByID)
}

// FindAll godoc
// @Summary Get all todos
// @Description List todos, optionally filtered by completion and category
// @Tags todos
// @Produce json
// @Param done query string false "\"true\" for completed todos, anything else for uncompleted"
// @Param category query string false "Exact category name"
// @Success 200 {object} map[string]any "{message, todos}"
// @Failure 500 {object} map[string]any "{message, todos: null}"
// @Router /todos [get]
func (controller *TodoController) FindAll(c echo.Context) error {
	var filter model.TodoFilter
	if done := c.QueryParam("done"); done != "" {
		filter.Done = boolutils.ToBoolPtr(done)
	}
	if category := c.QueryParam("category"); category != "" {
		filter.Category = &category
	}

	todos, err := controller.useCase.FindAll(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, "todos", err)
	}
	return c.JSON(http.StatusOK, model.NewEnvelope(listMessage(filter), "todos", todos))
}

// FindByID godoc
// @Summary Get todo by id
// @Tags todos
// @Produce json
// @Param id path string true "Todo id"
// @Success 200 {object} map[string]any "{message, todo}"
// @Failure 400 {object} map[string]any "Malformed id"
// @Failure 404 {object} map[string]any "Todo not found"
// @Router /todos/{id} [get]
func (controller *TodoController) FindByID(c echo.Context) error {
	id := c.Param("id")
	found, err := controller.useCase.FindByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, "todo", err)
	}
	return c.JSON(http.StatusOK, model.NewEnvelope(msg.GetMessage("todo.get", id), "todo", found))
}

// Create godoc
// @Summary Create todo
// @Description Accepts JSON, urlencoded or multipart bodies. A multipart body may carry one image in the image or images field.
// @Tags todos
// @Accept json,mpfd,x-www-form-urlencoded
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param category formData string false "Category" default(General)
// @Param done formData boolean false "Completed" default(false)
// @Param image formData file false "Image (png, jpg, jpeg, gif, svg, webp)"
// @Success 201 {object} map[string]any "{message, created}"
// @Failure 400 {object} map[string]any "Validation error or rejected image"
// @Failure 500 {object} map[string]any "{message, created: null}"
// @Router /todos [post]
func (controller *TodoController) Create(c echo.Context) error {
	input, files, err := bindTodoInput(c)
	if err != nil {
		return respondError(c, "created", err)
	}

	created, err := controller.useCase.Create(c.Request().Context(), model.CreateTodoDTO{TodoInput: input}, files)
	if err != nil {
		return respondError(c, "created", err)
	}
	return c.JSON(http.StatusCreated, model.NewEnvelope(msg.GetMessage("todo.created"), "created", created))
}

// UpdateByID godoc
// @Summary Update todo
// @Description Partial update; only provided fields change. A multipart body may carry one image in the image field.
// @Tags todos
// @Accept json,mpfd,x-www-form-urlencoded
// @Produce json
// @Param id path string true "Todo id"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Param category formData string false "Category"
// @Param done formData boolean false "Completed"
// @Param image formData file false "Image (png, jpg, jpeg, gif, svg, webp)"
// @Success 200 {object} map[string]any "{message, updated}"
// @Failure 400 {object} map[string]any "Validation error, malformed id or rejected image"
// @Failure 404 {object} map[string]any "Todo not found"
// @Router /todos/{id} [put]
func (controller *TodoController) UpdateByID(c echo.Context) error {
	id := c.Param("id")
	input, files, err := bindTodoInput(c)
	if err != nil {
		return respondError(c, "updated", err)
	}

	updated, err := controller.useCase.UpdateByID(c.Request().Context(), id, model.UpdateTodoDTO{TodoInput: input}, files)
	if err != nil {
		return respondError(c, "updated", err)
	}
	return c.JSON(http.StatusOK, model.NewEnvelope(msg.GetMessage("todo.updated", id), "updated", updated))
}

// DeleteByID godoc
// @Summary Delete todo
// @Tags todos
// @Produce json
// @Param id path string true "Todo id"
// @Success 200 {object} map[string]any "{message, deleted}"
// @Failure 400 {object} map[string]any "Malformed id"
// @Failure 404 {object} map[string]any "Todo not found"
// @Router /todos/{id} [delete]
func (controller *TodoController) DeleteByID(c echo.Context) error {
	deleted, err := controller.useCase.DeleteByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, "deleted", err)
	}
	return c.JSON(http.StatusOK, model.NewEnvelope(msg.GetMessage("todo.deleted"), "deleted", deleted))
}

// bindTodoInput reads the todo fields from a JSON or form body and returns the
// uploaded files of a multipart body.
func bindTodoInput(c echo.Context) (model.TodoInput, todo.Files, error) {
	var input model.TodoInput
	request := c.Request()

	if request.ContentLength == 0 {
		return input, nil, nil
	}

	contentType := request.Header.Get(echo.HeaderContentType)
	switch {
	case strings.HasPrefix(contentType, echo.MIMEApplicationJSON):
		if err := c.Bind(&input); err != nil {
			return input, nil, invalidBody(err)
		}
		return input, nil, nil

	case strings.HasPrefix(contentType, echo.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return input, nil, invalidBody(err)
		}
		input, err = model.TodoInputFromForm(form.Value)
		return input, form.File, err

	case strings.HasPrefix(contentType, echo.MIMEApplicationForm):
		values, err := c.FormParams()
		if err != nil {
			return input, nil, invalidBody(err)
		}
		input, err = model.TodoInputFromForm(values)
		return input, nil, err

	default:
		return input, nil, invalidBody(echo.ErrUnsupportedMediaType)
	}
}

func invalidBody(err error) error {
	if httpErr, ok := err.(*echo.HTTPError); ok {
		err = httpErr.Internal
		if err == nil {
			return &model.ValidationError{Field: "body", Message: msg.GetMessage("todo.error.invalid-body", httpErr.Message)}
		}
	}
	return &model.ValidationError{Field: "body", Message: msg.GetMessage("todo.error.invalid-body", err)}
}

func listMessage(filter model.TodoFilter) string {
	switch {
	case filter.Done != nil && filter.Category != nil:
		return msg.GetMessage("todo.list.done-category", doneLabel(*filter.Done), *filter.Category)
	case filter.Done != nil:
		return msg.GetMessage("todo.list.done", doneLabel(*filter.Done))
	case filter.Category != nil:
		return msg.GetMessage("todo.list.category", *filter.Category)
	default:
		return msg.GetMessage("todo.list.all")
	}
}

func doneLabel(done bool) string {
	if done {
		return msg.GetMessage("todo.completed")
	}
	return msg.GetMessage("todo.uncompleted")
}
