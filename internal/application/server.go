package application

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"todo-api/configs"
	_ "todo-api/docs"
	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/usecase/category"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
)

type UseCases struct {
	Todo     todo.UseCase
	Category category.UseCase
	Health   health.UseCase
}

// NewServer builds the echo instance with middleware, static files, docs and routes
func NewServer(env *configs.EnvConfig, useCases UseCases) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.JSONErrorHandler

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	middleware.SetupRequestLogger(e, "/health", "/swagger/", env.Storage.PublicPath+"/")
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: env.CORSOrigins,
	}))
	e.Use(echomw.BodyLimit(env.Storage.MaxSize))
	e.Use(echomw.StaticWithConfig(echomw.StaticConfig{
		Root: env.Server.PublicDir,
	}))

	e.Static(env.Storage.PublicPath, env.Storage.ImagesDir)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(env.Server.ContextPath)

	controller.NewRootController(api).InitRootRoutes()
	controller.NewHealthController(api, useCases.Health).InitHealthRoutes()
	controller.NewTodoController(api, useCases.Todo).InitTodoRoutes()
	controller.NewCategoryController(api, useCases.Category).InitCategoryRoutes()

	return e
}
