package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"go.uber.org/zap"

	"todo-api/configs"
	"todo-api/internal/application"
	"todo-api/internal/domain/gateway/storage"
	"todo-api/internal/domain/usecase/attachment"
	"todo-api/internal/domain/usecase/category"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err.Error(), zap.Error(err))
	}
}

func run() error {
	log.Info(msg.GetMessage("app.start"))

	env, err := configs.Load()
	if err != nil {
		return errors.New(msg.GetMessage("app.config-invalid", err))
	}
	if err := log.SetLevel(env.LogLevel); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	database, err := openStore(ctx, env.DB)
	if err != nil {
		return err
	}
	defer database.close(context.Background())

	publisher, err := newEventPublisher(ctx, env)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error(msg.GetMessage("events.close-failed", err), zap.Error(err))
		}
	}()

	images, err := storage.NewLocalImageGateway(env.Storage.ImagesDir, env.Storage.PublicPath)
	if err != nil {
		return err
	}

	// Init UseCase
	attachmentUseCase := attachment.NewAttachmentUseCase(images)
	categoryUseCase := category.NewCategoryUseCase(database.categories)
	if err := categoryUseCase.Seed(ctx, env.CategorySeed); err != nil {
		return err
	}

	e := application.NewServer(env, application.UseCases{
		Todo:     todo.NewTodoUseCase(database.todos, attachmentUseCase, publisher),
		Category: categoryUseCase,
		Health:   health.NewHealthUseCase(database.health, publisher),
	})

	// Start Routes
	serverErr := make(chan error, 1)
	go func() {
		port := strconv.Itoa(env.Server.Port)
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	log.Info(msg.GetMessage("app.stopping"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), env.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info(msg.GetMessage("app.stopped"))
	return nil
}
