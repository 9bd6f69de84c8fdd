package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/mkravtsov/content-portal/config"
	"github.com/mkravtsov/content-portal/internal/content"
	"github.com/mkravtsov/content-portal/internal/db"
	"github.com/mkravtsov/content-portal/internal/rest"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	database := db.New(dbConnect)

	articleHandler := rest.NewArticleHandler(
		content.NewArticleManager(database),
		logger,
	)
	eventHandler := rest.NewEventHandler(
		content.NewEventManager(database),
		logger,
	)

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   rest.RegisterRoutes(articleHandler, eventHandler, logger),
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.Info("service listening", "addr", addr)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
