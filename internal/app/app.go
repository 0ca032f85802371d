package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/news-management/config"
	"github.com/daniilsolovey/news-management/internal/db"
	"github.com/daniilsolovey/news-management/internal/newsportal"
	"github.com/daniilsolovey/news-management/internal/rest"
	"github.com/daniilsolovey/news-management/internal/rpc"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/vmkteam/zenrpc/v2"
)

const rpcPath = "/rpc/"

type App struct {
	DB      *db.Repository
	Logger  *slog.Logger
	Echo    *echo.Echo
	RPC     *zenrpc.Server
	Manager *newsportal.Manager
	Config  *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	database := db.New(dbConnect)
	manager := newsportal.NewManager(database, logger, newsportal.AuthConfig{
		Secret:   cfg.Auth.Secret,
		TokenTTL: cfg.Auth.TokenTTL,
	})

	a := &App{
		DB:      database,
		Logger:  logger,
		Echo:    rest.NewHandler(manager, logger).RegisterRoutes(),
		RPC:     rpc.New(logger, manager),
		Manager: manager,
		Config:  cfg,
	}
	a.Echo.Any(rpcPath, echo.WrapHandler(a.RPC))

	return a
}

func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.Info("service started", "addr", addr, "rpc", rpcPath)

	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
