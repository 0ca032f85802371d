package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/news-management/config"
	_ "github.com/daniilsolovey/news-management/docs"
	"github.com/daniilsolovey/news-management/internal/app"
	dbpkg "github.com/daniilsolovey/news-management/internal/db"
)

var (
	flConfig      = flag.String("config", "config.toml", "path to TOML configuration file")
	flDatabaseURL = flag.String("database-url", "", "database connection URL, overrides [Database] (DATABASE_URL)")
	flDebug       = flag.Bool("debug", false, "enable debug mode")
	cfg           config.Config
	lg            *slog.Logger
)

// @title News Management API
// @version 1.0
// @description News management backend: accounts, categories, tags and news articles
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}

	if *flDatabaseURL != "" {
		exitOnError(cfg.SetDatabaseURL(*flDatabaseURL))
	}
	exitOnError(cfg.Validate())

	ctx := context.Background()

	if cfg.App.Migrate {
		lg.Info("applying migrations")
		exitOnError(dbpkg.Migrate(ctx, &cfg.Database))
	}

	db := pg.Connect(&cfg.Database)
	if err := db.Ping(ctx); err != nil {
		db.Close()
		exitOnError(err)
	}
	defer db.Close()

	if cfg.App.LogQueries {
		db.AddQueryHook(dbpkg.NewQueryHook(lg))
	}

	service := app.New(&cfg, db, lg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
