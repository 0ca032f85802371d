package db

import (
	"context"
	"embed"
	"fmt"
	"net/url"

	"github.com/go-pg/pg/v10"
	"github.com/jackc/pgx"
	"github.com/jackc/pgx/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// ConnString renders go-pg options as a postgres:// URL.
func ConnString(opt *pg.Options) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(opt.User, opt.Password),
		Host:     opt.Addr,
		Path:     "/" + opt.Database,
		RawQuery: "sslmode=disable",
	}
	if opt.TLSConfig != nil {
		u.RawQuery = "sslmode=require"
	}
	return u.String()
}

// Migrate applies the embedded goose migrations.
func Migrate(ctx context.Context, opt *pg.Options) error {
	config, err := pgx.ParseConnectionString(ConnString(opt))
	if err != nil {
		return fmt.Errorf("parse connection string: %w", err)
	}

	sqldb := stdlib.OpenDB(config)
	defer sqldb.Close()

	if err := sqldb.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqldb, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
