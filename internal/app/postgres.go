package app

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
	goose "github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	"github.com/guttosm/stockscore/config"
	"github.com/guttosm/stockscore/db"
	"github.com/guttosm/stockscore/internal/logger"
)

// sqlOpener is an indirection for unit testing; defaults to sql.Open
var sqlOpener = sql.Open

// InitPostgres opens a connection pool from cfg.Postgres and pings it.
// The pool is closed again when the ping fails.
//
//	conn, err := app.InitPostgres(ctx, config.AppConfig)
//	if err != nil {
//	    return err
//	}
//	defer conn.Close()
func InitPostgres(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	conn, err := sqlOpener("postgres", config.PostgresDSN(cfg.Postgres))
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return conn, nil
}

// Migrate applies the embedded goose migrations.
func Migrate(conn *sql.DB) error {
	goose.SetBaseFS(db.Migrations)
	goose.SetLogger(gooseLogger{log: logger.With("migrations")})
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Up(conn, db.MigrationsDir); err != nil {
		return fmt.Errorf("failed to migrate postgres: %w", err)
	}
	return nil
}

// gooseLogger routes goose output through zerolog.
type gooseLogger struct {
	log *zerolog.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Msgf(strings.TrimSpace(format), v...)
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Fatal().Msgf(strings.TrimSpace(format), v...)
}

// indirections used by OpenStore; overridden in tests to avoid real connections.
var (
	postgresOpener = InitPostgres
	migrator       = Migrate
)
