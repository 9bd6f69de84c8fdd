package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/mkravtsov/content-portal/config"
	"github.com/mkravtsov/content-portal/internal/app"
	"github.com/mkravtsov/content-portal/internal/db"
)

var (
	flConfig            = flag.String("config", "config.toml", "path to TOML configuration file (CONFIG)")
	flDatabaseURL       = flag.String("database-url", "", "database connection URL, overrides the config file (DATABASE_URL)")
	flDBMaxConns        = flag.Int("db-max-conns", 5, "maximum number of database connections (DB_MAX_CONNS)")
	flDBMaxConnLifetime = flag.String("db-max-conn-lifetime", "300s", "maximum lifetime of a database connection (DB_MAX_CONN_LIFETIME)")
	flDebug             = flag.Bool("debug", false, "enable debug mode (DEBUG)")
	lg                  *slog.Logger
)

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	cfg, err := config.Load(*flConfig, *flDatabaseURL, *flDBMaxConns, *flDBMaxConnLifetime)
	if err != nil {
		exitOnError(err)
	}

	dbConnect := pg.Connect(&cfg.Database)
	if *flDebug {
		dbConnect.AddQueryHook(db.NewQueryHook(lg))
	}

	ctx := context.Background()
	if err := dbConnect.Ping(ctx); err != nil {
		dbConnect.Close()
		exitOnError(err)
	}

	service := app.New(cfg, dbConnect, lg)

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

	if err := service.GracefulShutdown(shutdownCtx); err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}

	if err := service.DB.Close(); err != nil {
		lg.Error("failed to close database connection", "error", err)
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
