// @title        Tienda API
// @version      1.0
// @description  usuarios 與 productos 的 CRUD API
// @host         localhost:3000
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tienda-api/internal/config"
	"tienda-api/internal/database"
	"tienda-api/internal/middleware"
	"tienda-api/internal/router"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "tienda-api/docs" // 引入 swag 產出的 docs
)

const shutdownTimeout = 10 * time.Second

var (
	loadConfig                = config.Load
	newPgxPool                = database.NewPgxPool
	runMigrationsFn           = database.RunMigrations
	notifyContext             = signal.NotifyContext
	startServer               = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer            = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	logOutput       io.Writer = os.Stderr
	exitFunc                  = os.Exit
)

// newLogger 依 LOG_LEVEL / LOG_FORMAT 建立 logger
func newLogger(level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("無效的 LOG_LEVEL: %w", err)
	}
	out := logOutput
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: logOutput, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

func run() error {
	cfg, err := loadConfig(".env")
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	log.Logger = logger

	ctx, stop := notifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := newPgxPool(ctx, database.PoolConfig{
		URL:            cfg.DatabaseURL,
		MaxConns:       cfg.PoolSize,
		ConnectTimeout: cfg.ConnectTimeout,
		AcquireTimeout: cfg.AcquireTimeout,
	})
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer func() {
		db.Close()
		log.Info().Msg("database pool closed")
	}()

	if cfg.RunMigrations {
		if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Migration 執行失敗: %w", err)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))

	router.Setup(e, db, validator.New())

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() { errCh <- startServer(e, addr) }()
	log.Info().Str("addr", addr).Int32("pool_size", cfg.PoolSize).Msg("server listening")

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server 啟動失敗: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownServer(sctx, e); err != nil {
			return fmt.Errorf("server 關閉失敗: %w", err)
		}
		return nil
	}
}

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("service stopped")
		exitFunc(1)
	}
}
