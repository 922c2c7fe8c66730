// Package server initializes and runs the todo backend: it validates
// configuration, connects the database, applies migrations, wires the
// services and serves HTTP until a shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/akarpov87/gotodo/internal/logging"
	"github.com/akarpov87/gotodo/internal/server/auth"
	"github.com/akarpov87/gotodo/internal/server/config"
	"github.com/akarpov87/gotodo/internal/server/httpapi"
	"github.com/akarpov87/gotodo/internal/server/repositories/repomanager"
	"github.com/akarpov87/gotodo/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager *repomanager.PostgresManager
	server  *httpapi.Server
}

// NewApp builds the full dependency graph. Configuration problems (such as
// a missing signing secret) and database failures are startup errors.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	manager, err := repomanager.NewPostgresManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := manager.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	issuer := auth.NewTokenIssuer([]byte(cfg.SecretKey), cfg.TokenTTL)

	authService := services.NewAuthService(manager.Conn(), manager, issuer)
	userService := services.NewUserService(manager.Conn(), manager)
	todoService := services.NewTodoService(manager.Conn(), manager)

	server := httpapi.NewServer(cfg.Address, logger, authService, userService, todoService, issuer)

	return &App{config: cfg, logger: logger, manager: manager, server: server}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
