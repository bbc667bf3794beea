package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/ContactsApp/internal/config"
	"github.com/GoArmGo/ContactsApp/internal/core/ports"
	"github.com/GoArmGo/ContactsApp/internal/handler"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Config         *config.Config
	logger         *slog.Logger
	db             *sqlx.DB
	userHandler    *handler.UserHandler
	contactHandler *handler.ContactHandler
	addressHandler *handler.AddressHandler
	userStorage    ports.UserStorage
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	db *sqlx.DB,
	userHandler *handler.UserHandler,
	contactHandler *handler.ContactHandler,
	addressHandler *handler.AddressHandler,
	userStorage ports.UserStorage,
) *App {
	return &App{
		Config:         cfg,
		logger:         logger,
		db:             db,
		userHandler:    userHandler,
		contactHandler: contactHandler,
		addressHandler: addressHandler,
		userStorage:    userStorage,
	}
}

func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

func (a *App) Run(ctx context.Context) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runServer(ctx, a.Config, a.logger, a.userHandler, a.contactHandler, a.addressHandler, a.userStorage); err != nil {
		return err
	}

	a.logger.Info("application shutting down")

	// аккуратно закрываем ресурсы
	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown error", "error", closeErr)
	}

	a.logger.Info("application stopped")
	return nil
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}
	return nil
}
