package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/ContactsApp/internal/config"
	"github.com/GoArmGo/ContactsApp/internal/core/ports"
	"github.com/GoArmGo/ContactsApp/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// runServer запускает HTTP сервер и блокируется до отмены контекста.
func runServer(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	userHandler *handler.UserHandler,
	contactHandler *handler.ContactHandler,
	addressHandler *handler.AddressHandler,
	userStorage ports.UserStorage,
) error {
	r := chi.NewRouter()
	r.Use(handler.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	// Регистрация и логин — единственные точки входа без аутентификации.
	r.Post("/api/users/register", userHandler.Register)
	r.Post("/api/users/login", userHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(handler.Auth(userStorage, logger))

		// User API
		r.Get("/api/users/current", userHandler.Current)
		r.Post("/api/users/current/update", userHandler.UpdateCurrent)
		r.Post("/api/users/current/logout", userHandler.Logout)

		// Contact API
		r.Post("/api/contacts/create", contactHandler.Create)
		r.Get("/api/contacts/list", contactHandler.List)
		r.Get("/api/contacts/{contactId}", contactHandler.Get)
		r.Post("/api/contacts/update/{contactId}", contactHandler.Update)
		r.Post("/api/contacts/delete/{contactId}", contactHandler.Delete)

		// Address API
		r.Post("/api/contacts/{contactId}/addresses", addressHandler.Create)
		r.Get("/api/contacts/{contactId}/addresses/list", addressHandler.List)
		r.Get("/api/contacts/{contactId}/addresses/{addressId}", addressHandler.Get)
		r.Post("/api/contacts/{contactId}/addresses/{addressId}/update", addressHandler.Update)
		r.Post("/api/contacts/{contactId}/addresses/{addressId}/delete", addressHandler.Delete)
	})

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка при запуске сервера: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received, stopping server")

	ctxServer, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
