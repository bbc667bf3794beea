package di

import (
	"github.com/GoArmGo/ContactsApp/internal/app"
	"github.com/GoArmGo/ContactsApp/internal/config"
	"github.com/GoArmGo/ContactsApp/internal/database/client"
	"github.com/GoArmGo/ContactsApp/internal/database/storage"
	"github.com/GoArmGo/ContactsApp/internal/handler"
	"github.com/GoArmGo/ContactsApp/internal/logger"
	"github.com/GoArmGo/ContactsApp/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента (sqlx для миграций + GORM-сессия)
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализация хранилищ
	userStorage := storage.NewUserStorage(dbClient.Gorm, slogger)
	contactStorage := storage.NewContactStorage(dbClient.Gorm, slogger)
	addressStorage := storage.NewAddressStorage(dbClient.Gorm, slogger)

	// 4. Инициализация бизнес-логики (usecases)
	userUseCase := usecase.NewUserUseCase(userStorage, slogger)
	contactUseCase := usecase.NewContactUseCase(contactStorage, slogger)
	addressUseCase := usecase.NewAddressUseCase(addressStorage, contactUseCase, slogger)

	// 5. Инициализация HTTP-обработчиков
	userHandler := handler.NewUserHandler(userUseCase, slogger)
	contactHandler := handler.NewContactHandler(contactUseCase, slogger)
	addressHandler := handler.NewAddressHandler(addressUseCase, slogger)

	// 6. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		dbClient.DB,
		userHandler,
		contactHandler,
		addressHandler,
		userStorage,
	)

	slogger.Info("all dependencies initialized")
	return application, nil
}
