package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/ContactsApp/internal/domain"
	"gorm.io/gorm"
)

// UserStorage реализует интерфейс ports.UserStorage с использованием GORM
type UserStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewUserStorage создает новый экземпляр UserStorage
func NewUserStorage(db *gorm.DB, logger *slog.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// FindByUsername получает пользователя по имени. (nil, nil), если не найден.
func (s *UserStorage) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	result := s.db.WithContext(ctx).First(&user, "username = ?", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to find user by username", "username", username, "error", result.Error)
		return nil, fmt.Errorf("ошибка при получении пользователя по имени: %w", result.Error)
	}
	return &user, nil
}

// FindByToken разрешает сессионный токен в пользователя одним запросом.
func (s *UserStorage) FindByToken(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	result := s.db.WithContext(ctx).First(&user, "token = ?", token)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to find user by token", "error", result.Error)
		return nil, fmt.Errorf("ошибка при получении пользователя по токену: %w", result.Error)
	}
	return &user, nil
}

// Create сохраняет нового пользователя в базе данных
func (s *UserStorage) Create(ctx context.Context, user *domain.User) error {
	start := time.Now()

	result := s.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		s.logger.Error("failed to create user", "username", user.Username, "error", result.Error)
		return fmt.Errorf("ошибка при сохранении пользователя в БД: %w", result.Error)
	}

	s.logger.Info("user created successfully",
		"username", user.Username,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// Update перезаписывает name, password и token по username.
// Select обязателен: token может обнуляться (logout).
func (s *UserStorage) Update(ctx context.Context, user *domain.User) error {
	result := s.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("username = ?", user.Username).
		Select("name", "password", "token").
		Updates(user)
	if result.Error != nil {
		s.logger.Error("failed to update user", "username", user.Username, "error", result.Error)
		return fmt.Errorf("ошибка при обновлении пользователя: %w", result.Error)
	}
	return nil
}
