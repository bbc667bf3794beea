package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/ContactsApp/internal/auth"
	"github.com/GoArmGo/ContactsApp/internal/core/ports"
	"github.com/GoArmGo/ContactsApp/internal/domain"
	"github.com/GoArmGo/ContactsApp/internal/model"
	"github.com/GoArmGo/ContactsApp/internal/resperr"
	"github.com/GoArmGo/ContactsApp/internal/validation"
)

// userUseCase implements UserUseCase
type userUseCase struct {
	userStorage ports.UserStorage
	logger      *slog.Logger
}

// NewUserUseCase создает новый экземпляр UserUseCase
func NewUserUseCase(userStorage ports.UserStorage, logger *slog.Logger) UserUseCase {
	return &userUseCase{
		userStorage: userStorage,
		logger:      logger,
	}
}

// Register создает нового пользователя с bcrypt-хешем пароля.
func (uc *userUseCase) Register(ctx context.Context, request model.RegisterUserRequest) (*model.UserResponse, error) {
	if err := validation.Validate(request); err != nil {
		return nil, err
	}

	existing, err := uc.userStorage.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при проверке занятости имени пользователя: %w", err)
	}
	if existing != nil {
		return nil, resperr.BadRequest("username_exist")
	}

	digest, err := auth.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("usecase: %w", err)
	}

	user := &domain.User{
		Username: request.Username,
		Password: digest,
		Name:     request.Name,
	}

	if err := uc.userStorage.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при создании пользователя: %w", err)
	}

	uc.logger.Info("user registered", "username", user.Username)
	return model.ToUserResponse(user), nil
}

// Login проверяет учетные данные и выдает новый сессионный токен.
func (uc *userUseCase) Login(ctx context.Context, request model.LoginUserRequest) (*model.UserResponse, error) {
	if err := validation.Validate(request); err != nil {
		return nil, err
	}

	user, err := uc.userStorage.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении пользователя: %w", err)
	}

	// Единое сообщение для обоих факторов: не раскрываем, что именно не совпало.
	if user == nil {
		return nil, resperr.Unauthorized("username_password_is_wrong")
	}
	if !auth.VerifyPassword(request.Password, user.Password) {
		return nil, resperr.Unauthorized("username_password_is_wrong")
	}

	token, err := auth.NewSessionToken()
	if err != nil {
		return nil, fmt.Errorf("usecase: %w", err)
	}
	user.Token = &token

	if err := uc.userStorage.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при сохранении сессионного токена: %w", err)
	}

	uc.logger.Info("user logged in", "username", user.Username)

	response := model.ToUserResponse(user)
	response.Token = token
	return response, nil
}

// Get проецирует уже аутентифицированного пользователя в публичный профиль.
func (uc *userUseCase) Get(ctx context.Context, user *domain.User) (*model.UserResponse, error) {
	return model.ToUserResponse(user), nil
}

// Update применяет только присланные поля (частичное обновление).
func (uc *userUseCase) Update(ctx context.Context, user *domain.User, request model.UpdateUserRequest) (*model.UserResponse, error) {
	if err := validation.Validate(request); err != nil {
		return nil, err
	}

	if request.Name != nil {
		user.Name = *request.Name
	}

	if request.Password != nil {
		digest, err := auth.HashPassword(*request.Password)
		if err != nil {
			return nil, fmt.Errorf("usecase: %w", err)
		}
		user.Password = digest
	}

	if err := uc.userStorage.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при обновлении профиля: %w", err)
	}

	uc.logger.Debug("user profile updated", "username", user.Username)
	return model.ToUserResponse(user), nil
}

// Logout сбрасывает токен: после этого старое значение никого не аутентифицирует.
func (uc *userUseCase) Logout(ctx context.Context, user *domain.User) error {
	user.Token = nil

	if err := uc.userStorage.Update(ctx, user); err != nil {
		return fmt.Errorf("usecase: ошибка при сбросе сессионного токена: %w", err)
	}

	uc.logger.Info("user logged out", "username", user.Username)
	return nil
}
