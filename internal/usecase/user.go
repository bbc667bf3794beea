package usecase

import (
	"context"

	"github.com/GoArmGo/ContactsApp/internal/domain"
	"github.com/GoArmGo/ContactsApp/internal/model"
)

// UserUseCase определяет бизнес-логику работы с учетными записями.
// Register и Login — единственные операции, доступные без аутентификации;
// остальные получают уже аутентифицированного пользователя от middleware.
type UserUseCase interface {
	// Register создает нового пользователя. Занятое имя — 400 username_exist.
	// В ответе никогда нет ни хеша пароля, ни токена.
	Register(ctx context.Context, request model.RegisterUserRequest) (*model.UserResponse, error)

	// Login проверяет учетные данные и ротирует сессионный токен.
	// Несуществующее имя и неверный пароль дают одинаковую ошибку 401,
	// чтобы не раскрывать, какой из факторов не совпал.
	Login(ctx context.Context, request model.LoginUserRequest) (*model.UserResponse, error)

	// Get проецирует аутентифицированного пользователя в публичный профиль.
	Get(ctx context.Context, user *domain.User) (*model.UserResponse, error)

	// Update — частичное обновление: отсутствующие поля не трогаются,
	// присланный пароль перехешируется.
	Update(ctx context.Context, user *domain.User, request model.UpdateUserRequest) (*model.UserResponse, error)

	// Logout сбрасывает сессионный токен: старое значение перестает
	// аутентифицировать запросы.
	Logout(ctx context.Context, user *domain.User) error
}
