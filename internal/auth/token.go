package auth

import (
	"fmt"

	"github.com/google/uuid"
)

// NewSessionToken выпускает новый непрозрачный сессионный токен — UUIDv7,
// глобально уникальный и упорядоченный по времени. Токен ротируется на каждом
// логине: аутентифицирует только последнее выданное значение.
func NewSessionToken() (string, error) {
	token, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("ошибка генерации сессионного токена: %w", err)
	}
	return token.String(), nil
}
