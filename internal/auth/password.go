// Package auth отвечает за хеширование паролей и выпуск сессионных токенов.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Фиксированный work factor, как в исходной схеме учетных записей.
const bcryptCost = 10

// HashPassword возвращает необратимый соленый bcrypt-дайджест пароля.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("ошибка хеширования пароля: %w", err)
	}
	return string(digest), nil
}

// VerifyPassword сверяет пароль с дайджестом. Сравнение устойчиво
// к тайминг-атакам — это гарантия самой bcrypt-библиотеки.
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
