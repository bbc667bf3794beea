// Package resperr содержит таксономию ошибок сервиса: каждая ошибка несет
// HTTP-статус и машиночитаемый ключ сообщения. Сервисы не глотают ошибки,
// а пробрасывают их без изменений до границы HTTP.
package resperr

import (
	"errors"
	"net/http"
)

// Error — ошибка уровня запроса со статусом и ключом сообщения.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

// BadRequest — некорректный ввод, в том числе конфликт имени пользователя.
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Status возвращает HTTP-статус для любой ошибки.
// Неизвестные ошибки считаются внутренними (500).
func Status(err error) int {
	var re *Error
	if errors.As(err, &re) {
		return re.Code
	}
	return http.StatusInternalServerError
}

// Message возвращает текст, который можно показать клиенту.
// Для внутренних ошибок детали наружу не выдаются.
func Message(err error) string {
	var re *Error
	if errors.As(err, &re) {
		return re.Message
	}
	return "internal_server_error"
}
