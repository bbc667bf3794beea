// Package validation проверяет входящие запросы по validate-тегам моделей.
// Проверки чистые и детерминированные: никаких побочных эффектов,
// повторный вызов для того же значения дает тот же результат.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/GoArmGo/ContactsApp/internal/resperr"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate проверяет запрос и возвращает 400 с перечислением
// нарушенных полей, если он не проходит по схеме.
func Validate(request any) error {
	err := validate.Struct(request)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return resperr.BadRequest("validation failed: " + strings.Join(fields, ", "))
	}

	return resperr.BadRequest(err.Error())
}
