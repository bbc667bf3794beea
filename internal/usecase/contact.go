package usecase

import (
	"context"

	"github.com/GoArmGo/ContactsApp/internal/domain"
	"github.com/GoArmGo/ContactsApp/internal/model"
)

// ContactUseCase определяет бизнес-логику работы с контактами.
// Все операции ограничены контактами аутентифицированного пользователя.
type ContactUseCase interface {
	Create(ctx context.Context, user *domain.User, request model.CreateContactRequest) (*model.ContactResponse, error)

	Get(ctx context.Context, user *domain.User, id int64) (*model.ContactResponse, error)

	// Update — полная замена валидируемых полей: отсутствующее
	// опциональное поле очищает значение, а не сохраняет старое.
	Update(ctx context.Context, user *domain.User, request model.UpdateContactRequest) (*model.ContactResponse, error)

	// Remove удаляет контакт и возвращает его последнее состояние.
	Remove(ctx context.Context, user *domain.User, id int64) (*model.ContactResponse, error)

	// List возвращает страницу контактов с фильтрами и данными пагинации.
	List(ctx context.Context, user *domain.User, request model.ListContactRequest) ([]model.ContactResponse, *model.Paging, error)

	// CheckContactMustExist — единственный примитив авторизации:
	// контакт ищется сразу по id и владельцу, иначе 404 contact_not_found.
	// Чужой контакт неотличим от несуществующего.
	CheckContactMustExist(ctx context.Context, username string, contactID int64) (*domain.Contact, error)
}
