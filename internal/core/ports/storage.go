package ports

import (
	"context"

	"github.com/GoArmGo/ContactsApp/internal/domain"
)

// ContactFilter описывает фильтры списка контактов.
// Пустое поле означает отсутствие фильтра; name сравнивается
// с first_name и last_name как подстрока.
type ContactFilter struct {
	Username string
	Name     string
	Email    string
	Phone    string
}

// UserStorage определяет методы для взаимодействия с хранилищем пользователей
type UserStorage interface {
	// FindByUsername возвращает (nil, nil), если пользователь не найден.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindByToken разрешает непрозрачный сессионный токен в пользователя
	// одним обращением к хранилищу. (nil, nil), если токен никому не выдан.
	FindByToken(ctx context.Context, token string) (*domain.User, error)

	Create(ctx context.Context, user *domain.User) error

	// Update перезаписывает name, password и token по username.
	Update(ctx context.Context, user *domain.User) error
}

// ContactStorage определяет методы для взаимодействия с хранилищем контактов
type ContactStorage interface {
	Create(ctx context.Context, contact *domain.Contact) error

	// FindByIDAndUsername ищет контакт одновременно по id и владельцу —
	// это единственный примитив авторизации для контактов.
	// (nil, nil), если контакт отсутствует или принадлежит другому.
	FindByIDAndUsername(ctx context.Context, id int64, username string) (*domain.Contact, error)

	// Update полностью перезаписывает валидируемые поля контакта.
	// Предикат включает владельца; found=false, если запись исчезла
	// или сменила владельца между проверкой и записью.
	Update(ctx context.Context, contact *domain.Contact) (found bool, err error)

	// Delete удаляет контакт по id и владельцу.
	Delete(ctx context.Context, id int64, username string) (found bool, err error)

	List(ctx context.Context, filter ContactFilter, page, limit int) ([]domain.Contact, error)
	Count(ctx context.Context, filter ContactFilter) (int64, error)
}

// AddressStorage определяет методы для взаимодействия с хранилищем адресов
type AddressStorage interface {
	Create(ctx context.Context, address *domain.Address) error

	// FindByIDAndContactID ищет адрес одновременно по id и contact_id.
	// (nil, nil), если адрес отсутствует под этим контактом.
	FindByIDAndContactID(ctx context.Context, id, contactID int64) (*domain.Address, error)

	Update(ctx context.Context, address *domain.Address) (found bool, err error)
	Delete(ctx context.Context, id, contactID int64) (found bool, err error)
	ListByContactID(ctx context.Context, contactID int64) ([]domain.Address, error)
}
