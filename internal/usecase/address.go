package usecase

import (
	"context"

	"github.com/GoArmGo/ContactsApp/internal/domain"
	"github.com/GoArmGo/ContactsApp/internal/model"
)

// AddressUseCase определяет бизнес-логику работы с адресами контактов.
// Владение проверяется транзитивно и заново на каждой операции:
// сначала контакт под пользователем, затем адрес под контактом.
type AddressUseCase interface {
	Create(ctx context.Context, user *domain.User, request model.CreateAddressRequest) (*model.AddressResponse, error)

	Get(ctx context.Context, user *domain.User, request model.GetAddressRequest) (*model.AddressResponse, error)

	Update(ctx context.Context, user *domain.User, request model.UpdateAddressRequest) (*model.AddressResponse, error)

	// Remove удаляет адрес и возвращает его последнее состояние.
	Remove(ctx context.Context, user *domain.User, request model.RemoveAddressRequest) (*model.AddressResponse, error)

	// List возвращает все адреса контакта, без пагинации.
	List(ctx context.Context, user *domain.User, contactID int64) ([]model.AddressResponse, error)

	// CheckAddressMustExist ищет адрес сразу по id и contact_id,
	// иначе 404 "Address not found".
	CheckAddressMustExist(ctx context.Context, contactID, addressID int64) (*domain.Address, error)
}
