package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/ContactsApp/internal/core/ports"
	"github.com/GoArmGo/ContactsApp/internal/domain"
	"github.com/GoArmGo/ContactsApp/internal/model"
	"github.com/GoArmGo/ContactsApp/internal/resperr"
	"github.com/GoArmGo/ContactsApp/internal/validation"
)

// addressUseCase implements AddressUseCase
type addressUseCase struct {
	addressStorage ports.AddressStorage
	contactUseCase ContactUseCase
	logger         *slog.Logger
}

// NewAddressUseCase создает новый экземпляр AddressUseCase.
// Проверка владения контактом делегируется ContactUseCase —
// тому же примитиву, которым пользуются операции над контактами.
func NewAddressUseCase(addressStorage ports.AddressStorage, contactUseCase ContactUseCase, logger *slog.Logger) AddressUseCase {
	return &addressUseCase{
		addressStorage: addressStorage,
		contactUseCase: contactUseCase,
		logger:         logger,
	}
}

// Create сохраняет адрес после проверки, что родительский контакт
// существует и принадлежит пользователю.
func (uc *addressUseCase) Create(ctx context.Context, user *domain.User, request model.CreateAddressRequest) (*model.AddressResponse, error) {
	if err := validation.Validate(request); err != nil {
		return nil, err
	}

	if _, err := uc.contactUseCase.CheckContactMustExist(ctx, user.Username, request.ContactID); err != nil {
		return nil, err
	}

	address := &domain.Address{
		ContactID:  request.ContactID,
		Street:     request.Street,
		City:       request.City,
		Province:   request.Province,
		Country:    request.Country,
		PostalCode: request.PostalCode,
	}

	if err := uc.addressStorage.Create(ctx, address); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при создании адреса: %w", err)
	}

	uc.logger.Debug("address created", "address_id", address.ID, "contact_id", address.ContactID)
	return model.ToAddressResponse(address), nil
}

// CheckAddressMustExist ищет адрес сразу по id и contact_id.
func (uc *addressUseCase) CheckAddressMustExist(ctx context.Context, contactID, addressID int64) (*domain.Address, error) {
	address, err := uc.addressStorage.FindByIDAndContactID(ctx, addressID, contactID)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при поиске адреса: %w", err)
	}
	if address == nil {
		return nil, resperr.NotFound("Address not found")
	}
	return address, nil
}

func (uc *addressUseCase) Get(ctx context.Context, user *domain.User, request model.GetAddressRequest) (*model.AddressResponse, error) {
	if err := validation.Validate(request); err != nil {
		return nil, err
	}

	if _, err := uc.contactUseCase.CheckContactMustExist(ctx, user.Username, request.ContactID); err != nil {
		return nil, err
	}

	address, err := uc.CheckAddressMustExist(ctx, request.ContactID, request.ID)
	if err != nil {
		return nil, err
	}

	return model.ToAddressResponse(address), nil
}

// Update полностью перезаписывает присланные поля адреса.
func (uc *addressUseCase) Update(ctx context.Context, user *domain.User, request model.UpdateAddressRequest) (*model.AddressResponse, error) {
	if err := validation.Validate(request); err != nil {
		return nil, err
	}

	if _, err := uc.contactUseCase.CheckContactMustExist(ctx, user.Username, request.ContactID); err != nil {
		return nil, err
	}

	if _, err := uc.CheckAddressMustExist(ctx, request.ContactID, request.ID); err != nil {
		return nil, err
	}

	address := &domain.Address{
		ID:         request.ID,
		ContactID:  request.ContactID,
		Street:     request.Street,
		City:       request.City,
		Province:   request.Province,
		Country:    request.Country,
		PostalCode: request.PostalCode,
	}

	found, err := uc.addressStorage.Update(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при обновлении адреса: %w", err)
	}
	if !found {
		return nil, resperr.NotFound("Address not found")
	}

	return model.ToAddressResponse(address), nil
}

// Remove удаляет адрес и возвращает его последнее состояние.
func (uc *addressUseCase) Remove(ctx context.Context, user *domain.User, request model.RemoveAddressRequest) (*model.AddressResponse, error) {
	if err := validation.Validate(request); err != nil {
		return nil, err
	}

	if _, err := uc.contactUseCase.CheckContactMustExist(ctx, user.Username, request.ContactID); err != nil {
		return nil, err
	}

	address, err := uc.CheckAddressMustExist(ctx, request.ContactID, request.ID)
	if err != nil {
		return nil, err
	}

	found, err := uc.addressStorage.Delete(ctx, request.ID, request.ContactID)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при удалении адреса: %w", err)
	}
	if !found {
		return nil, resperr.NotFound("Address not found")
	}

	return model.ToAddressResponse(address), nil
}

// List возвращает все адреса контакта после проверки владения.
func (uc *addressUseCase) List(ctx context.Context, user *domain.User, contactID int64) ([]model.AddressResponse, error) {
	if _, err := uc.contactUseCase.CheckContactMustExist(ctx, user.Username, contactID); err != nil {
		return nil, err
	}

	addresses, err := uc.addressStorage.ListByContactID(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении списка адресов: %w", err)
	}

	responses := make([]model.AddressResponse, 0, len(addresses))
	for i := range addresses {
		responses = append(responses, *model.ToAddressResponse(&addresses[i]))
	}
	return responses, nil
}
