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

// contactUseCase implements ContactUseCase
type contactUseCase struct {
	contactStorage ports.ContactStorage
	logger         *slog.Logger
}

// NewContactUseCase создает новый экземпляр ContactUseCase
func NewContactUseCase(contactStorage ports.ContactStorage, logger *slog.Logger) ContactUseCase {
	return &contactUseCase{
		contactStorage: contactStorage,
		logger:         logger,
	}
}

// Create сохраняет контакт, привязывая его к аутентифицированному пользователю.
func (uc *contactUseCase) Create(ctx context.Context, user *domain.User, request model.CreateContactRequest) (*model.ContactResponse, error) {
	if err := validation.Validate(request); err != nil {
		return nil, err
	}

	contact := &domain.Contact{
		Username:  user.Username,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Phone:     request.Phone,
	}

	if err := uc.contactStorage.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при создании контакта: %w", err)
	}

	uc.logger.Debug("contact created", "contact_id", contact.ID, "username", user.Username)
	return model.ToContactResponse(contact), nil
}

// CheckContactMustExist ищет контакт сразу по id и владельцу.
// Несуществующий и чужой контакт дают один и тот же 404.
func (uc *contactUseCase) CheckContactMustExist(ctx context.Context, username string, contactID int64) (*domain.Contact, error) {
	contact, err := uc.contactStorage.FindByIDAndUsername(ctx, contactID, username)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при поиске контакта: %w", err)
	}
	if contact == nil {
		return nil, resperr.NotFound("contact_not_found")
	}
	return contact, nil
}

func (uc *contactUseCase) Get(ctx context.Context, user *domain.User, id int64) (*model.ContactResponse, error) {
	contact, err := uc.CheckContactMustExist(ctx, user.Username, id)
	if err != nil {
		return nil, err
	}
	return model.ToContactResponse(contact), nil
}

// Update полностью перезаписывает валидируемые поля контакта.
func (uc *contactUseCase) Update(ctx context.Context, user *domain.User, request model.UpdateContactRequest) (*model.ContactResponse, error) {
	if err := validation.Validate(request); err != nil {
		return nil, err
	}

	if _, err := uc.CheckContactMustExist(ctx, user.Username, request.ID); err != nil {
		return nil, err
	}

	contact := &domain.Contact{
		ID:        request.ID,
		Username:  user.Username,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Phone:     request.Phone,
	}

	found, err := uc.contactStorage.Update(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при обновлении контакта: %w", err)
	}
	// Контакт успел исчезнуть между проверкой и записью.
	if !found {
		return nil, resperr.NotFound("contact_not_found")
	}

	return model.ToContactResponse(contact), nil
}

// Remove удаляет контакт и возвращает его последнее состояние.
func (uc *contactUseCase) Remove(ctx context.Context, user *domain.User, id int64) (*model.ContactResponse, error) {
	contact, err := uc.CheckContactMustExist(ctx, user.Username, id)
	if err != nil {
		return nil, err
	}

	found, err := uc.contactStorage.Delete(ctx, id, user.Username)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при удалении контакта: %w", err)
	}
	if !found {
		return nil, resperr.NotFound("contact_not_found")
	}

	return model.ToContactResponse(contact), nil
}

// List возвращает страницу контактов и данные пагинации.
// Запрос данных и подсчет идут по одному и тому же фильтру.
func (uc *contactUseCase) List(ctx context.Context, user *domain.User, request model.ListContactRequest) ([]model.ContactResponse, *model.Paging, error) {
	if err := validation.Validate(request); err != nil {
		return nil, nil, err
	}

	filter := ports.ContactFilter{
		Username: user.Username,
		Name:     request.Name,
		Email:    request.Email,
		Phone:    request.Phone,
	}

	contacts, err := uc.contactStorage.List(ctx, filter, request.Page, request.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("usecase: ошибка при получении списка контактов: %w", err)
	}

	total, err := uc.contactStorage.Count(ctx, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("usecase: ошибка при подсчете контактов: %w", err)
	}

	responses := make([]model.ContactResponse, 0, len(contacts))
	for i := range contacts {
		responses = append(responses, *model.ToContactResponse(&contacts[i]))
	}

	totalPage := int((total + int64(request.Limit) - 1) / int64(request.Limit))
	paging := &model.Paging{
		CurrentPage: request.Page,
		TotalPage:   totalPage,
		Limit:       request.Limit,
	}

	return responses, paging, nil
}
