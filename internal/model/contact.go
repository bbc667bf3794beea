package model

import "github.com/GoArmGo/ContactsApp/internal/domain"

type ContactResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

type CreateContactRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,min=1,max=20"`
}

// UpdateContactRequest — полная замена всех валидируемых полей:
// отсутствующее опциональное поле очищает значение в записи.
type UpdateContactRequest struct {
	ID        int64   `json:"id" validate:"required,gt=0"`
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,min=1,max=20"`
}

// ListContactRequest — фильтры комбинируются по AND,
// name сравнивается и с first_name, и с last_name (подстрока).
type ListContactRequest struct {
	Name  string `json:"name" validate:"omitempty,min=1"`
	Email string `json:"email" validate:"omitempty,min=1"`
	Phone string `json:"phone" validate:"omitempty,min=1"`
	Page  int    `json:"page" validate:"required,min=1"`
	Limit int    `json:"limit" validate:"required,min=1,max=100"`
}

// ToContactResponse проецирует доменную модель в публичный ответ
// (владелец не отдается, клиент и так аутентифицирован как владелец).
func ToContactResponse(contact *domain.Contact) *ContactResponse {
	return &ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}
