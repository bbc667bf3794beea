package model

import "github.com/GoArmGo/ContactsApp/internal/domain"

type AddressResponse struct {
	ID         int64   `json:"id"`
	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	Province   *string `json:"province,omitempty"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}

type CreateAddressRequest struct {
	ContactID  int64   `json:"-" validate:"required,gt=0"`
	Street     *string `json:"street" validate:"omitempty,min=1,max=255"`
	City       *string `json:"city" validate:"omitempty,min=1,max=100"`
	Province   *string `json:"province" validate:"omitempty,min=1,max=100"`
	Country    string  `json:"country" validate:"required,max=100"`
	PostalCode string  `json:"postal_code" validate:"required,max=10"`
}

type GetAddressRequest struct {
	ContactID int64 `json:"-" validate:"required,gt=0"`
	ID        int64 `json:"-" validate:"required,gt=0"`
}

type RemoveAddressRequest struct {
	ContactID int64 `json:"-" validate:"required,gt=0"`
	ID        int64 `json:"-" validate:"required,gt=0"`
}

type UpdateAddressRequest struct {
	ID         int64   `json:"-" validate:"required,gt=0"`
	ContactID  int64   `json:"-" validate:"required,gt=0"`
	Street     *string `json:"street" validate:"omitempty,min=1,max=255"`
	City       *string `json:"city" validate:"omitempty,min=1,max=100"`
	Province   *string `json:"province" validate:"omitempty,min=1,max=100"`
	Country    string  `json:"country" validate:"required,max=100"`
	PostalCode string  `json:"postal_code" validate:"required,max=10"`
}

func ToAddressResponse(address *domain.Address) *AddressResponse {
	return &AddressResponse{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}
