package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/ContactsApp/internal/model"
	"github.com/GoArmGo/ContactsApp/internal/usecase"
)

// AddressHandler — обработчик HTTP-запросов для работы с адресами контактов.
type AddressHandler struct {
	addressUseCase usecase.AddressUseCase
	logger         *slog.Logger
}

// NewAddressHandler создаёт новый экземпляр AddressHandler.
func NewAddressHandler(uc usecase.AddressUseCase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{addressUseCase: uc, logger: logger}
}

// Create — POST /api/contacts/{contactId}/addresses
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	contactID, err := parseIDParam(r, "contactId")
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	var request model.CreateAddressRequest
	if err := decodeJSON(r, &request); err != nil {
		respondWithError(w, err, h.logger)
		return
	}
	request.ContactID = contactID

	response, err := h.addressUseCase.Create(r.Context(), user, request)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithData(w, response, h.logger)
}

// Get — GET /api/contacts/{contactId}/addresses/{addressId}
func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	request, err := addressIDsFromPath(r)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	response, err := h.addressUseCase.Get(r.Context(), user, request)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithData(w, response, h.logger)
}

// Update — POST /api/contacts/{contactId}/addresses/{addressId}/update
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	ids, err := addressIDsFromPath(r)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	var request model.UpdateAddressRequest
	if err := decodeJSON(r, &request); err != nil {
		respondWithError(w, err, h.logger)
		return
	}
	request.ID = ids.ID
	request.ContactID = ids.ContactID

	response, err := h.addressUseCase.Update(r.Context(), user, request)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithData(w, response, h.logger)
}

// Delete — POST /api/contacts/{contactId}/addresses/{addressId}/delete
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	ids, err := addressIDsFromPath(r)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	request := model.RemoveAddressRequest{ID: ids.ID, ContactID: ids.ContactID}
	if _, err := h.addressUseCase.Remove(r.Context(), user, request); err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithData(w, "OK", h.logger)
}

// List — GET /api/contacts/{contactId}/addresses/list
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	contactID, err := parseIDParam(r, "contactId")
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	responses, err := h.addressUseCase.List(r.Context(), user, contactID)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithData(w, responses, h.logger)
}

// addressIDsFromPath достает пару (contactId, addressId) из пути запроса.
func addressIDsFromPath(r *http.Request) (model.GetAddressRequest, error) {
	contactID, err := parseIDParam(r, "contactId")
	if err != nil {
		return model.GetAddressRequest{}, err
	}
	addressID, err := parseIDParam(r, "addressId")
	if err != nil {
		return model.GetAddressRequest{}, err
	}
	return model.GetAddressRequest{ContactID: contactID, ID: addressID}, nil
}
