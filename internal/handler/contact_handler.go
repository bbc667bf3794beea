package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/ContactsApp/internal/model"
	"github.com/GoArmGo/ContactsApp/internal/usecase"
)

// ContactHandler — обработчик HTTP-запросов для работы с контактами.
type ContactHandler struct {
	contactUseCase usecase.ContactUseCase
	logger         *slog.Logger
}

// NewContactHandler создаёт новый экземпляр ContactHandler.
func NewContactHandler(uc usecase.ContactUseCase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{contactUseCase: uc, logger: logger}
}

// Create — POST /api/contacts/create
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var request model.CreateContactRequest
	if err := decodeJSON(r, &request); err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	response, err := h.contactUseCase.Create(r.Context(), user, request)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithData(w, response, h.logger)
}

// Get — GET /api/contacts/{contactId}
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	contactID, err := parseIDParam(r, "contactId")
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	response, err := h.contactUseCase.Get(r.Context(), user, contactID)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithData(w, response, h.logger)
}

// Update — POST /api/contacts/update/{contactId}
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	contactID, err := parseIDParam(r, "contactId")
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	var request model.UpdateContactRequest
	if err := decodeJSON(r, &request); err != nil {
		respondWithError(w, err, h.logger)
		return
	}
	request.ID = contactID

	response, err := h.contactUseCase.Update(r.Context(), user, request)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithData(w, response, h.logger)
}

// Delete — POST /api/contacts/delete/{contactId}
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	contactID, err := parseIDParam(r, "contactId")
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	if _, err := h.contactUseCase.Remove(r.Context(), user, contactID); err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithData(w, "OK", h.logger)
}

// List — GET /api/contacts/list
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 10
	}

	request := model.ListContactRequest{
		Name:  r.URL.Query().Get("name"),
		Email: r.URL.Query().Get("email"),
		Phone: r.URL.Query().Get("phone"),
		Page:  page,
		Limit: limit,
	}

	responses, paging, err := h.contactUseCase.List(r.Context(), user, request)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, model.WebResponseWithPaging[model.ContactResponse]{
		Data:   responses,
		Paging: *paging,
	}, h.logger)
}
