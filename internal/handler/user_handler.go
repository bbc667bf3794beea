package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/ContactsApp/internal/model"
	"github.com/GoArmGo/ContactsApp/internal/usecase"
)

// UserHandler — обработчик HTTP-запросов для работы с учетными записями.
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler создаёт новый экземпляр UserHandler.
func NewUserHandler(uc usecase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{userUseCase: uc, logger: logger}
}

// Register — POST /api/users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var request model.RegisterUserRequest
	if err := decodeJSON(r, &request); err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	response, err := h.userUseCase.Register(r.Context(), request)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithData(w, response, h.logger)
}

// Login — POST /api/users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var request model.LoginUserRequest
	if err := decodeJSON(r, &request); err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	response, err := h.userUseCase.Login(r.Context(), request)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithData(w, response, h.logger)
}

// Current — GET /api/users/current
func (h *UserHandler) Current(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	response, err := h.userUseCase.Get(r.Context(), user)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithData(w, response, h.logger)
}

// UpdateCurrent — POST /api/users/current/update
func (h *UserHandler) UpdateCurrent(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var request model.UpdateUserRequest
	if err := decodeJSON(r, &request); err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	response, err := h.userUseCase.Update(r.Context(), user, request)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithData(w, response, h.logger)
}

// Logout — POST /api/users/current/logout
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	if err := h.userUseCase.Logout(r.Context(), user); err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	respondWithData(w, "OK", h.logger)
}
