package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/ContactsApp/internal/model"
	"github.com/GoArmGo/ContactsApp/internal/resperr"
	"github.com/go-chi/chi/v5"
)

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithData — отправляет успешный ответ в конверте {"data": ...}.
func respondWithData(w http.ResponseWriter, payload interface{}, logger *slog.Logger) {
	respondWithJSON(w, http.StatusOK, model.WebResponse[interface{}]{Data: payload}, logger)
}

// respondWithError — единая граница трансляции ошибок в HTTP-ответ.
// Ошибки из таксономии resperr выходят со своим статусом и ключом,
// все остальное — 500 без деталей.
func respondWithError(w http.ResponseWriter, err error, logger *slog.Logger) {
	status := resperr.Status(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
	}
	respondWithJSON(w, status, model.ErrorResponse{Errors: resperr.Message(err)}, logger)
}

// decodeJSON разбирает тело запроса; мусор на входе — это 400, а не 500.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return resperr.BadRequest("invalid request body")
	}
	return nil
}

// parseIDParam достает положительный числовой параметр из пути.
func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, resperr.BadRequest("invalid path parameter: " + name)
	}
	return id, nil
}
