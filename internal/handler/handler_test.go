package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/GoArmGo/ContactsApp/internal/core/ports"
	"github.com/GoArmGo/ContactsApp/internal/domain"
	"github.com/GoArmGo/ContactsApp/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- in-memory хранилища ---

type memUserStorage struct {
	users map[string]*domain.User
}

func (m *memUserStorage) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (m *memUserStorage) FindByToken(ctx context.Context, token string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Token != nil && *user.Token == token {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserStorage) Create(ctx context.Context, user *domain.User) error {
	cp := *user
	m.users[user.Username] = &cp
	return nil
}

func (m *memUserStorage) Update(ctx context.Context, user *domain.User) error {
	if stored, ok := m.users[user.Username]; ok {
		stored.Name = user.Name
		stored.Password = user.Password
		stored.Token = user.Token
	}
	return nil
}

type memContactStorage struct {
	nextID   int64
	contacts []domain.Contact
}

func (m *memContactStorage) Create(ctx context.Context, contact *domain.Contact) error {
	m.nextID++
	contact.ID = m.nextID
	m.contacts = append(m.contacts, *contact)
	return nil
}

func (m *memContactStorage) FindByIDAndUsername(ctx context.Context, id int64, username string) (*domain.Contact, error) {
	for i := range m.contacts {
		if m.contacts[i].ID == id && m.contacts[i].Username == username {
			cp := m.contacts[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memContactStorage) Update(ctx context.Context, contact *domain.Contact) (bool, error) {
	for i := range m.contacts {
		if m.contacts[i].ID == contact.ID && m.contacts[i].Username == contact.Username {
			m.contacts[i] = *contact
			return true, nil
		}
	}
	return false, nil
}

func (m *memContactStorage) Delete(ctx context.Context, id int64, username string) (bool, error) {
	for i := range m.contacts {
		if m.contacts[i].ID == id && m.contacts[i].Username == username {
			m.contacts = append(m.contacts[:i], m.contacts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memContactStorage) List(ctx context.Context, filter ports.ContactFilter, page, limit int) ([]domain.Contact, error) {
	var matched []domain.Contact
	for i := range m.contacts {
		if m.contacts[i].Username == filter.Username {
			matched = append(matched, m.contacts[i])
		}
	}
	offset := (page - 1) * limit
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (m *memContactStorage) Count(ctx context.Context, filter ports.ContactFilter) (int64, error) {
	var total int64
	for i := range m.contacts {
		if m.contacts[i].Username == filter.Username {
			total++
		}
	}
	return total, nil
}

type memAddressStorage struct {
	nextID    int64
	addresses []domain.Address
}

func (m *memAddressStorage) Create(ctx context.Context, address *domain.Address) error {
	m.nextID++
	address.ID = m.nextID
	m.addresses = append(m.addresses, *address)
	return nil
}

func (m *memAddressStorage) FindByIDAndContactID(ctx context.Context, id, contactID int64) (*domain.Address, error) {
	for i := range m.addresses {
		if m.addresses[i].ID == id && m.addresses[i].ContactID == contactID {
			cp := m.addresses[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memAddressStorage) Update(ctx context.Context, address *domain.Address) (bool, error) {
	for i := range m.addresses {
		if m.addresses[i].ID == address.ID && m.addresses[i].ContactID == address.ContactID {
			m.addresses[i] = *address
			return true, nil
		}
	}
	return false, nil
}

func (m *memAddressStorage) Delete(ctx context.Context, id, contactID int64) (bool, error) {
	for i := range m.addresses {
		if m.addresses[i].ID == id && m.addresses[i].ContactID == contactID {
			m.addresses = append(m.addresses[:i], m.addresses[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memAddressStorage) ListByContactID(ctx context.Context, contactID int64) ([]domain.Address, error) {
	var result []domain.Address
	for i := range m.addresses {
		if m.addresses[i].ContactID == contactID {
			result = append(result, m.addresses[i])
		}
	}
	return result, nil
}

// --- сборка тестового сервера ---

// newTestServer поднимает httptest.Server с той же схемой маршрутов,
// что и боевой сервер, но поверх in-memory хранилищ.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userStorage := &memUserStorage{users: make(map[string]*domain.User)}
	contactStorage := &memContactStorage{}
	addressStorage := &memAddressStorage{}

	userUC := usecase.NewUserUseCase(userStorage, logger)
	contactUC := usecase.NewContactUseCase(contactStorage, logger)
	addressUC := usecase.NewAddressUseCase(addressStorage, contactUC, logger)

	userHandler := NewUserHandler(userUC, logger)
	contactHandler := NewContactHandler(contactUC, logger)
	addressHandler := NewAddressHandler(addressUC, logger)

	r := chi.NewRouter()
	r.Post("/api/users/register", userHandler.Register)
	r.Post("/api/users/login", userHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(Auth(userStorage, logger))

		r.Get("/api/users/current", userHandler.Current)
		r.Post("/api/users/current/update", userHandler.UpdateCurrent)
		r.Post("/api/users/current/logout", userHandler.Logout)

		r.Post("/api/contacts/create", contactHandler.Create)
		r.Get("/api/contacts/list", contactHandler.List)
		r.Get("/api/contacts/{contactId}", contactHandler.Get)
		r.Post("/api/contacts/update/{contactId}", contactHandler.Update)
		r.Post("/api/contacts/delete/{contactId}", contactHandler.Delete)

		r.Post("/api/contacts/{contactId}/addresses", addressHandler.Create)
		r.Get("/api/contacts/{contactId}/addresses/list", addressHandler.List)
		r.Get("/api/contacts/{contactId}/addresses/{addressId}", addressHandler.Get)
		r.Post("/api/contacts/{contactId}/addresses/{addressId}/update", addressHandler.Update)
		r.Post("/api/contacts/{contactId}/addresses/{addressId}/delete", addressHandler.Delete)
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

// doRequest выполняет запрос и разбирает JSON-ответ в map.
func doRequest(t *testing.T, server *httptest.Server, method, path, token, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp.StatusCode, payload
}

// registerAndLogin регистрирует пользователя и возвращает его токен.
func registerAndLogin(t *testing.T, server *httptest.Server, username string) string {
	t.Helper()

	status, _ := doRequest(t, server, http.MethodPost, "/api/users/register", "",
		`{"username":"`+username+`","password":"secret","name":"Test"}`)
	require.Equal(t, http.StatusOK, status)

	status, payload := doRequest(t, server, http.MethodPost, "/api/users/login", "",
		`{"username":"`+username+`","password":"secret"}`)
	require.Equal(t, http.StatusOK, status)

	data := payload["data"].(map[string]any)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// --- tests ---

func TestRegisterResponseEnvelope(t *testing.T) {
	server := newTestServer(t)

	status, payload := doRequest(t, server, http.MethodPost, "/api/users/register", "",
		`{"username":"test","password":"secret","name":"Test User"}`)

	require.Equal(t, http.StatusOK, status)
	data := payload["data"].(map[string]any)
	assert.Equal(t, "test", data["username"])
	assert.Equal(t, "Test User", data["name"])
	// пароль и токен не попадают в ответ
	assert.NotContains(t, data, "password")
	assert.NotContains(t, data, "token")
}

func TestRegisterMalformedBody(t *testing.T) {
	server := newTestServer(t)

	status, payload := doRequest(t, server, http.MethodPost, "/api/users/register", "", `{not json`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid request body", payload["errors"])
}

func TestLoginFailureEnvelope(t *testing.T) {
	server := newTestServer(t)
	registerAndLogin(t, server, "test")

	status, payload := doRequest(t, server, http.MethodPost, "/api/users/login", "",
		`{"username":"test","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "username_password_is_wrong", payload["errors"])
}

func TestAuthMiddleware(t *testing.T) {
	server := newTestServer(t)
	token := registerAndLogin(t, server, "test")

	// без токена
	status, payload := doRequest(t, server, http.MethodGet, "/api/users/current", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Unauthorized", payload["errors"])

	// с чужим (никому не выданным) токеном
	status, payload = doRequest(t, server, http.MethodGet, "/api/users/current", "never-issued", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Unauthorized", payload["errors"])

	// с действующим токеном
	status, payload = doRequest(t, server, http.MethodGet, "/api/users/current", token, "")
	require.Equal(t, http.StatusOK, status)
	data := payload["data"].(map[string]any)
	assert.Equal(t, "test", data["username"])
}

func TestLogoutRevokesToken(t *testing.T) {
	server := newTestServer(t)
	token := registerAndLogin(t, server, "test")

	status, payload := doRequest(t, server, http.MethodPost, "/api/users/current/logout", token, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", payload["data"])

	status, _ = doRequest(t, server, http.MethodGet, "/api/users/current", token, "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestContactLifecycleOverHTTP(t *testing.T) {
	server := newTestServer(t)
	token := registerAndLogin(t, server, "test")

	status, payload := doRequest(t, server, http.MethodPost, "/api/contacts/create", token,
		`{"first_name":"John","last_name":"Doe","email":"john@example.com"}`)
	require.Equal(t, http.StatusOK, status)
	created := payload["data"].(map[string]any)
	contactID := jsonNumber(created["id"].(float64))

	status, payload = doRequest(t, server, http.MethodGet, "/api/contacts/"+contactID, token, "")
	require.Equal(t, http.StatusOK, status)
	got := payload["data"].(map[string]any)
	assert.Equal(t, "John", got["first_name"])
	assert.Equal(t, "Doe", got["last_name"])

	status, payload = doRequest(t, server, http.MethodPost, "/api/contacts/delete/"+contactID, token, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", payload["data"])

	status, payload = doRequest(t, server, http.MethodGet, "/api/contacts/"+contactID, token, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "contact_not_found", payload["errors"])
}

func TestContactInvalidPathParam(t *testing.T) {
	server := newTestServer(t)
	token := registerAndLogin(t, server, "test")

	status, payload := doRequest(t, server, http.MethodGet, "/api/contacts/abc", token, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid path parameter: contactId", payload["errors"])
}

func TestContactListEnvelope(t *testing.T) {
	server := newTestServer(t)
	token := registerAndLogin(t, server, "test")

	for i := 0; i < 3; i++ {
		status, _ := doRequest(t, server, http.MethodPost, "/api/contacts/create", token,
			`{"first_name":"John"}`)
		require.Equal(t, http.StatusOK, status)
	}

	status, payload := doRequest(t, server, http.MethodGet, "/api/contacts/list?page=1&limit=2", token, "")
	require.Equal(t, http.StatusOK, status)

	data := payload["data"].([]any)
	assert.Len(t, data, 2)

	paging := payload["paging"].(map[string]any)
	assert.Equal(t, float64(1), paging["current_page"])
	assert.Equal(t, float64(2), paging["total_page"])
	assert.Equal(t, float64(2), paging["limit"])
}

func TestAddressLifecycleOverHTTP(t *testing.T) {
	server := newTestServer(t)
	token := registerAndLogin(t, server, "test")

	status, payload := doRequest(t, server, http.MethodPost, "/api/contacts/create", token,
		`{"first_name":"John"}`)
	require.Equal(t, http.StatusOK, status)
	contactID := jsonNumber(payload["data"].(map[string]any)["id"].(float64))

	status, payload = doRequest(t, server, http.MethodPost, "/api/contacts/"+contactID+"/addresses", token,
		`{"street":"Jalan Sudirman 1","city":"Jakarta","country":"Indonesia","postal_code":"12190"}`)
	require.Equal(t, http.StatusOK, status)
	addressID := jsonNumber(payload["data"].(map[string]any)["id"].(float64))

	base := "/api/contacts/" + contactID + "/addresses/" + addressID

	status, payload = doRequest(t, server, http.MethodGet, base, token, "")
	require.Equal(t, http.StatusOK, status)
	got := payload["data"].(map[string]any)
	assert.Equal(t, "Jakarta", got["city"])
	assert.Equal(t, "Indonesia", got["country"])

	status, payload = doRequest(t, server, http.MethodPost, base+"/delete", token, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", payload["data"])

	status, payload = doRequest(t, server, http.MethodGet, base, token, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Address not found", payload["errors"])
}

// Пользователь не видит и не трогает чужие контакты.
func TestCrossUserIsolationOverHTTP(t *testing.T) {
	server := newTestServer(t)
	aliceToken := registerAndLogin(t, server, "alice")
	bobToken := registerAndLogin(t, server, "bob")

	status, payload := doRequest(t, server, http.MethodPost, "/api/contacts/create", aliceToken,
		`{"first_name":"John"}`)
	require.Equal(t, http.StatusOK, status)
	contactID := jsonNumber(payload["data"].(map[string]any)["id"].(float64))

	status, payload = doRequest(t, server, http.MethodGet, "/api/contacts/"+contactID, bobToken, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "contact_not_found", payload["errors"])

	status, _ = doRequest(t, server, http.MethodPost, "/api/contacts/delete/"+contactID, bobToken, "")
	assert.Equal(t, http.StatusNotFound, status)

	// контакт Алисы на месте
	status, _ = doRequest(t, server, http.MethodGet, "/api/contacts/"+contactID, aliceToken, "")
	assert.Equal(t, http.StatusOK, status)
}

// jsonNumber форматирует числовой id из разобранного JSON для подстановки в путь.
func jsonNumber(v float64) string {
	return strconv.FormatInt(int64(v), 10)
}
