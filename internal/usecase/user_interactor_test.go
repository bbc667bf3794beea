package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/GoArmGo/ContactsApp/internal/auth"
	"github.com/GoArmGo/ContactsApp/internal/domain"
	"github.com/GoArmGo/ContactsApp/internal/model"
	"github.com/GoArmGo/ContactsApp/internal/resperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserStorage — in-memory реализация ports.UserStorage
type fakeUserStorage struct {
	users map[string]*domain.User
}

func newFakeUserStorage() *fakeUserStorage {
	return &fakeUserStorage{users: make(map[string]*domain.User)}
}

func (f *fakeUserStorage) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (f *fakeUserStorage) FindByToken(ctx context.Context, token string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Token != nil && *user.Token == token {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStorage) Create(ctx context.Context, user *domain.User) error {
	cp := *user
	f.users[user.Username] = &cp
	return nil
}

func (f *fakeUserStorage) Update(ctx context.Context, user *domain.User) error {
	stored, ok := f.users[user.Username]
	if !ok {
		return nil
	}
	stored.Name = user.Name
	stored.Password = user.Password
	stored.Token = user.Token
	return nil
}

func registerTestUser(t *testing.T, uc UserUseCase) *model.UserResponse {
	t.Helper()
	response, err := uc.Register(context.Background(), model.RegisterUserRequest{
		Username: "test",
		Password: "secret",
		Name:     "Test User",
	})
	require.NoError(t, err)
	return response
}

// --- tests ---

func TestUserRegister(t *testing.T) {
	store := newFakeUserStorage()
	uc := NewUserUseCase(store, testLogger())

	response := registerTestUser(t, uc)

	assert.Equal(t, "test", response.Username)
	assert.Equal(t, "Test User", response.Name)
	// токен выдается только при логине
	assert.Empty(t, response.Token)

	// в хранилище лежит bcrypt-дайджест, а не исходный пароль
	stored := store.users["test"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret", stored.Password)
	assert.True(t, auth.VerifyPassword("secret", stored.Password))
}

func TestUserRegisterDuplicateUsername(t *testing.T) {
	uc := NewUserUseCase(newFakeUserStorage(), testLogger())

	registerTestUser(t, uc)

	_, err := uc.Register(context.Background(), model.RegisterUserRequest{
		Username: "test",
		Password: "other",
		Name:     "Other",
	})
	require.Error(t, err)
	assert.Equal(t, 400, resperr.Status(err))
	assert.Equal(t, "username_exist", err.Error())
}

func TestUserRegisterValidation(t *testing.T) {
	uc := NewUserUseCase(newFakeUserStorage(), testLogger())

	longName := make([]byte, 101)
	for i := range longName {
		longName[i] = 'a'
	}

	tests := []struct {
		name    string
		request model.RegisterUserRequest
	}{
		{"empty username", model.RegisterUserRequest{Password: "p", Name: "n"}},
		{"empty password", model.RegisterUserRequest{Username: "u", Name: "n"}},
		{"empty name", model.RegisterUserRequest{Username: "u", Password: "p"}},
		{"username too long", model.RegisterUserRequest{Username: string(longName), Password: "p", Name: "n"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Register(context.Background(), tc.request)
			require.Error(t, err)
			assert.Equal(t, 400, resperr.Status(err))
		})
	}
}

func TestUserLoginRotatesToken(t *testing.T) {
	uc := NewUserUseCase(newFakeUserStorage(), testLogger())
	registerTestUser(t, uc)

	first, err := uc.Login(context.Background(), model.LoginUserRequest{Username: "test", Password: "secret"})
	require.NoError(t, err)
	require.NotEmpty(t, first.Token)

	second, err := uc.Login(context.Background(), model.LoginUserRequest{Username: "test", Password: "secret"})
	require.NoError(t, err)
	require.NotEmpty(t, second.Token)

	// каждый логин выдает новый токен
	assert.NotEqual(t, first.Token, second.Token)
}

func TestUserLoginUniformFailureMessage(t *testing.T) {
	uc := NewUserUseCase(newFakeUserStorage(), testLogger())
	registerTestUser(t, uc)

	_, errWrongPassword := uc.Login(context.Background(), model.LoginUserRequest{Username: "test", Password: "bad"})
	require.Error(t, errWrongPassword)

	_, errUnknownUser := uc.Login(context.Background(), model.LoginUserRequest{Username: "nobody", Password: "secret"})
	require.Error(t, errUnknownUser)

	// нельзя понять, какой из факторов не совпал
	assert.Equal(t, 401, resperr.Status(errWrongPassword))
	assert.Equal(t, 401, resperr.Status(errUnknownUser))
	assert.Equal(t, errWrongPassword.Error(), errUnknownUser.Error())
	assert.Equal(t, "username_password_is_wrong", errUnknownUser.Error())
}

func TestUserUpdatePartial(t *testing.T) {
	store := newFakeUserStorage()
	uc := NewUserUseCase(store, testLogger())
	registerTestUser(t, uc)

	digestBefore := store.users["test"].Password

	newName := "Renamed"
	user, err := store.FindByUsername(context.Background(), "test")
	require.NoError(t, err)

	response, err := uc.Update(context.Background(), user, model.UpdateUserRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", response.Name)

	// пароль не присылали — дайджест не изменился
	assert.Equal(t, digestBefore, store.users["test"].Password)

	newPassword := "changed"
	user, err = store.FindByUsername(context.Background(), "test")
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), user, model.UpdateUserRequest{Password: &newPassword})
	require.NoError(t, err)

	assert.NotEqual(t, digestBefore, store.users["test"].Password)
	assert.True(t, auth.VerifyPassword("changed", store.users["test"].Password))
	assert.False(t, auth.VerifyPassword("secret", store.users["test"].Password))
	// имя при этом не трогали
	assert.Equal(t, "Renamed", store.users["test"].Name)
}

func TestUserLogoutInvalidatesToken(t *testing.T) {
	store := newFakeUserStorage()
	uc := NewUserUseCase(store, testLogger())
	registerTestUser(t, uc)

	logged, err := uc.Login(context.Background(), model.LoginUserRequest{Username: "test", Password: "secret"})
	require.NoError(t, err)

	byToken, err := store.FindByToken(context.Background(), logged.Token)
	require.NoError(t, err)
	require.NotNil(t, byToken)

	require.NoError(t, uc.Logout(context.Background(), byToken))

	// старый токен больше никого не аутентифицирует
	byToken, err = store.FindByToken(context.Background(), logged.Token)
	require.NoError(t, err)
	assert.Nil(t, byToken)
}
