package auth

import (
	"context"
	"testing"
	"time"

	"github.com/flyhigh-app/flyhigh/internal/domain"
	"github.com/flyhigh-app/flyhigh/internal/repository"
	"github.com/stretchr/testify/assert"
)

func newTestAuth() (*AuthService, *repository.MemoryUserRepository) {
	users := repository.NewUserRepository()
	tokens := NewTokenManager("test-secret", time.Hour)
	return NewAuthService(users, tokens), users
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	service, _ := newTestAuth()
	ctx := context.Background()

	user, token, err := service.Register(ctx, RegisterInput{
		Email:    "new@example.com",
		Password: "secret123",
		Name:     "New User",
		Phone:    "+100",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	loggedIn, loginToken, err := service.Login(ctx, "new@example.com", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, loginToken)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	service, _ := newTestAuth()
	ctx := context.Background()

	_, _, err := service.Register(ctx, RegisterInput{Email: "dup@example.com", Password: "pw"})
	assert.NoError(t, err)

	_, _, err = service.Register(ctx, RegisterInput{Email: "dup@example.com", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	service, _ := newTestAuth()
	ctx := context.Background()

	_, _, err := service.Register(ctx, RegisterInput{Email: "a@b.com", Password: "right"})
	assert.NoError(t, err)

	_, _, err = service.Login(ctx, "a@b.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = service.Login(ctx, "nobody@b.com", "right")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)

	token, err := tokens.Generate("u1", domain.RoleAdmin)
	assert.NoError(t, err)

	identity, err := tokens.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", identity.UserID)
	assert.Equal(t, domain.RoleAdmin, identity.Role)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	token, err := tokens.Generate("u1", domain.RoleUser)
	assert.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestSeedUsers(t *testing.T) {
	users := repository.NewUserRepository()
	ctx := context.Background()

	assert.NoError(t, SeedUsers(ctx, users))

	admin, err := users.GetByEmail(ctx, "admin@flyhigh.com")
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)

	service := NewAuthService(users, NewTokenManager("test-secret", time.Hour))
	_, token, err := service.Login(ctx, "user@flyhigh.com", "user123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}
