package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/order-management/internal/user/domain"
	userrepo "github.com/tair/order-management/internal/user/repository"
	"github.com/tair/order-management/pkg/auth"
)

func TestRegisterUser_Success(t *testing.T) {
	repo := userrepo.NewMemoryUserRepository()
	handler := NewRegisterUserHandler(repo)

	user, err := handler.Handle(RegisterUserCommand{Username: "validuser", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, "validuser", user.Username)
	// Stored as a hash, never plaintext
	assert.NotEqual(t, "password123", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "password123"))
}

func TestRegisterUser_PolicyViolations(t *testing.T) {
	repo := userrepo.NewMemoryUserRepository()
	handler := NewRegisterUserHandler(repo)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "username too short", username: "ab", password: "password123", wantErr: domain.ErrInvalidUsername},
		{name: "username too long", username: strings.Repeat("a", 16), password: "password123", wantErr: domain.ErrInvalidUsername},
		{name: "empty username", username: "", password: "password123", wantErr: domain.ErrInvalidUsername},
		{name: "password too short", username: "validuser", password: "short", wantErr: domain.ErrInvalidPassword},
		{name: "empty password", username: "validuser", password: "", wantErr: domain.ErrInvalidPassword},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := handler.Handle(RegisterUserCommand{Username: tc.username, Password: tc.password})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	repo := userrepo.NewMemoryUserRepository()
	handler := NewRegisterUserHandler(repo)

	_, err := handler.Handle(RegisterUserCommand{Username: "validuser", Password: "password123"})
	require.NoError(t, err)

	_, err = handler.Handle(RegisterUserCommand{Username: "validuser", Password: "otherpassword"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestLoginUser_IssuesTokenBoundToUsername(t *testing.T) {
	repo := userrepo.NewMemoryUserRepository()
	register := NewRegisterUserHandler(repo)
	login := NewLoginUserHandler(repo)

	_, err := register.Handle(RegisterUserCommand{Username: "validuser", Password: "password123"})
	require.NoError(t, err)

	response, err := login.Handle(LoginUserCommand{Username: "validuser", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, response.Token)

	claims, err := auth.ValidateToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, "validuser", claims.Username)
}

func TestLoginUser_RejectsBadCredentials(t *testing.T) {
	repo := userrepo.NewMemoryUserRepository()
	register := NewRegisterUserHandler(repo)
	login := NewLoginUserHandler(repo)

	_, err := register.Handle(RegisterUserCommand{Username: "validuser", Password: "password123"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "validuser", password: "wrongpassword"},
		{name: "unknown user", username: "nobody", password: "password123"},
		{name: "empty credentials", username: "", password: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := login.Handle(LoginUserCommand{Username: tc.username, Password: tc.password})
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		})
	}
}
