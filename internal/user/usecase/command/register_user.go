package command

import (
	"fmt"
	"time"

	"github.com/tair/order-management/internal/user/domain"
	"github.com/tair/order-management/pkg/auth"
)

// RegisterUserCommand represents the command to register a new user
type RegisterUserCommand struct {
	Username string
	Password string
}

// RegisterUserHandler handles user registration command
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(cmd RegisterUserCommand) (*domain.User, error) {
	// Validation happens strictly before any state change
	if len(cmd.Username) < domain.MinUsernameLen || len(cmd.Username) > domain.MaxUsernameLen {
		return nil, domain.ErrInvalidUsername
	}
	if len(cmd.Password) < domain.MinPasswordLen {
		return nil, domain.ErrInvalidPassword
	}

	if existing, _ := h.repo.FindByUsername(cmd.Username); existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hashedPassword, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:  cmd.Username,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
	}

	if err := h.repo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}
