package domain

import (
	"errors"
	"time"
)

// Username and password policy
const (
	MinUsernameLen = 3
	MaxUsernameLen = 15
	MinPasswordLen = 8
)

// Domain errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidUsername    = errors.New("username must be between 3 and 15 characters")
	ErrInvalidPassword    = errors.New("password must be at least 8 characters long")
)

// User represents a registered account. Password holds a bcrypt hash,
// never the plaintext.
type User struct {
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(user *User) error
	FindByUsername(username string) (*User, error)
	Count() (int64, error)
}
