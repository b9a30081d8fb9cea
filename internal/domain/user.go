package domain

import (
	"errors"
	"time"
)

var (
	ErrValidation     = errors.New("missing required field")
	ErrDuplicateEmail = errors.New("email is already registered")
	ErrEmailNotFound  = errors.New("email not found")
	ErrBadPassword    = errors.New("incorrect password")
	ErrUserNotFound   = errors.New("user not found")
	ErrTokenInvalid   = errors.New("token is invalid or expired")
)

// User is a registered account. PasswordHash is the bcrypt digest of the
// password and must never leave the service.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
