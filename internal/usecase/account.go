package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/askarbekov/account-service/internal/auth"
	"github.com/askarbekov/account-service/internal/domain"
	"github.com/askarbekov/account-service/internal/email"
	"github.com/askarbekov/account-service/internal/repository"
)

type AccountUsecase struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	mail       email.Sender
	bcryptCost int
	logger     *slog.Logger
}

func NewAccountUsecase(users repository.UserRepository, tokens *auth.TokenManager, mail email.Sender, bcryptCost int, logger *slog.Logger) *AccountUsecase {
	return &AccountUsecase{
		users:      users,
		tokens:     tokens,
		mail:       mail,
		bcryptCost: bcryptCost,
		logger:     logger.With("component", "account_usecase"),
	}
}

type SignupInput struct {
	Email    string
	Password string
	Name     string
}

// Signup validates and normalizes the input, hashes the password, and
// persists the account. The store's unique constraint is the source of truth
// for duplicates; the FindByEmail pre-check just avoids burning a bcrypt hash
// in the common case.
func (u *AccountUsecase) Signup(ctx context.Context, in SignupInput) (string, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return "", domain.ErrValidation
	}

	normalized := email.Normalize(in.Email)

	_, err := u.users.FindByEmail(ctx, normalized)
	switch {
	case err == nil:
		return "", domain.ErrDuplicateEmail
	case !errors.Is(err, domain.ErrUserNotFound):
		return "", fmt.Errorf("check existing email: %w", err)
	}

	passwordHash, err := auth.HashPassword(in.Password, u.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user, err := u.users.Create(ctx, normalized, in.Name, passwordHash)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return "", domain.ErrDuplicateEmail
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	// Best effort: a failed welcome email never fails the signup.
	subject := "Welcome to Account Service"
	body := fmt.Sprintf("<p>Hi %s, your account is ready.</p>", user.Name)
	if err := u.mail.Send(ctx, user.Email, subject, body); err != nil {
		u.logger.WarnContext(ctx, "send welcome email", "error", err)
	}

	return user.ID, nil
}

type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int
}

// Login verifies credentials and issues an access token for the account.
func (u *AccountUsecase) Login(ctx context.Context, emailAddr, password string) (*LoginResult, error) {
	if emailAddr == "" || password == "" {
		return nil, domain.ErrValidation
	}

	normalized := email.Normalize(emailAddr)

	user, err := u.users.FindByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrEmailNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, domain.ErrBadPassword
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(u.tokens.TTL().Seconds()),
	}, nil
}

// Profile re-queries the store by ID. The caller has already verified the
// token, but the account may have disappeared since issuance.
func (u *AccountUsecase) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
