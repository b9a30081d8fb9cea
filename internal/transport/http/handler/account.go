package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/askarbekov/account-service/internal/domain"
	"github.com/askarbekov/account-service/internal/metrics"
	"github.com/askarbekov/account-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

// accountUsecaser is the subset of AccountUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type accountUsecaser interface {
	Signup(ctx context.Context, in usecase.SignupInput) (string, error)
	Login(ctx context.Context, email, password string) (*usecase.LoginResult, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}

type AccountHandler struct {
	accounts accountUsecaser
	logger   *slog.Logger
}

func NewAccountHandler(accounts accountUsecaser, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		logger:   logger.With("component", "account_handler"),
	}
}

type signupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type signupResponse struct {
	UserID string `json:"userId"`
}

// POST /users/signup
func (h *AccountHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeValidationError, msgValidationError)
		return
	}

	userID, err := h.accounts.Signup(c.Request.Context(), usecase.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			respondError(c, http.StatusBadRequest, codeValidationError, msgValidationError)
		case errors.Is(err, domain.ErrDuplicateEmail):
			respondError(c, http.StatusBadRequest, codeDuplicateEmail, msgDuplicateEmail)
		default:
			h.logger.ErrorContext(c.Request.Context(), "signup", "error", err)
			respondError(c, http.StatusInternalServerError, codeInternalError, msgInternalError)
		}
		return
	}

	metrics.SignupsTotal.Inc()
	respondOK(c, http.StatusCreated, signupResponse{UserID: userID})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int    `json:"expiresIn"`
}

// POST /users/login
func (h *AccountHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeValidationError, msgValidationError)
		return
	}

	result, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			respondError(c, http.StatusBadRequest, codeValidationError, msgValidationError)
		case errors.Is(err, domain.ErrEmailNotFound):
			metrics.LoginsTotal.WithLabelValues("email_not_found").Inc()
			respondError(c, http.StatusBadRequest, codeEmailNotFound, msgEmailNotFound)
		case errors.Is(err, domain.ErrBadPassword):
			metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
			respondError(c, http.StatusUnauthorized, codeBadPassword, msgBadPassword)
		default:
			h.logger.ErrorContext(c.Request.Context(), "login", "error", err)
			respondError(c, http.StatusInternalServerError, codeInternalError, msgInternalError)
		}
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	respondOK(c, http.StatusOK, loginResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		ExpiresIn:   result.ExpiresIn,
	})
}

type profileUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type profileResponse struct {
	User profileUser `json:"user"`
}

// GET /me
// The auth middleware has already verified the token; the store is re-queried
// because the account may have been deleted since the token was issued, and
// that case deliberately answers with the same INVALID_TOKEN as a bad token.
func (h *AccountHandler) Me(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.accounts.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(c, http.StatusUnauthorized, codeInvalidToken, msgInvalidToken)
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "profile", "user_id", userID, "error", err)
		respondError(c, http.StatusInternalServerError, codeInternalError, msgInternalError)
		return
	}

	respondOK(c, http.StatusOK, profileResponse{User: profileUser{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}})
}
