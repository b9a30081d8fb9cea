package httptransport_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/askarbekov/account-service/internal/auth"
	"github.com/askarbekov/account-service/internal/domain"
	httptransport "github.com/askarbekov/account-service/internal/transport/http"
	"github.com/askarbekov/account-service/internal/transport/http/handler"
	"github.com/askarbekov/account-service/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memoryRepo is an in-memory UserRepository for end-to-end tests.
type memoryRepo struct {
	mu      sync.Mutex
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
	}
}

func (r *memoryRepo) Create(_ context.Context, email, name, passwordHash string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[email]; ok {
		return nil, domain.ErrDuplicateEmail
	}
	u := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	r.byEmail[email] = u
	r.byID[u.ID] = u
	return u, nil
}

func (r *memoryRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *memoryRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

type nopSender struct{}

func (nopSender) Send(_ context.Context, _, _, _ string) error { return nil }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	tokens := auth.NewTokenManager([]byte("router-test-secret-at-least-32-ch!"), time.Hour)
	uc := usecase.NewAccountUsecase(newMemoryRepo(), tokens, nopSender{}, 4, logger)
	h := handler.NewAccountHandler(uc, logger)
	return httptransport.NewRouter(logger, h, tokens)
}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func do(t *testing.T, r *gin.Engine, method, path, body, bearer string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v (body %q)", err, w.Body.String())
	}
	return w, env
}

// Full walkthrough: signup, login with a differently-cased email, fetch the
// profile with the bearer token, and exercise the failure paths.
func TestAccountFlow(t *testing.T) {
	r := newTestRouter(t)

	// Signup
	w, env := do(t, r, http.MethodPost, "/users/signup",
		`{"email":"A@Test.com","password":"Secret1","name":"Ann"}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("signup status = %d, want 201 (body %s)", w.Code, w.Body.String())
	}
	var signupData struct {
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(env.Data, &signupData); err != nil {
		t.Fatalf("decode signup data: %v", err)
	}
	if signupData.UserID == "" {
		t.Fatal("signup returned empty userId")
	}

	// Duplicate signup with an email that normalizes to the same address
	w, env = do(t, r, http.MethodPost, "/users/signup",
		`{"email":"a@test.com","password":"Other1","name":"Imposter"}`, "")
	if w.Code != http.StatusBadRequest || env.Error == nil || env.Error.Code != "DUPLICATE_EMAIL" {
		t.Errorf("duplicate signup: status %d body %s, want 400 DUPLICATE_EMAIL", w.Code, w.Body.String())
	}

	// Login with lowercase email
	w, env = do(t, r, http.MethodPost, "/users/login",
		`{"email":"a@test.com","password":"Secret1"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	var loginData struct {
		AccessToken string          `json:"accessToken"`
		TokenType   string          `json:"tokenType"`
		ExpiresIn   json.RawMessage `json:"expiresIn"`
	}
	if err := json.Unmarshal(env.Data, &loginData); err != nil {
		t.Fatalf("decode login data: %v", err)
	}
	if loginData.TokenType != "Bearer" {
		t.Errorf("tokenType = %q, want Bearer", loginData.TokenType)
	}
	if string(loginData.ExpiresIn) != "3600" {
		t.Errorf("expiresIn = %s, want the number 3600", loginData.ExpiresIn)
	}

	// Profile with the bearer token
	w, env = do(t, r, http.MethodGet, "/me", "", loginData.AccessToken)
	if w.Code != http.StatusOK {
		t.Fatalf("me status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	var meData struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &meData); err != nil {
		t.Fatalf("decode me data: %v", err)
	}
	if meData.User.Name != "Ann" {
		t.Errorf("profile name = %q, want Ann", meData.User.Name)
	}
	if meData.User.Email != "a@test.com" {
		t.Errorf("profile email = %q, want normalized a@test.com", meData.User.Email)
	}
	if meData.User.ID != signupData.UserID {
		t.Errorf("profile id = %q, want %q", meData.User.ID, signupData.UserID)
	}

	// Profile without a token
	w, env = do(t, r, http.MethodGet, "/me", "", "")
	if w.Code != http.StatusUnauthorized || env.Error == nil || env.Error.Code != "INVALID_TOKEN" {
		t.Errorf("me without token: status %d body %s, want 401 INVALID_TOKEN", w.Code, w.Body.String())
	}

	// Login with the wrong password
	w, env = do(t, r, http.MethodPost, "/users/login",
		`{"email":"a@test.com","password":"WrongSecret"}`, "")
	if w.Code != http.StatusUnauthorized || env.Error == nil || env.Error.Code != "BAD_PASSWORD" {
		t.Errorf("wrong password: status %d body %s, want 401 BAD_PASSWORD", w.Code, w.Body.String())
	}

	// Login with an unknown email
	w, env = do(t, r, http.MethodPost, "/users/login",
		`{"email":"nobody@test.com","password":"Secret1"}`, "")
	if w.Code != http.StatusBadRequest || env.Error == nil || env.Error.Code != "EMAIL_NOT_FOUND" {
		t.Errorf("unknown email: status %d body %s, want 400 EMAIL_NOT_FOUND", w.Code, w.Body.String())
	}
}
