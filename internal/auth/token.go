package auth

import (
	"fmt"
	"time"

	"github.com/askarbekov/account-service/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// TokenManager issues and verifies HS256 access tokens. The only claim the
// token carries is the subject (user ID) plus the standard timestamps.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret []byte, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns the configured token lifetime.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token asserting "subject = userID", valid for the configured TTL.
func (m *TokenManager) Issue(userID string) (string, error) {
	now := m.now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the subject. Every failure
// mode (malformed, wrong algorithm, bad signature, expired, missing subject)
// collapses to domain.ErrTokenInvalid so callers cannot tell them apart.
func (m *TokenManager) Verify(rawToken string) (string, error) {
	token, err := jwt.Parse(rawToken,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return m.secret, nil
		},
		jwt.WithTimeFunc(func() time.Time { return m.now() }),
	)
	if err != nil || !token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrTokenInvalid
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", domain.ErrTokenInvalid
	}
	return userID, nil
}
