package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenErrorReason classifies why a token was rejected.
type TokenErrorReason string

const (
	TokenExpired        TokenErrorReason = "expired"
	TokenMalformed      TokenErrorReason = "malformed"
	TokenMissingSubject TokenErrorReason = "missing_subject"
)

// TokenError is returned by Verify for any rejected token.
type TokenError struct {
	Reason TokenErrorReason
	Err    error
}

func (e *TokenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("token %s", e.Reason)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// TokenManager issues and verifies signed, time-limited bearer tokens. The
// subject travels under the standard "sub" claim; the signature uses a single
// static secret held for the process lifetime.
type TokenManager struct {
	secret   []byte
	method   jwt.SigningMethod
	lifetime time.Duration
}

// NewTokenManager builds a TokenManager for the named HMAC algorithm
// (HS256, HS384 or HS512).
func NewTokenManager(secret, algorithm string, lifetime time.Duration) (*TokenManager, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not symmetric", algorithm)
	}

	return &TokenManager{
		secret:   []byte(secret),
		method:   method,
		lifetime: lifetime,
	}, nil
}

// Lifetime returns the configured token validity duration.
func (m *TokenManager) Lifetime() time.Duration {
	return m.lifetime
}

// Issue creates a signed token for the subject expiring after the configured
// lifetime.
func (m *TokenManager) Issue(subject string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.lifetime)),
	}

	return jwt.NewWithClaims(m.method, claims).SignedString(m.secret)
}

// Verify validates the signature and expiry of the token and returns its
// subject. Failures are reported as *TokenError.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{m.method.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", &TokenError{Reason: TokenExpired, Err: err}
		}
		return "", &TokenError{Reason: TokenMalformed, Err: err}
	}
	if !token.Valid {
		return "", &TokenError{Reason: TokenMalformed}
	}
	if claims.Subject == "" {
		return "", &TokenError{Reason: TokenMissingSubject}
	}

	return claims.Subject, nil
}
