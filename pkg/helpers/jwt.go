package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingSecret is returned when token generation is attempted
	// without a configured signing secret.
	ErrMissingSecret = errors.New("jwt signing secret is not configured")
	ErrInvalidToken  = errors.New("invalid token")
)

// TokenSubject is the identity embedded under the "sub" claim.
type TokenSubject struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Claims is the full access-token claim set: {sub:{id,email}, iat, exp}.
// The Sub field shadows RegisteredClaims.Subject on (un)marshal.
type Claims struct {
	Sub TokenSubject `json:"sub"`
	jwt.RegisteredClaims
}

// JWTManager handles generation and validation of HS256 access tokens
type JWTManager struct {
	Secret    []byte
	AccessTTL time.Duration
}

func NewJWTManager(secret string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		Secret:    []byte(secret),
		AccessTTL: accessTTL,
	}
}

// GenerateAccessToken signs a token carrying the given identity.
// It refuses to sign with an empty secret.
func (m *JWTManager) GenerateAccessToken(sub TokenSubject) (string, time.Time, error) {
	if len(m.Secret) == 0 {
		return "", time.Time{}, ErrMissingSecret
	}
	now := time.Now()
	exp := now.Add(m.AccessTTL)
	claims := &Claims{
		Sub: sub,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// ParseAccessToken verifies signature and expiry and returns the claims.
// Any failure mode (malformed, bad signature, expired) comes back as an error.
func (m *JWTManager) ParseAccessToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
