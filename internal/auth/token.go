package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// FallbackTokenLifetime applies when neither the caller nor the issuer
// configuration provide a lifetime.
const FallbackTokenLifetime = 15 * time.Minute

const TokenType = "bearer"

var (
	ErrMissingSecret = errors.New("token signing secret is empty")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")
)

// Claims is the full claim set carried by an access token.
// Only subject, issued-at and expiry are ever signed.
type Claims struct {
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

type IssuerOption func(*TokenIssuer)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) IssuerOption {
	return func(i *TokenIssuer) { i.now = now }
}

func NewTokenIssuer(secret string, lifetime time.Duration, opts ...IssuerOption) (*TokenIssuer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	i := &TokenIssuer{
		secret:   []byte(secret),
		lifetime: lifetime,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

func (i *TokenIssuer) resolveLifetime(lifetime time.Duration) time.Duration {
	switch {
	case lifetime > 0:
		return lifetime
	case i.lifetime > 0:
		return i.lifetime
	default:
		return FallbackTokenLifetime
	}
}

// Issue signs an HS256 token for subject. A non-positive lifetime falls
// back to the issuer's configured lifetime.
func (i *TokenIssuer) Issue(subject string, lifetime time.Duration) (string, *Claims, error) {
	now := i.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.resolveLifetime(lifetime))),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(i.secret)
	if err != nil {
		return "", nil, err
	}
	return s, claims, nil
}

// Validate checks signature and expiry and returns the claim set.
func (i *TokenIssuer) Validate(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(
		tokenStr,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrTokenInvalid
			}
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !tkn.Valid || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
