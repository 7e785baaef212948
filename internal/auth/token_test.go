package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func newIssuer(t *testing.T, lifetime time.Duration) (*TokenIssuer, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	issuer, err := NewTokenIssuer("test-secret", lifetime, WithClock(clock.Now))
	require.NoError(t, err)
	return issuer, clock
}

func TestNewTokenIssuerRequiresSecret(t *testing.T) {
	_, err := NewTokenIssuer("", time.Minute)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestIssueThenValidate(t *testing.T) {
	issuer, clock := newIssuer(t, 30*time.Minute)

	token, issued, err := issuer.Issue("a@x.com", 0)
	require.NoError(t, err)
	assert.Equal(t, clock.t.Add(30*time.Minute), issued.ExpiresAt.Time)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, clock.t, claims.IssuedAt.Time)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	issuer, clock := newIssuer(t, 30*time.Minute)

	token, _, err := issuer.Issue("a@x.com", 10*time.Minute)
	require.NoError(t, err)

	clock.t = clock.t.Add(10*time.Minute - time.Second)
	_, err = issuer.Validate(token)
	require.NoError(t, err)

	clock.t = clock.t.Add(time.Second)
	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestLifetimeFallbacks(t *testing.T) {
	issuer, clock := newIssuer(t, 0)

	_, claims, err := issuer.Issue("a@x.com", 0)
	require.NoError(t, err)
	assert.Equal(t, clock.t.Add(FallbackTokenLifetime), claims.ExpiresAt.Time)

	_, claims, err = issuer.Issue("a@x.com", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, clock.t.Add(time.Hour), claims.ExpiresAt.Time)
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	issuer, _ := newIssuer(t, time.Hour)

	token, _, err := issuer.Issue("a@x.com", 0)
	require.NoError(t, err)

	// flip one character inside the payload segment
	b := []byte(token)
	i := strings.IndexByte(token, '.') + 5
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}

	_, err = issuer.Validate(string(b))
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	issuer, clock := newIssuer(t, time.Hour)
	other, err := NewTokenIssuer("other-secret", time.Hour, WithClock(clock.Now))
	require.NoError(t, err)

	token, _, err := other.Issue("a@x.com", 0)
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateRejectsOtherAlgorithms(t *testing.T) {
	issuer, clock := newIssuer(t, time.Hour)

	claims := jwt.RegisteredClaims{
		Subject:   "a@x.com",
		ExpiresAt: jwt.NewNumericDate(clock.t.Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = issuer.Validate(unsigned)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = issuer.Validate(hs512)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateRequiresExpiry(t *testing.T) {
	issuer, _ := newIssuer(t, time.Hour)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "a@x.com"}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateRejectsGarbage(t *testing.T) {
	issuer, _ := newIssuer(t, time.Hour)

	for _, s := range []string{"", "abc", "a.b.c"} {
		_, err := issuer.Validate(s)
		assert.ErrorIs(t, err, ErrTokenInvalid, s)
	}
}
