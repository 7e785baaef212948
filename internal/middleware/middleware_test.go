package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/dance-school/internal/auth"
	"github.com/BruksfildServices01/dance-school/internal/domain/school"
	"github.com/BruksfildServices01/dance-school/internal/logger"
	"github.com/BruksfildServices01/dance-school/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type userMap map[string]*models.User

func (m userMap) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := m[email]; ok {
		return u, nil
	}
	return nil, school.ErrNotFound
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newGuardedRouter(t *testing.T, now *clock) (*gin.Engine, *auth.TokenIssuer) {
	t.Helper()

	tokens, err := auth.NewTokenIssuer("secret", 30*time.Minute, auth.WithClock(now.Now))
	require.NoError(t, err)

	users := userMap{
		"admin@x.com": {ID: 1, Email: "admin@x.com", IsAdmin: true, IsActive: true},
		"user@x.com":  {ID: 2, Email: "user@x.com", IsActive: true},
		"off@x.com":   {ID: 3, Email: "off@x.com", IsActive: false},
	}

	r := gin.New()
	guarded := r.Group("/", AuthMiddleware(tokens, users))
	guarded.GET("/me", func(c *gin.Context) {
		u, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"email": u.Email})
	})
	guarded.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, tokens
}

func call(r http.Handler, path, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(t *testing.T, tokens *auth.TokenIssuer, subject string) string {
	t.Helper()
	tok, _, err := tokens.Issue(subject, 0)
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestAuthMiddlewareRejects(t *testing.T) {
	now := &clock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	r, tokens := newGuardedRouter(t, now)

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic abc",
		"empty token":    "Bearer ",
		"garbage token":  "Bearer not.a.jwt",
		"unknown user":   bearer(t, tokens, "ghost@x.com"),
		"inactive user":  bearer(t, tokens, "off@x.com"),
	}
	for name, authz := range cases {
		t.Run(name, func(t *testing.T) {
			w := call(r, "/me", authz)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	now := &clock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	r, tokens := newGuardedRouter(t, now)

	authz := bearer(t, tokens, "user@x.com")
	now.now = now.now.Add(30 * time.Minute)

	w := call(r, "/me", authz)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token_expired")
}

func TestAdminGate(t *testing.T) {
	now := &clock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	r, tokens := newGuardedRouter(t, now)

	assert.Equal(t, http.StatusUnauthorized, call(r, "/admin", "").Code)
	assert.Equal(t, http.StatusForbidden, call(r, "/admin", bearer(t, tokens, "user@x.com")).Code)
	assert.Equal(t, http.StatusOK, call(r, "/admin", bearer(t, tokens, "admin@x.com")).Code)

	w := call(r, "/me", bearer(t, tokens, "user@x.com"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"user@x.com"}`, w.Body.String())
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextRequestID))
	})

	w := call(r, "/", "")
	_, err := uuid.Parse(w.Body.String())
	assert.NoError(t, err)
	assert.Equal(t, w.Body.String(), w.Header().Get(HeaderRequestID))

	given := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, given)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, given, w.Body.String())
}

func TestRateLimitWithoutRedisPassesThrough(t *testing.T) {
	r := gin.New()
	r.POST("/token", RateLimit(nil, 1, time.Minute, KeyByIPAndPath(), logger.Discard()), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/token", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}

func TestRateLimitFailsOpenWhenRedisIsDown(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	r := gin.New()
	r.POST("/token", RateLimit(rdb, 1, time.Minute, KeyByIPAndPath(), logger.Discard()), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/token", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
