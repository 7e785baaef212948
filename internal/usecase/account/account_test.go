package account

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/dance-school/internal/audit"
	"github.com/BruksfildServices01/dance-school/internal/auth"
	"github.com/BruksfildServices01/dance-school/internal/dbtest"
	"github.com/BruksfildServices01/dance-school/internal/httperr"
	"github.com/BruksfildServices01/dance-school/internal/infra/repository"
	"github.com/BruksfildServices01/dance-school/internal/logger"
	"github.com/BruksfildServices01/dance-school/internal/models"
)

type actionSink struct {
	mu      sync.Mutex
	actions []string
}

func (s *actionSink) Log(_ context.Context, ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = append(s.actions, ev.Action)
	return nil
}

type fixture struct {
	db       *gorm.DB
	repo     *repository.SchoolGormRepository
	hasher   *auth.Hasher
	tokens   *auth.TokenIssuer
	sink     *actionSink
	dispatch *audit.Dispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	tokens, err := auth.NewTokenIssuer("test-secret", 30*time.Minute)
	require.NoError(t, err)

	sink := &actionSink{}
	d := audit.NewDispatcher(sink, logger.Discard())
	t.Cleanup(d.Close)

	gdb := dbtest.New(t)

	return &fixture{
		db:       gdb,
		repo:     repository.NewSchoolGormRepository(gdb),
		hasher:   auth.NewHasher(bcrypt.MinCost),
		tokens:   tokens,
		sink:     sink,
		dispatch: d,
	}
}

func (f *fixture) register(t *testing.T, email, password string) *models.User {
	t.Helper()
	u, err := NewRegisterUser(f.repo, f.hasher, f.dispatch, nil).
		Execute(context.Background(), RegisterUserInput{Email: email, Password: password})
	require.NoError(t, err)
	return u
}

func TestRegisterUserCreatesActiveNonAdmin(t *testing.T) {
	f := newFixture(t)

	u := f.register(t, " A@X.com", "pw1")

	assert.Equal(t, "a@x.com", u.Email)
	assert.True(t, u.IsActive)
	assert.False(t, u.IsAdmin)
	assert.NotEqual(t, "pw1", u.HashedPassword)
	assert.True(t, f.hasher.Verify("pw1", u.HashedPassword))

	f.dispatch.Close()
	assert.Equal(t, []string{audit.ActionUserRegistered}, f.sink.actions)
}

func TestRegisterUserRejectsDuplicate(t *testing.T) {
	f := newFixture(t)
	f.register(t, "a@x.com", "pw1")

	_, err := NewRegisterUser(f.repo, f.hasher, f.dispatch, nil).
		Execute(context.Background(), RegisterUserInput{Email: "A@x.com", Password: "pw2"})
	assert.True(t, httperr.IsBusiness(err, "email_already_registered"))

	var count int64
	require.NoError(t, f.db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterUserDomainCheck(t *testing.T) {
	f := newFixture(t)
	reject := func(context.Context, string) bool { return false }

	_, err := NewRegisterUser(f.repo, f.hasher, f.dispatch, reject).
		Execute(context.Background(), RegisterUserInput{Email: "a@nowhere.invalid", Password: "pw"})
	assert.True(t, httperr.IsBusiness(err, "invalid_email_domain"))
}

func TestRegisterUserRejectsLongPassword(t *testing.T) {
	f := newFixture(t)
	long := string(make([]byte, 73))

	_, err := NewRegisterUser(f.repo, f.hasher, f.dispatch, nil).
		Execute(context.Background(), RegisterUserInput{Email: "a@x.com", Password: long})
	assert.True(t, httperr.IsBusiness(err, "password_too_long"))
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	u := f.register(t, "a@x.com", "pw1")
	login := NewLogin(f.repo, f.hasher, f.tokens, f.dispatch)

	out, err := login.Execute(context.Background(), LoginInput{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, u.ID, out.User.ID)

	claims, err := f.tokens.Validate(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)

	_, err = login.Execute(context.Background(), LoginInput{Email: "a@x.com", Password: "wrong"})
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	_, err = login.Execute(context.Background(), LoginInput{Email: "ghost@x.com", Password: "pw1"})
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	f.dispatch.Close()
	assert.Equal(t, []string{
		audit.ActionUserRegistered,
		audit.ActionLoginSucceeded,
		audit.ActionLoginFailed,
		audit.ActionLoginFailed,
	}, f.sink.actions)
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	f := newFixture(t)
	digest, err := f.hasher.Hash("pw1")
	require.NoError(t, err)
	require.NoError(t, f.repo.CreateUser(context.Background(), &models.User{
		Email:          "off@x.com",
		HashedPassword: digest,
		IsActive:       false,
	}))

	_, err = NewLogin(f.repo, f.hasher, f.tokens, f.dispatch).
		Execute(context.Background(), LoginInput{Email: "off@x.com", Password: "pw1"})
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))
}
