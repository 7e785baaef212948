package account

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/dance-school/internal/audit"
	"github.com/BruksfildServices01/dance-school/internal/auth"
	"github.com/BruksfildServices01/dance-school/internal/domain/school"
	"github.com/BruksfildServices01/dance-school/internal/httperr"
	"github.com/BruksfildServices01/dance-school/internal/models"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	User        *models.User
}

type Login struct {
	repo   school.Repository
	hasher *auth.Hasher
	tokens *auth.TokenIssuer
	audit  *audit.Dispatcher
}

func NewLogin(
	repo school.Repository,
	hasher *auth.Hasher,
	tokens *auth.TokenIssuer,
	audit *audit.Dispatcher,
) *Login {
	return &Login{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		audit:  audit,
	}
}

// Execute authenticates by email and password. Unknown users, wrong
// passwords and inactive accounts all fail with the same code.
func (uc *Login) Execute(
	ctx context.Context,
	in LoginInput,
) (*LoginOutput, error) {

	email := school.NormalizeEmail(in.Email)

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, school.ErrNotFound) {
		return nil, err
	}

	if user == nil || !user.IsActive || !uc.hasher.Verify(in.Password, user.HashedPassword) {
		ev := audit.Event{
			Action:   audit.ActionLoginFailed,
			Entity:   "user",
			Metadata: map[string]string{"email": email},
		}
		if user != nil {
			ev.UserID = &user.ID
			ev.EntityID = &user.ID
		}
		uc.audit.Dispatch(ev)

		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	// Lifetime 0 resolves to the issuer's configured lifetime.
	token, claims, err := uc.tokens.Issue(user.Email, 0)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   audit.ActionLoginSucceeded,
		Entity:   "user",
		EntityID: &user.ID,
	})

	return &LoginOutput{
		AccessToken: token,
		TokenType:   auth.TokenType,
		ExpiresAt:   claims.ExpiresAt.Time,
		User:        user,
	}, nil
}
