package account

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/dance-school/internal/audit"
	"github.com/BruksfildServices01/dance-school/internal/auth"
	"github.com/BruksfildServices01/dance-school/internal/domain/school"
	"github.com/BruksfildServices01/dance-school/internal/httperr"
	"github.com/BruksfildServices01/dance-school/internal/models"
)

// DomainCheck reports whether an email address can receive mail.
type DomainCheck func(ctx context.Context, email string) bool

// ======================================================
// INPUT
// ======================================================

type RegisterUserInput struct {
	Email    string
	FullName string
	Password string
}

// ======================================================
// USE CASE
// ======================================================

type RegisterUser struct {
	repo        school.Repository
	hasher      *auth.Hasher
	audit       *audit.Dispatcher
	checkDomain DomainCheck
}

// NewRegisterUser builds the use case. A nil checkDomain skips the
// domain lookup.
func NewRegisterUser(
	repo school.Repository,
	hasher *auth.Hasher,
	audit *audit.Dispatcher,
	checkDomain DomainCheck,
) *RegisterUser {
	return &RegisterUser{
		repo:        repo,
		hasher:      hasher,
		audit:       audit,
		checkDomain: checkDomain,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RegisterUser) Execute(
	ctx context.Context,
	in RegisterUserInput,
) (*models.User, error) {

	email := school.NormalizeEmail(in.Email)

	if uc.checkDomain != nil && !uc.checkDomain(ctx, email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	// --------------------------------------------------
	// Unique email
	// --------------------------------------------------
	_, err := uc.repo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, httperr.ErrBusiness("email_already_registered")
	case !errors.Is(err, school.ErrNotFound):
		return nil, err
	}

	digest, err := uc.hasher.Hash(in.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return nil, httperr.ErrBusiness("password_too_long")
	}
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:          email,
		FullName:       strings.TrimSpace(in.FullName),
		HashedPassword: digest,
		IsAdmin:        false,
		IsActive:       true,
	}

	// The unique index still catches a concurrent registration.
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, school.ErrEmailTaken) {
			return nil, httperr.ErrBusiness("email_already_registered")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   audit.ActionUserRegistered,
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}
