package enrollment

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/dance-school/internal/audit"
	"github.com/BruksfildServices01/dance-school/internal/domain/school"
	"github.com/BruksfildServices01/dance-school/internal/httperr"
	"github.com/BruksfildServices01/dance-school/internal/models"
)

type CreateStudentInput struct {
	Name  string
	Email string
	Phone string
	Level string
}

type CreateStudent struct {
	repo  school.Repository
	audit *audit.Dispatcher
}

func NewCreateStudent(
	repo school.Repository,
	audit *audit.Dispatcher,
) *CreateStudent {
	return &CreateStudent{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateStudent) Execute(
	ctx context.Context,
	in CreateStudentInput,
) (*models.Student, error) {

	_, err := uc.repo.GetStudentByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, httperr.ErrBusiness("email_already_registered")
	case !errors.Is(err, school.ErrNotFound):
		return nil, err
	}

	student := &models.Student{
		Name:  strings.TrimSpace(in.Name),
		Email: in.Email,
		Phone: strings.TrimSpace(in.Phone),
		Level: strings.TrimSpace(in.Level),
	}
	if err := uc.repo.CreateStudent(ctx, student); err != nil {
		if errors.Is(err, school.ErrEmailTaken) {
			return nil, httperr.ErrBusiness("email_already_registered")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionStudentCreated,
		Entity:   "student",
		EntityID: &student.ID,
	})

	return student, nil
}
