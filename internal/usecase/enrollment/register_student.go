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

// ======================================================
// INPUT / OUTPUT
// ======================================================

type RegisterStudentInput struct {
	Name         string
	Email        string
	Phone        string
	Level        string
	DanceClassID uint
}

type RegisterStudentOutput struct {
	Student      *models.Student
	Registration *models.Registration
}

// ======================================================
// USE CASE
// ======================================================

// RegisterStudent signs a student up for a class. The student is matched by
// email, so repeat sign-ups add registrations to the same student.
type RegisterStudent struct {
	repo  school.Repository
	audit *audit.Dispatcher
}

func NewRegisterStudent(
	repo school.Repository,
	audit *audit.Dispatcher,
) *RegisterStudent {
	return &RegisterStudent{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RegisterStudent) Execute(
	ctx context.Context,
	in RegisterStudentInput,
) (*RegisterStudentOutput, error) {

	var out RegisterStudentOutput
	created := false

	err := uc.repo.Transaction(ctx, func(tx school.Repository) error {

		// --------------------------------------------------
		// 1. Class
		// --------------------------------------------------
		if _, err := tx.GetClass(ctx, in.DanceClassID); err != nil {
			if errors.Is(err, school.ErrNotFound) {
				return httperr.ErrBusiness("class_not_found")
			}
			return err
		}

		// --------------------------------------------------
		// 2. Student (get or create)
		// --------------------------------------------------
		student, err := tx.GetStudentByEmail(ctx, in.Email)
		switch {
		case errors.Is(err, school.ErrNotFound):
			student = &models.Student{
				Name:  strings.TrimSpace(in.Name),
				Email: in.Email,
				Phone: strings.TrimSpace(in.Phone),
				Level: strings.TrimSpace(in.Level),
			}
			if err := tx.CreateStudent(ctx, student); err != nil {
				if errors.Is(err, school.ErrEmailTaken) {
					return httperr.ErrBusiness("email_already_registered")
				}
				return err
			}
			created = true
		case err != nil:
			return err
		}

		// --------------------------------------------------
		// 3. Registration
		// --------------------------------------------------
		reg := &models.Registration{
			StudentID:    student.ID,
			DanceClassID: in.DanceClassID,
			Status:       string(school.InitialStatus()),
		}
		if err := tx.CreateRegistration(ctx, reg); err != nil {
			return err
		}

		out.Student = student
		out.Registration = reg
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionStudentRegistered,
		Entity:   "registration",
		EntityID: &out.Registration.ID,
		Metadata: map[string]any{
			"student_id":      out.Student.ID,
			"dance_class_id":  in.DanceClassID,
			"student_created": created,
		},
	})

	return &out, nil
}
