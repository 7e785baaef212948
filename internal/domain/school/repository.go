package school

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/dance-school/internal/models"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrEmailTaken = errors.New("email already registered")
)

// Repository is the entity store. Writes are single-row inserts; use
// Transaction when several of them must succeed or fail together.
type Repository interface {
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Classes --------
	ListActiveClasses(ctx context.Context, page Page) ([]models.DanceClass, error)
	GetClass(ctx context.Context, id uint) (*models.DanceClass, error)

	// -------- Teachers --------
	ListActiveTeachers(ctx context.Context, page Page) ([]models.Teacher, error)
	GetTeacher(ctx context.Context, id uint) (*models.Teacher, error)

	// -------- Schedule --------
	// A nil classID lists every slot.
	ListSchedule(ctx context.Context, classID *uint) ([]models.Schedule, error)

	// -------- Users --------
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error

	// -------- Students --------
	GetStudentByEmail(ctx context.Context, email string) (*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) error
	ListStudents(ctx context.Context, page Page) ([]models.Student, error)

	// -------- Registrations --------
	CreateRegistration(ctx context.Context, reg *models.Registration) error
	ListRegistrationsByStudent(ctx context.Context, studentID uint) ([]models.Registration, error)
	ListRegistrations(ctx context.Context, page Page) ([]models.Registration, error)

	// -------- News --------
	ListPublishedNews(ctx context.Context, page Page) ([]models.News, error)
	GetNews(ctx context.Context, id uint) (*models.News, error)
	CreateNews(ctx context.Context, news *models.News) error
}
