package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/dance-school/internal/domain/school"
	"github.com/BruksfildServices01/dance-school/internal/models"
)

const pgUniqueViolation = "23505"

type SchoolGormRepository struct {
	db *gorm.DB
}

func NewSchoolGormRepository(db *gorm.DB) *SchoolGormRepository {
	return &SchoolGormRepository{db: db}
}

func (r *SchoolGormRepository) Transaction(
	ctx context.Context,
	fn func(tx school.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SchoolGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Classes
// --------------------------------------------------

func (r *SchoolGormRepository) ListActiveClasses(
	ctx context.Context,
	page school.Page,
) ([]models.DanceClass, error) {

	var classes []models.DanceClass
	if err := paginate(r.db.WithContext(ctx), page).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *SchoolGormRepository) GetClass(
	ctx context.Context,
	id uint,
) (*models.DanceClass, error) {

	var class models.DanceClass
	if err := r.db.WithContext(ctx).First(&class, id).Error; err != nil {
		return nil, translate(err)
	}
	return &class, nil
}

// --------------------------------------------------
// Teachers
// --------------------------------------------------

func (r *SchoolGormRepository) ListActiveTeachers(
	ctx context.Context,
	page school.Page,
) ([]models.Teacher, error) {

	var teachers []models.Teacher
	if err := paginate(r.db.WithContext(ctx), page).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&teachers).Error; err != nil {
		return nil, err
	}
	return teachers, nil
}

func (r *SchoolGormRepository) GetTeacher(
	ctx context.Context,
	id uint,
) (*models.Teacher, error) {

	var teacher models.Teacher
	if err := r.db.WithContext(ctx).First(&teacher, id).Error; err != nil {
		return nil, translate(err)
	}
	return &teacher, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *SchoolGormRepository) ListSchedule(
	ctx context.Context,
	classID *uint,
) ([]models.Schedule, error) {

	q := r.db.WithContext(ctx)
	if classID != nil {
		q = q.Where("dance_class_id = ?", *classID)
	}

	var slots []models.Schedule
	if err := q.Order("id ASC").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *SchoolGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", school.NormalizeEmail(email)).
		First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *SchoolGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {
	user.Email = school.NormalizeEmail(user.Email)
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

// --------------------------------------------------
// Students
// --------------------------------------------------

func (r *SchoolGormRepository) GetStudentByEmail(
	ctx context.Context,
	email string,
) (*models.Student, error) {

	var student models.Student
	if err := r.db.WithContext(ctx).
		Where("email = ?", school.NormalizeEmail(email)).
		First(&student).Error; err != nil {
		return nil, translate(err)
	}
	return &student, nil
}

func (r *SchoolGormRepository) CreateStudent(
	ctx context.Context,
	student *models.Student,
) error {
	student.Email = school.NormalizeEmail(student.Email)
	return translate(r.db.WithContext(ctx).Create(student).Error)
}

func (r *SchoolGormRepository) ListStudents(
	ctx context.Context,
	page school.Page,
) ([]models.Student, error) {

	var students []models.Student
	if err := paginate(r.db.WithContext(ctx), page).
		Order("id ASC").
		Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

// --------------------------------------------------
// Registrations
// --------------------------------------------------

func (r *SchoolGormRepository) CreateRegistration(
	ctx context.Context,
	reg *models.Registration,
) error {
	return translate(r.db.WithContext(ctx).Create(reg).Error)
}

func (r *SchoolGormRepository) ListRegistrationsByStudent(
	ctx context.Context,
	studentID uint,
) ([]models.Registration, error) {

	var regs []models.Registration
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("id ASC").
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *SchoolGormRepository) ListRegistrations(
	ctx context.Context,
	page school.Page,
) ([]models.Registration, error) {

	var regs []models.Registration
	if err := paginate(r.db.WithContext(ctx), page).
		Order("id ASC").
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

// --------------------------------------------------
// News
// --------------------------------------------------

func (r *SchoolGormRepository) ListPublishedNews(
	ctx context.Context,
	page school.Page,
) ([]models.News, error) {

	var items []models.News
	if err := paginate(r.db.WithContext(ctx), page).
		Where("is_published = ?", true).
		Order("created_at DESC").
		Order("id DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SchoolGormRepository) GetNews(
	ctx context.Context,
	id uint,
) (*models.News, error) {

	var item models.News
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *SchoolGormRepository) CreateNews(
	ctx context.Context,
	news *models.News,
) error {
	return translate(r.db.WithContext(ctx).Create(news).Error)
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func paginate(q *gorm.DB, page school.Page) *gorm.DB {
	page = page.Normalize()
	return q.Offset(page.Skip).Limit(page.Limit)
}

// translate maps driver errors onto the domain sentinels. Email columns
// carry the only unique indexes, so any unique violation is ErrEmailTaken.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return school.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return school.ErrEmailTaken
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return school.ErrEmailTaken
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return school.ErrEmailTaken
	}
	return err
}

// Compile-time check
var _ school.Repository = (*SchoolGormRepository)(nil)
