package enrollment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/dance-school/internal/dbtest"
	"github.com/BruksfildServices01/dance-school/internal/httperr"
	"github.com/BruksfildServices01/dance-school/internal/infra/repository"
	"github.com/BruksfildServices01/dance-school/internal/models"
)

func setup(t *testing.T) (*gorm.DB, *repository.SchoolGormRepository) {
	t.Helper()
	gdb := dbtest.New(t)
	for _, name := range []string{"Salsa", "Tango"} {
		require.NoError(t, gdb.Create(&models.DanceClass{Name: name, IsActive: true}).Error)
	}
	return gdb, repository.NewSchoolGormRepository(gdb)
}

func count(t *testing.T, gdb *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Model(model).Count(&n).Error)
	return n
}

func TestRegisterStudentReusesStudentByEmail(t *testing.T) {
	gdb, repo := setup(t)
	uc := NewRegisterStudent(repo, nil)
	ctx := context.Background()

	first, err := uc.Execute(ctx, RegisterStudentInput{
		Name: "Sam", Email: "s@x.com", Phone: "123", Level: "beginner", DanceClassID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", first.Registration.Status)

	second, err := uc.Execute(ctx, RegisterStudentInput{
		Name: "Sam again", Email: "S@X.com", DanceClassID: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, first.Student.ID, second.Student.ID)
	assert.Equal(t, "Sam", second.Student.Name)
	assert.Equal(t, int64(1), count(t, gdb, &models.Student{}))
	assert.Equal(t, int64(2), count(t, gdb, &models.Registration{}))
}

func TestRegisterStudentUnknownClassWritesNothing(t *testing.T) {
	gdb, repo := setup(t)

	_, err := NewRegisterStudent(repo, nil).Execute(context.Background(), RegisterStudentInput{
		Name: "Sam", Email: "s@x.com", DanceClassID: 99,
	})

	assert.True(t, httperr.IsBusiness(err, "class_not_found"))
	assert.Zero(t, count(t, gdb, &models.Student{}))
	assert.Zero(t, count(t, gdb, &models.Registration{}))
}

func TestCreateStudentRejectsDuplicateEmail(t *testing.T) {
	gdb, repo := setup(t)
	uc := NewCreateStudent(repo, nil)
	ctx := context.Background()

	s, err := uc.Execute(ctx, CreateStudentInput{Name: "Sam", Email: "s@x.com"})
	require.NoError(t, err)
	assert.NotZero(t, s.ID)

	_, err = uc.Execute(ctx, CreateStudentInput{Name: "Other", Email: "s@x.com"})
	assert.True(t, httperr.IsBusiness(err, "email_already_registered"))
	assert.Equal(t, int64(1), count(t, gdb, &models.Student{}))
}
