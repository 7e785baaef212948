// Package seed loads the demo catalog. It deletes data when asked to and
// must never run against a production database.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/dance-school/internal/auth"
	"github.com/BruksfildServices01/dance-school/internal/domain/school"
	"github.com/BruksfildServices01/dance-school/internal/models"
)

var (
	ErrAdminPasswordRequired = errors.New("admin password is required")
	ErrNotEmpty              = errors.New("store already has classes, rerun with reset")
)

type Options struct {
	// Reset deletes registrations, students, schedule, classes, teachers,
	// news and users first.
	Reset bool

	AdminEmail    string
	AdminPassword string
}

type Result struct {
	Classes  int
	Teachers int
	Slots    int
	News     int
	AdminID  uint
}

// resetOrder deletes children before parents.
var resetOrder = []any{
	&models.Registration{},
	&models.Student{},
	&models.Schedule{},
	&models.DanceClass{},
	&models.Teacher{},
	&models.News{},
	&models.User{},
}

// Run seeds in a single transaction; any failure leaves the store as it was.
func Run(
	ctx context.Context,
	db *gorm.DB,
	hasher *auth.Hasher,
	opts Options,
	log logrus.FieldLogger,
) (*Result, error) {

	if opts.AdminPassword == "" {
		return nil, ErrAdminPasswordRequired
	}

	var res Result
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// --------------------------------------------------
		// 1. Reset
		// --------------------------------------------------
		if opts.Reset {
			all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
			for _, model := range resetOrder {
				if err := all.Delete(model).Error; err != nil {
					return fmt.Errorf("reset %T: %w", model, err)
				}
			}
			log.Warn("seed: existing data deleted")
		} else {
			var n int64
			if err := tx.Model(&models.DanceClass{}).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return ErrNotEmpty
			}
		}

		// --------------------------------------------------
		// 2. Catalog
		// --------------------------------------------------
		classes := demoClasses()
		for i := range classes {
			classes[i].IsActive = true
		}
		if err := tx.Create(&classes).Error; err != nil {
			return fmt.Errorf("classes: %w", err)
		}

		teachers := demoTeachers()
		for i := range teachers {
			teachers[i].IsActive = true
		}
		if err := tx.Create(&teachers).Error; err != nil {
			return fmt.Errorf("teachers: %w", err)
		}

		// Slots use the ids just assigned, whatever the sequences say.
		slots := make([]models.Schedule, 0, len(weeklySlots))
		for _, s := range weeklySlots {
			slots = append(slots, models.Schedule{
				DanceClassID: classes[s.class].ID,
				TeacherID:    teachers[s.teacher].ID,
				DayOfWeek:    s.day,
				StartTime:    s.start,
				EndTime:      s.end,
				Room:         s.room,
			})
		}
		if err := tx.Create(&slots).Error; err != nil {
			return fmt.Errorf("schedule: %w", err)
		}

		// --------------------------------------------------
		// 3. Admin (idempotent by email)
		// --------------------------------------------------
		admin, err := ensureAdmin(tx, hasher, opts.AdminEmail, opts.AdminPassword)
		if err != nil {
			return fmt.Errorf("admin: %w", err)
		}

		// --------------------------------------------------
		// 4. News
		// --------------------------------------------------
		news := demoNews(admin.ID)
		if err := tx.Create(&news).Error; err != nil {
			return fmt.Errorf("news: %w", err)
		}

		res = Result{
			Classes:  len(classes),
			Teachers: len(teachers),
			Slots:    len(slots),
			News:     len(news),
			AdminID:  admin.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func ensureAdmin(tx *gorm.DB, hasher *auth.Hasher, email, password string) (*models.User, error) {
	email = school.NormalizeEmail(email)

	var admin models.User
	err := tx.Where("email = ?", email).First(&admin).Error
	if err == nil {
		return &admin, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	digest, err := hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	admin = models.User{
		Email:          email,
		HashedPassword: digest,
		FullName:       "Администратор",
		IsAdmin:        true,
		IsActive:       true,
	}
	if err := tx.Create(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
