package audit

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/dance-school/internal/models"
)

// Actions recorded in the audit trail.
const (
	ActionUserRegistered    = "user_registered"
	ActionLoginSucceeded    = "login_succeeded"
	ActionLoginFailed       = "login_failed"
	ActionStudentCreated    = "student_created"
	ActionStudentRegistered = "student_registered"
	ActionNewsCreated       = "news_created"
	ActionContactSubmitted  = "contact_submitted"
	ActionImageUploaded     = "image_uploaded"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Logger persists audit events as AuditLog rows.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.db.WithContext(ctx).Create(&row).Error
}
