package models

import "time"

type Registration struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	StudentID        uint      `gorm:"not null;index" json:"student_id"`
	DanceClassID     uint      `gorm:"not null" json:"dance_class_id"`
	RegistrationDate time.Time `gorm:"autoCreateTime" json:"registration_date"`
	Status           string    `gorm:"size:20;default:'pending'" json:"status"`
}
