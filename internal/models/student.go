package models

import "time"

// Student signs up through the public registration form, without an account.
type Student struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Level     string    `gorm:"size:50" json:"level"`
	CreatedAt time.Time `json:"created_at"`
}
