package models

import "time"

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"size:200;not null" json:"-"`
	FullName       string    `gorm:"size:100" json:"full_name"`
	IsAdmin        bool      `gorm:"not null" json:"is_admin"`
	IsActive       bool      `gorm:"not null" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}
