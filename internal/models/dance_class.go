package models

import "time"

type DanceClass struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Level       string    `gorm:"size:50" json:"level"`
	Duration    int       `json:"duration"`
	Price       float64   `json:"price"`
	ImageURL    string    `gorm:"size:200" json:"image_url"`
	IsActive    bool      `gorm:"not null;index" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
