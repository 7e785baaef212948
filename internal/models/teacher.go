package models

type Teacher struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"size:100;not null" json:"name"`
	Bio            string `gorm:"type:text" json:"bio"`
	Specialization string `gorm:"size:100" json:"specialization"`
	Experience     int    `json:"experience"`
	PhotoURL       string `gorm:"size:200" json:"photo_url"`
	IsActive       bool   `gorm:"not null;index" json:"is_active"`
}
