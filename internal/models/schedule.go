package models

// Schedule is a weekly slot. DanceClassID and TeacherID are plain ids:
// neither the references nor slot overlaps are checked.
type Schedule struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	DanceClassID uint   `gorm:"not null;index" json:"dance_class_id"`
	TeacherID    uint   `gorm:"not null" json:"teacher_id"`
	DayOfWeek    string `gorm:"size:20" json:"day_of_week"`
	StartTime    string `gorm:"size:10" json:"start_time"`
	EndTime      string `gorm:"size:10" json:"end_time"`
	Room         string `gorm:"size:50" json:"room"`
}

func (Schedule) TableName() string {
	return "schedule"
}
