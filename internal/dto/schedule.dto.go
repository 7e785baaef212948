package dto

import "github.com/BruksfildServices01/dance-school/internal/models"

// ScheduleEntry is a slot with its class and teacher names resolved.
// Names are empty when the referenced row does not exist.
type ScheduleEntry struct {
	ID           uint   `json:"id"`
	DanceClassID uint   `json:"dance_class_id"`
	ClassName    string `json:"class_name"`
	TeacherID    uint   `json:"teacher_id"`
	TeacherName  string `json:"teacher_name"`
	DayOfWeek    string `json:"day_of_week"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Room         string `json:"room"`
}

func NewScheduleEntry(s models.Schedule, className, teacherName string) ScheduleEntry {
	return ScheduleEntry{
		ID:           s.ID,
		DanceClassID: s.DanceClassID,
		ClassName:    className,
		TeacherID:    s.TeacherID,
		TeacherName:  teacherName,
		DayOfWeek:    s.DayOfWeek,
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		Room:         s.Room,
	}
}
