package models

import (
	"time"

	"gorm.io/gorm"
)

// WorkingHours is one row per (staff member, ISO weekday).
// Times of day are stored as "15:04" strings in the salon timezone.
type WorkingHours struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	StaffProfileID uint `gorm:"uniqueIndex:idx_staff_day" json:"staff_profile_id"`

	// 1 = Monday .. 7 = Sunday
	DayOfWeek int `gorm:"uniqueIndex:idx_staff_day" json:"day_of_week"`

	StartTime   string `gorm:"size:5" json:"start_time"`
	EndTime     string `gorm:"size:5" json:"end_time"`
	IsAvailable bool   `gorm:"default:true" json:"is_available"`

	BreakStartTime string `gorm:"size:5" json:"break_start_time"`
	BreakEndTime   string `gorm:"size:5" json:"break_end_time"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
