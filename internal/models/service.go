package models

import (
	"time"

	"gorm.io/gorm"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Category    string `gorm:"size:50" json:"category"`

	DurationMinutes    int `json:"duration_minutes"`
	PreparationMinutes int `json:"preparation_minutes"`
	CleanupMinutes     int `json:"cleanup_minutes"`

	Price  float64 `json:"price"`
	Active bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TotalDurationMinutes is the slot length a booking of this service occupies:
// the service itself plus preparation and cleanup.
func (s *Service) TotalDurationMinutes() int {
	return s.DurationMinutes + s.PreparationMinutes + s.CleanupMinutes
}
