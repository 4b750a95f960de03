package models

import (
	"time"

	"gorm.io/gorm"
)

type StaffProfile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName    string `gorm:"size:50;not null" json:"first_name"`
	LastName     string `gorm:"size:50;not null" json:"last_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'staff'" json:"role"`

	Specialization         string `gorm:"size:100" json:"specialization"`
	IsAcceptingNewClients  bool   `gorm:"default:true" json:"is_accepting_new_clients"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *StaffProfile) FullName() string {
	return s.FirstName + " " + s.LastName
}
