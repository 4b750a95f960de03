package models

import (
	"time"

	"gorm.io/gorm"
)

// Client books appointments but has no login of its own.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:50;not null" json:"first_name"`
	LastName  string `gorm:"size:50;not null" json:"last_name"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`

	Allergies string `gorm:"size:500" json:"allergies"`
	Notes     string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
