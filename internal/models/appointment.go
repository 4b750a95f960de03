package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	PublicID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"public_id"`

	ClientID uint   `gorm:"index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ServiceID uint    `gorm:"index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	StaffProfileID uint         `gorm:"index" json:"staff_profile_id"`
	StaffProfile   StaffProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff_profile"`

	ScheduledStartTime time.Time `gorm:"index" json:"scheduled_start_time"`
	ScheduledEndTime   time.Time `json:"scheduled_end_time"`

	Status        string `gorm:"size:20;index;default:'pending'" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`

	Price float64 `json:"price"`
	Notes string  `gorm:"size:500" json:"notes"`

	CancellationReason string `gorm:"size:500" json:"cancellation_reason"`

	ActualStartTime *time.Time `json:"actual_start_time"`
	ActualEndTime   *time.Time `json:"actual_end_time"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.PublicID == uuid.Nil {
		a.PublicID = uuid.New()
	}
	return nil
}

// DurationMinutes is the scheduled length of the appointment.
func (a *Appointment) DurationMinutes() int {
	return int(a.ScheduledEndTime.Sub(a.ScheduledStartTime) / time.Minute)
}
