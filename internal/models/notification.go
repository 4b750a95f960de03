package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationKindConfirmation = "confirmation"
	NotificationKindCancellation = "cancellation"
	NotificationKindReminder     = "reminder"

	NotificationStatusPending = "pending"
	NotificationStatusSent    = "sent"
	NotificationStatusFailed  = "failed"
)

// Notification is the delivery record for one outbound message.
// Delivery is best-effort; failures are recorded here, never propagated
// back into scheduling state.
type Notification struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	PublicID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"public_id"`

	ClientID uint   `gorm:"index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	AppointmentID *uint `gorm:"index" json:"appointment_id"`

	Kind    string `gorm:"size:20;index" json:"kind"`
	Channel string `gorm:"size:10;default:'email'" json:"channel"`

	Subject string `gorm:"size:200" json:"subject"`
	Body    string `gorm:"type:text" json:"body"`

	Status       string     `gorm:"size:10;default:'pending'" json:"status"`
	ErrorMessage string     `gorm:"size:500" json:"error_message"`
	SentAt       *time.Time `json:"sent_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.PublicID == uuid.Nil {
		n.PublicID = uuid.New()
	}
	return nil
}
