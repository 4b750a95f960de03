package notification

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/timezone"
)

// Service records every outbound message in the notifications table and
// hands it to the mailer. A send failure marks the record failed and is
// reported to the caller; scheduling state is never rolled back for it.
type Service struct {
	db     *gorm.DB
	mailer Mailer
}

func NewService(db *gorm.DB, mailer Mailer) *Service {
	return &Service{db: db, mailer: mailer}
}

func (s *Service) SendAppointmentConfirmation(ctx context.Context, client *models.Client, appointmentID *uint, d Details) error {
	subject, body := confirmationMessage(client, d)
	return s.deliver(ctx, client, appointmentID, models.NotificationKindConfirmation, subject, body)
}

func (s *Service) SendAppointmentCancellation(ctx context.Context, client *models.Client, appointmentID *uint, d Details) error {
	subject, body := cancellationMessage(client, d)
	return s.deliver(ctx, client, appointmentID, models.NotificationKindCancellation, subject, body)
}

func (s *Service) SendAppointmentReminder(ctx context.Context, client *models.Client, appointmentID *uint, d Details) error {
	subject, body := reminderMessage(client, d)
	return s.deliver(ctx, client, appointmentID, models.NotificationKindReminder, subject, body)
}

// reminderDedupeStatuses are the reminder record statuses that count as
// "already handled": a pending record means a send is still in flight, so
// the next job tick must not queue a second one. Only a failed send may
// be picked up again.
var reminderDedupeStatuses = []string{
	models.NotificationStatusPending,
	models.NotificationStatusSent,
}

// HasReminder reports whether a reminder already exists for the
// appointment, so the reminder job does not repeat itself.
func (s *Service) HasReminder(ctx context.Context, appointmentID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("appointment_id = ? AND kind = ? AND status IN ?",
			appointmentID, models.NotificationKindReminder, reminderDedupeStatuses).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Service) deliver(
	ctx context.Context,
	client *models.Client,
	appointmentID *uint,
	kind string,
	subject string,
	body string,
) error {

	record := models.Notification{
		ClientID:      client.ID,
		AppointmentID: appointmentID,
		Kind:          kind,
		Channel:       "email",
		Subject:       subject,
		Body:          body,
		Status:        models.NotificationStatusPending,
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return err
	}

	if err := s.mailer.Send(client.Email, subject, body); err != nil {
		record.Status = models.NotificationStatusFailed
		record.ErrorMessage = err.Error()
		if saveErr := s.db.WithContext(ctx).Save(&record).Error; saveErr != nil {
			log.Printf("notification: failed to record delivery failure: %v", saveErr)
		}
		return err
	}

	now := timezone.Now()
	record.Status = models.NotificationStatusSent
	record.SentAt = &now
	return s.db.WithContext(ctx).Save(&record).Error
}
