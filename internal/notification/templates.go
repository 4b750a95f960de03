package notification

import (
	"fmt"
	"time"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
)

// Details carries everything the message templates need, so rendering
// never goes back to the database.
type Details struct {
	ServiceName        string
	StaffName          string
	StartTime          time.Time
	DurationMinutes    int
	Price              float64
	CancellationReason string
}

const datetimeLayout = "2006-01-02 15:04"

func confirmationMessage(client *models.Client, d Details) (subject, body string) {
	subject = "Appointment Confirmation"
	body = fmt.Sprintf(`Dear %s,

Your appointment has been confirmed with the following details:

Service: %s
Date & Time: %s
Staff: %s
Duration: %d minutes
Price: $%.2f

Please arrive 10 minutes before your scheduled appointment time.

Thank you for choosing Mario Beauty Salon!

Best regards,
Mario Beauty Salon Team`,
		client.FirstName,
		d.ServiceName,
		d.StartTime.Format(datetimeLayout),
		d.StaffName,
		d.DurationMinutes,
		d.Price,
	)
	return subject, body
}

func cancellationMessage(client *models.Client, d Details) (subject, body string) {
	reason := d.CancellationReason
	if reason == "" {
		reason = "No reason provided"
	}

	subject = "Appointment Cancellation"
	body = fmt.Sprintf(`Dear %s,

Your appointment has been cancelled with the following details:

Service: %s
Original Date & Time: %s
Staff: %s

Reason: %s

We apologize for any inconvenience this may cause. Please contact us to reschedule your appointment.

Best regards,
Mario Beauty Salon Team`,
		client.FirstName,
		d.ServiceName,
		d.StartTime.Format(datetimeLayout),
		d.StaffName,
		reason,
	)
	return subject, body
}

func reminderMessage(client *models.Client, d Details) (subject, body string) {
	subject = "Appointment Reminder"
	body = fmt.Sprintf(`Dear %s,

This is a reminder for your upcoming appointment:

Service: %s
Date & Time: %s
Staff: %s
Duration: %d minutes

Please remember to arrive 10 minutes before your scheduled appointment time.

We look forward to seeing you at Mario Beauty Salon!

Best regards,
Mario Beauty Salon Team`,
		client.FirstName,
		d.ServiceName,
		d.StartTime.Format(datetimeLayout),
		d.StaffName,
		d.DurationMinutes,
	)
	return subject, body
}
