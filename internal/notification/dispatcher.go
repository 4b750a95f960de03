package notification

import (
	"context"
	"log"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
)

// Notifier is what the dispatcher drains into; *Service is the real one.
type Notifier interface {
	SendAppointmentConfirmation(ctx context.Context, client *models.Client, appointmentID *uint, d Details) error
	SendAppointmentCancellation(ctx context.Context, client *models.Client, appointmentID *uint, d Details) error
	SendAppointmentReminder(ctx context.Context, client *models.Client, appointmentID *uint, d Details) error
}

type Event struct {
	Kind          string
	Client        models.Client
	AppointmentID *uint
	Details       Details
}

// Dispatcher decouples scheduling writes from delivery: Dispatch never
// blocks the request, and a full queue drops the event rather than
// failing the booking.
type Dispatcher struct {
	notifier Notifier
	queue    chan Event
}

func NewDispatcher(notifier Notifier) *Dispatcher {
	return newDispatcher(notifier, 100)
}

func newDispatcher(notifier Notifier, size int) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		queue:    make(chan Event, size),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		client := ev.Client

		var err error
		switch ev.Kind {
		case models.NotificationKindConfirmation:
			err = d.notifier.SendAppointmentConfirmation(context.Background(), &client, ev.AppointmentID, ev.Details)
		case models.NotificationKindCancellation:
			err = d.notifier.SendAppointmentCancellation(context.Background(), &client, ev.AppointmentID, ev.Details)
		case models.NotificationKindReminder:
			err = d.notifier.SendAppointmentReminder(context.Background(), &client, ev.AppointmentID, ev.Details)
		default:
			log.Printf("notification: unknown event kind %q", ev.Kind)
			continue
		}

		if err != nil {
			log.Printf("notification: %s to client %d failed: %v", ev.Kind, client.ID, err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Printf("notification queue full, dropping %s for client %d", ev.Kind, ev.Client.ID)
	}
}
