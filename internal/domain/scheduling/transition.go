package scheduling

import (
	"time"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/httperr"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
)

// Effect tells the caller which notification to dispatch after the status
// write has been persisted. Notifications are never fired from here so the
// machine stays side-effect free and the hook stays testable.
type Effect int

const (
	EffectNone Effect = iota
	EffectNotifyConfirmation
	EffectNotifyCancellation
)

// Transition validates the lifecycle edge and applies it to the entity,
// including its timestamp effects. The entity is left untouched when the
// edge is not in the table.
func Transition(ap *models.Appointment, target Status, reason string, now time.Time) (Effect, error) {
	from := Status(ap.Status)

	if !CanTransition(from, target) {
		return EffectNone, httperr.ErrInvalidTransition(string(from), string(target))
	}

	ap.Status = string(target)

	switch target {
	case StatusConfirmed:
		return EffectNotifyConfirmation, nil

	case StatusCheckedIn:
		ap.ActualStartTime = &now

	case StatusCompleted:
		ap.ActualEndTime = &now
		ap.PaymentStatus = PaymentPaid

	case StatusCancelled:
		ap.CancellationReason = reason
		return EffectNotifyCancellation, nil
	}

	return EffectNone, nil
}
