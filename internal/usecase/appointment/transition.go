package appointment

import (
	"context"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/audit"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/domain/scheduling"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/httperr"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/notification"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type TransitionAppointmentInput struct {
	AppointmentID uint

	Target string
	Reason string

	ActorStaffID *uint
}

// ======================================================
// USE CASE
// ======================================================

type TransitionAppointment struct {
	repo   scheduling.Repository
	notify Notifier
	audit  Auditor
	tz     string
}

func NewTransitionAppointment(
	repo scheduling.Repository,
	notify Notifier,
	auditDispatcher Auditor,
	tz string,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:   repo,
		notify: notify,
		audit:  auditDispatcher,
		tz:     tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	in TransitionAppointmentInput,
) (*models.Appointment, error) {

	if !scheduling.IsValidStatus(in.Target) {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidTransition,
			"unknown status %q", in.Target)
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID, scheduling.Active)
	if err != nil {
		return nil, notFound(err, "appointment")
	}

	now := timezone.NowIn(uc.tz)
	effect, err := scheduling.Transition(ap, scheduling.Status(in.Target), in.Reason, now)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		// Rebooking a cancelled or no-show appointment puts it back in the
		// exclusion constraint's scope; if the freed slot was taken in the
		// meantime, the write fails like any other double booking.
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness(httperr.CodeTimeConflict)
		}
		return nil, err
	}

	// Emails only fire once the status write is durable.
	uc.dispatchEffect(ap, effect)

	apID := ap.ID
	uc.audit.Dispatch(audit.Event{
		StaffProfileID: in.ActorStaffID,
		Action:         "appointment_" + in.Target,
		Entity:         "appointment",
		EntityID:       &apID,
		Metadata:       map[string]string{"reason": in.Reason},
	})

	return ap, nil
}

func (uc *TransitionAppointment) dispatchEffect(ap *models.Appointment, effect scheduling.Effect) {
	var kind string
	switch effect {
	case scheduling.EffectNotifyConfirmation:
		kind = models.NotificationKindConfirmation
	case scheduling.EffectNotifyCancellation:
		kind = models.NotificationKindCancellation
	default:
		return
	}

	apID := ap.ID
	uc.notify.Dispatch(notification.Event{
		Kind:          kind,
		Client:        ap.Client,
		AppointmentID: &apID,
		Details: notification.Details{
			ServiceName:        ap.Service.Name,
			StaffName:          ap.StaffProfile.FullName(),
			StartTime:          ap.ScheduledStartTime,
			DurationMinutes:    ap.Service.DurationMinutes,
			Price:              ap.Price,
			CancellationReason: ap.CancellationReason,
		},
	})
}
