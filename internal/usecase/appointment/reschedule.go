package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/audit"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/bookinglock"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/domain/scheduling"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/httperr"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type RescheduleAppointmentInput struct {
	AppointmentID uint

	Date string
	Time string

	// NewStaffProfileID moves the appointment to another calendar when > 0.
	NewStaffProfileID uint

	ActorStaffID *uint
}

// ======================================================
// USE CASE
// ======================================================

type RescheduleAppointment struct {
	repo   scheduling.Repository
	locker bookinglock.Locker
	audit  Auditor
	tz     string
}

func NewRescheduleAppointment(
	repo scheduling.Repository,
	locker bookinglock.Locker,
	auditDispatcher Auditor,
	tz string,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:   repo,
		locker: locker,
		audit:  auditDispatcher,
		tz:     tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID, scheduling.Active)
	if err != nil {
		return nil, notFound(err, "appointment")
	}

	// Only not-yet-started appointments move; anything past check-in keeps
	// its history intact.
	switch scheduling.Status(ap.Status) {
	case scheduling.StatusPending, scheduling.StatusConfirmed:
	default:
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidTransition,
			"appointment in status %s cannot be rescheduled", ap.Status)
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(uc.tz),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	staffID := ap.StaffProfileID
	if in.NewStaffProfileID > 0 {
		if _, err := uc.repo.GetStaffProfile(ctx, in.NewStaffProfileID); err != nil {
			return nil, notFound(err, "staff member")
		}
		staffID = in.NewStaffProfileID
	}

	// The new interval keeps the original booked length, including blocked
	// time, so a reschedule can never shrink or stretch the service.
	durationMin := ap.DurationMinutes()
	end := start.Add(time.Duration(durationMin) * time.Minute)

	now := timezone.NowIn(uc.tz)
	if err := scheduling.ValidateBooking(ctx, uc.repo, scheduling.BookingRequest{
		StaffProfileID:         staffID,
		ClientID:               ap.ClientID,
		Start:                  start,
		End:                    end,
		ServiceDurationMinutes: durationMin,
		ExcludeAppointmentID:   ap.ID,
	}, now); err != nil {
		return nil, err
	}

	ap.StaffProfileID = staffID
	ap.ScheduledStartTime = start
	ap.ScheduledEndTime = end

	err = uc.locker.WithStaffLock(ctx, staffID, func(ctx context.Context) error {
		return uc.repo.UpdateAppointmentChecked(ctx, ap)
	})
	if errors.Is(err, bookinglock.ErrNotAcquired) {
		return nil, httperr.ErrBusinessf(httperr.CodeTimeConflict,
			"another booking for this staff member is in progress, try again")
	}
	if err != nil {
		return nil, err
	}

	apID := ap.ID
	uc.audit.Dispatch(audit.Event{
		StaffProfileID: in.ActorStaffID,
		Action:         "appointment_rescheduled",
		Entity:         "appointment",
		EntityID:       &apID,
	})

	return ap, nil
}
