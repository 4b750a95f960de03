package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/audit"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/bookinglock"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/domain/scheduling"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/httperr"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/notification"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID       uint
	ServiceID      uint
	StaffProfileID uint

	Date  string
	Time  string
	Notes string

	// ActorStaffID is the authenticated staff member recording the booking.
	ActorStaffID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   scheduling.Repository
	locker bookinglock.Locker
	notify Notifier
	audit  Auditor
	tz     string
}

func NewCreateAppointment(
	repo scheduling.Repository,
	locker bookinglock.Locker,
	notify Notifier,
	auditDispatcher Auditor,
	tz string,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		locker: locker,
		notify: notify,
		audit:  auditDispatcher,
		tz:     tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Collaborators
	// --------------------------------------------------
	client, err := uc.repo.GetClient(ctx, in.ClientID, scheduling.Active)
	if err != nil {
		return nil, notFound(err, "client")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, notFound(err, "service")
	}
	if !service.Active {
		return nil, httperr.ErrNotFound("service")
	}

	staff, err := uc.repo.GetStaffProfile(ctx, in.StaffProfileID)
	if err != nil {
		return nil, notFound(err, "staff member")
	}

	// --------------------------------------------------
	// 2. Date / time in the salon timezone
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(uc.tz),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// Blocked time counts too: preparation and cleanup belong to the
	// appointment interval, not just the hands-on service time.
	durationMin := service.TotalDurationMinutes()
	end := start.Add(time.Duration(durationMin) * time.Minute)

	// --------------------------------------------------
	// 3. Booking validation (past, range, duration, conflicts)
	// --------------------------------------------------
	now := timezone.NowIn(uc.tz)
	if err := scheduling.ValidateBooking(ctx, uc.repo, scheduling.BookingRequest{
		StaffProfileID:         in.StaffProfileID,
		ClientID:               in.ClientID,
		Start:                  start,
		End:                    end,
		ServiceDurationMinutes: durationMin,
	}, now); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Checked write under the staff calendar lock
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:           in.ClientID,
		ServiceID:          in.ServiceID,
		StaffProfileID:     in.StaffProfileID,
		ScheduledStartTime: start,
		ScheduledEndTime:   end,
		Status:             string(scheduling.StatusPending),
		PaymentStatus:      scheduling.PaymentPending,
		Price:              service.Price,
		Notes:              in.Notes,
	}

	err = uc.locker.WithStaffLock(ctx, in.StaffProfileID, func(ctx context.Context) error {
		return uc.repo.CreateAppointmentChecked(ctx, ap)
	})
	if errors.Is(err, bookinglock.ErrNotAcquired) {
		return nil, httperr.ErrBusinessf(httperr.CodeTimeConflict,
			"another booking for this staff member is in progress, try again")
	}
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Confirmation email + audit trail
	// --------------------------------------------------
	apID := ap.ID
	uc.notify.Dispatch(notification.Event{
		Kind:          models.NotificationKindConfirmation,
		Client:        *client,
		AppointmentID: &apID,
		Details: notification.Details{
			ServiceName:     service.Name,
			StaffName:       staff.FullName(),
			StartTime:       start,
			DurationMinutes: service.DurationMinutes,
			Price:           ap.Price,
		},
	})

	uc.audit.Dispatch(audit.Event{
		StaffProfileID: in.ActorStaffID,
		Action:         "appointment_created",
		Entity:         "appointment",
		EntityID:       &apID,
	})

	return ap, nil
}

// notFound maps a missing row to the business rejection and passes every
// other storage error through untouched.
func notFound(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(entity)
	}
	return err
}
