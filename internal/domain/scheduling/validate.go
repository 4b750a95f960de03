package scheduling

import (
	"context"
	"time"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/httperr"
)

// ConflictChecker answers whether a subject already has a non-cancelled
// appointment overlapping an interval. excludeID (0 = none) lets a
// reschedule ignore its own prior occupancy.
type ConflictChecker interface {
	HasStaffConflict(ctx context.Context, staffID uint, start, end time.Time, excludeID uint) (bool, error)
	HasClientConflict(ctx context.Context, clientID uint, start, end time.Time, excludeID uint) (bool, error)
}

type BookingRequest struct {
	StaffProfileID uint
	ClientID       uint

	Start time.Time
	End   time.Time

	ServiceDurationMinutes int

	// ExcludeAppointmentID suppresses self-conflict on reschedule.
	ExcludeAppointmentID uint
}

// ValidateBooking runs the pre-create checks in order, short-circuiting on
// the first failure. A checker failure is treated as "unavailable": better
// to reject a booking than risk a double-booking on unknown data.
func ValidateBooking(ctx context.Context, checker ConflictChecker, req BookingRequest, now time.Time) error {
	if req.Start.Before(now) {
		return httperr.ErrPastTime()
	}

	if !req.Start.Before(req.End) {
		return httperr.ErrInvalidRange()
	}

	scheduled := int(req.End.Sub(req.Start) / time.Minute)
	if scheduled != req.ServiceDurationMinutes {
		return httperr.ErrDurationMismatch(scheduled, req.ServiceDurationMinutes)
	}

	conflict, err := checker.HasStaffConflict(ctx, req.StaffProfileID, req.Start, req.End, req.ExcludeAppointmentID)
	if err != nil {
		return httperr.ErrAvailabilityCheck()
	}
	if conflict {
		return httperr.ErrStaffUnavailable()
	}

	conflict, err = checker.HasClientConflict(ctx, req.ClientID, req.Start, req.End, req.ExcludeAppointmentID)
	if err != nil {
		return httperr.ErrAvailabilityCheck()
	}
	if conflict {
		return httperr.ErrClientUnavailable()
	}

	return nil
}
