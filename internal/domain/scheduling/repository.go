package scheduling

import (
	"context"
	"time"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
)

// QueryMode makes soft-delete visibility explicit at the call site instead
// of hiding it in a default manager.
type QueryMode int

const (
	Active QueryMode = iota
	IncludingDeleted
)

type Repository interface {
	// -------- External collaborators (read-only here) --------
	GetClient(ctx context.Context, id uint, mode QueryMode) (*models.Client, error)

	GetService(ctx context.Context, id uint) (*models.Service, error)

	GetStaffProfile(ctx context.Context, id uint) (*models.StaffProfile, error)

	// GetWorkingHours returns (nil, nil) when the staff member has no
	// template for that weekday.
	GetWorkingHours(ctx context.Context, staffID uint, dayOfWeek int) (*models.WorkingHours, error)

	// -------- Conflict checking --------
	ConflictChecker

	// -------- Appointments --------
	// CreateAppointmentChecked re-runs the staff and client conflict scan
	// with row locks inside a transaction before inserting, so two racing
	// requests for the same interval cannot both land.
	CreateAppointmentChecked(ctx context.Context, ap *models.Appointment) error

	// UpdateAppointmentChecked does the same for a reschedule, excluding
	// the appointment's own prior occupancy.
	UpdateAppointmentChecked(ctx context.Context, ap *models.Appointment) error

	GetAppointment(ctx context.Context, id uint, mode QueryMode) (*models.Appointment, error)

	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	ListActiveAppointmentsForDay(
		ctx context.Context,
		staffID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		staffID uint,
		start time.Time,
		end time.Time,
		status string,
	) ([]models.Appointment, error)
}
