package appointment

import (
	"context"
	"time"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/domain/scheduling"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/dto"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo scheduling.Repository
	tz   string
}

func NewListAppointmentsByDate(
	repo scheduling.Repository,
	tz string,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
		tz:   tz,
	}
}

// Execute lists one day of appointments. staffID 0 means every staff
// member; status "" means every status.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	staffID uint,
	date time.Time,
	status string,
) ([]dto.AppointmentListDTO, error) {

	loc := timezone.Location(uc.tz)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		staffID,
		start,
		end,
		status,
	)
	if err != nil {
		return nil, err
	}

	return toListDTO(appointments), nil
}

func toListDTO(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			StartTime:   ap.ScheduledStartTime,
			EndTime:     ap.ScheduledEndTime,
			Status:      ap.Status,
			ClientName:  ap.Client.FullName(),
			ServiceName: ap.Service.Name,
			StaffName:   ap.StaffProfile.FullName(),
			Price:       ap.Price,
		})
	}
	return out
}
