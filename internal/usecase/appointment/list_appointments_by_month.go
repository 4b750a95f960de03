package appointment

import (
	"context"
	"time"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/domain/scheduling"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/dto"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/timezone"
)

type ListAppointmentsByMonth struct {
	repo scheduling.Repository
	tz   string
}

func NewListAppointmentsByMonth(
	repo scheduling.Repository,
	tz string,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
		tz:   tz,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	staffID uint,
	year int,
	month int,
	status string,
) ([]dto.AppointmentListDTO, error) {

	loc := timezone.Location(uc.tz)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

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
