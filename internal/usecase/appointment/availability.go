package appointment

import (
	"context"
	"time"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/domain/scheduling"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/timezone"
)

type GetAvailability struct {
	repo scheduling.Repository
	tz   string
}

func NewGetAvailability(repo scheduling.Repository, tz string) *GetAvailability {
	return &GetAvailability{repo: repo, tz: tz}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	staffID uint,
	serviceID uint,
	date time.Time,
) ([]scheduling.TimeSlot, error) {

	service, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, notFound(err, "service")
	}

	loc := timezone.Location(uc.tz)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	wh, err := uc.repo.GetWorkingHours(ctx, staffID, scheduling.ISOWeekday(day))
	if err != nil {
		return nil, err
	}

	busy, err := uc.repo.ListActiveAppointmentsForDay(
		ctx,
		staffID,
		day,
		day.Add(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}

	return scheduling.AvailableSlots(wh, day, service.TotalDurationMinutes(), busy)
}
