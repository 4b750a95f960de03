package scheduling

import (
	"time"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/httperr"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
)

// Candidate start times walk the day on a fixed grid regardless of
// service length, so a 45-minute service still starts on the half hour.
const SlotStepMinutes = 30

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AvailableSlots produces the ordered bookable start times for one staff
// member on one date. busy must contain only that staff member's active
// appointments for the date (pending/confirmed/checked_in/in_progress);
// cancelled, completed and no_show bookings no longer block new slots here.
func AvailableSlots(
	wh *models.WorkingHours,
	date time.Time,
	serviceDurationMinutes int,
	busy []models.Appointment,
) ([]TimeSlot, error) {

	if serviceDurationMinutes <= 0 {
		return nil, httperr.ErrInvalidDuration(serviceDurationMinutes)
	}

	if wh == nil || !wh.IsAvailable {
		return []TimeSlot{}, nil
	}

	dayStart, ok := OnDate(date, wh.StartTime)
	if !ok {
		return []TimeSlot{}, nil
	}
	dayEnd, ok := OnDate(date, wh.EndTime)
	if !ok {
		return []TimeSlot{}, nil
	}

	hasBreak := wh.BreakStartTime != "" && wh.BreakEndTime != ""
	var breakStart, breakEnd time.Time
	if hasBreak {
		breakStart, ok = OnDate(date, wh.BreakStartTime)
		if !ok {
			hasBreak = false
		}
	}
	if hasBreak {
		breakEnd, ok = OnDate(date, wh.BreakEndTime)
		if !ok {
			hasBreak = false
		}
	}

	duration := time.Duration(serviceDurationMinutes) * time.Minute
	step := SlotStepMinutes * time.Minute

	slots := []TimeSlot{}

	for cur := dayStart; !cur.Add(duration).After(dayEnd); cur = cur.Add(step) {
		slotStart := cur
		slotEnd := cur.Add(duration)

		if hasBreak && Overlaps(slotStart, slotEnd, breakStart, breakEnd) {
			continue
		}

		conflict := false
		for _, ap := range busy {
			if Overlaps(slotStart, slotEnd, ap.ScheduledStartTime, ap.ScheduledEndTime) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		slots = append(slots, TimeSlot{
			Start: slotStart.Format(clockLayout),
			End:   slotEnd.Format(clockLayout),
		})
	}

	return slots, nil
}
