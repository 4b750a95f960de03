package scheduling

import (
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/httperr"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
)

// ValidateWorkingHours checks a weekday template before it is written.
// Read paths assume templates already passed this.
func ValidateWorkingHours(wh *models.WorkingHours) error {
	if !wh.IsAvailable {
		return nil
	}

	start, ok := ClockMinutes(wh.StartTime)
	if !ok {
		return httperr.ErrInvalidRange()
	}
	end, ok := ClockMinutes(wh.EndTime)
	if !ok {
		return httperr.ErrInvalidRange()
	}
	if start >= end {
		return httperr.ErrInvalidRange()
	}

	hasBreakStart := wh.BreakStartTime != ""
	hasBreakEnd := wh.BreakEndTime != ""
	if hasBreakStart != hasBreakEnd {
		return httperr.ErrBusinessf(httperr.CodeInvalidBreak, "break start and end must be set together")
	}
	if !hasBreakStart {
		return nil
	}

	breakStart, ok := ClockMinutes(wh.BreakStartTime)
	if !ok {
		return httperr.ErrBusinessf(httperr.CodeInvalidBreak, "break start time is not a valid time of day")
	}
	breakEnd, ok := ClockMinutes(wh.BreakEndTime)
	if !ok {
		return httperr.ErrBusinessf(httperr.CodeInvalidBreak, "break end time is not a valid time of day")
	}
	if breakStart >= breakEnd {
		return httperr.ErrBusinessf(httperr.CodeInvalidBreak, "break start time must be before break end time")
	}
	if breakStart < start || breakEnd > end {
		return httperr.ErrBusinessf(httperr.CodeInvalidBreak, "break times must be within working hours")
	}

	return nil
}

// WorkingDayMinutes is the available minutes for the day: working span minus
// the break, clamped to zero. Unavailable or malformed templates count as zero.
func WorkingDayMinutes(wh *models.WorkingHours) int {
	if wh == nil || !wh.IsAvailable {
		return 0
	}

	start, ok := ClockMinutes(wh.StartTime)
	if !ok {
		return 0
	}
	end, ok := ClockMinutes(wh.EndTime)
	if !ok {
		return 0
	}

	total := end - start

	if wh.BreakStartTime != "" && wh.BreakEndTime != "" {
		breakStart, ok1 := ClockMinutes(wh.BreakStartTime)
		breakEnd, ok2 := ClockMinutes(wh.BreakEndTime)
		if ok1 && ok2 {
			total -= breakEnd - breakStart
		}
	}

	if total < 0 {
		return 0
	}
	return total
}
