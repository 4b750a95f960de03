package scheduling

// =========================================
// Appointment Status
// =========================================

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

const (
	PaymentPending  = "pending"
	PaymentPartial  = "partial"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// validTransitions is the lifecycle table. completed is terminal;
// cancelled and no_show may go back to pending for rebooking.
var validTransitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn:  {StatusInProgress, StatusNoShow},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {StatusPending},
	StatusNoShow:     {StatusPending},
}

func CanTransition(from, to Status) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func IsValidStatus(s string) bool {
	_, ok := validTransitions[Status(s)]
	return ok
}

// ActiveStatuses are the not-yet-resolved statuses that block a slot for
// slot generation. Conflict checking at booking time uses the wider
// OccupyingStatuses set.
func ActiveStatuses() []string {
	return []string{
		string(StatusPending),
		string(StatusConfirmed),
		string(StatusCheckedIn),
		string(StatusInProgress),
	}
}

// OccupyingStatuses are the statuses whose appointments keep their
// interval claimed for booking-time conflict checks. Only cancelled
// frees the slot: completed and no_show bookings still occupy their
// historical interval.
func OccupyingStatuses() []string {
	return []string{
		string(StatusPending),
		string(StatusConfirmed),
		string(StatusCheckedIn),
		string(StatusInProgress),
		string(StatusCompleted),
		string(StatusNoShow),
	}
}

// Occupies reports whether an appointment in the given status claims its
// interval against new bookings.
func Occupies(status string) bool {
	return IsValidStatus(status) && status != string(StatusCancelled)
}
