package httperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Rejection codes used by the scheduling core.
const (
	CodeNotFound          = "not_found"
	CodePastTime          = "past_time"
	CodeInvalidRange      = "invalid_range"
	CodeDurationMismatch  = "duration_mismatch"
	CodeStaffUnavailable  = "staff_unavailable"
	CodeClientUnavailable = "client_unavailable"
	CodeInvalidTransition = "invalid_transition"
	CodeInvalidDuration   = "invalid_duration"
	CodeAvailabilityCheck = "availability_check_failed"
	CodeTimeConflict      = "time_conflict"
	CodeInvalidBreak      = "invalid_break"
	CodeInvalidPrice      = "invalid_price"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessf(code, format string, args ...any) error {
	return BusinessError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness extracts the business error, if any.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

// ---------------------------------------------------------
// Named rejections
// ---------------------------------------------------------

func ErrNotFound(entity string) error {
	return ErrBusinessf(CodeNotFound, "%s not found", entity)
}

func ErrPastTime() error {
	return ErrBusinessf(CodePastTime, "cannot schedule appointments in the past")
}

func ErrInvalidRange() error {
	return ErrBusinessf(CodeInvalidRange, "start time must be before end time")
}

func ErrDurationMismatch(scheduled, service int) error {
	return ErrBusinessf(
		CodeDurationMismatch,
		"appointment duration (%d minutes) must match service duration (%d minutes)",
		scheduled, service,
	)
}

func ErrStaffUnavailable() error {
	return ErrBusinessf(CodeStaffUnavailable, "staff member is not available at the requested time")
}

func ErrClientUnavailable() error {
	return ErrBusinessf(CodeClientUnavailable, "client already has an appointment at the requested time")
}

func ErrInvalidTransition(from, to string) error {
	return ErrBusinessf(CodeInvalidTransition, "invalid status transition from %s to %s", from, to)
}

func ErrInvalidDuration(minutes int) error {
	return ErrBusinessf(CodeInvalidDuration, "service duration must be positive, got %d minutes", minutes)
}

func ErrAvailabilityCheck() error {
	return ErrBusinessf(CodeAvailabilityCheck, "availability could not be determined; treating the slot as unavailable")
}

// ---------------------------------------------------------
// Storage-level conflicts
// ---------------------------------------------------------

// IsExclusionConflict reports whether err is a Postgres exclusion constraint
// violation (SQLSTATE 23P01). The appointments table carries a gist exclusion
// constraint on (staff, time range) as a backstop against booking races.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23P01"
	}
	return false
}
