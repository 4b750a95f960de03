package handlers

import (
	"time"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/timezone"
)

// The whole salon runs on one configured timezone; every date or time
// coming in over the API is interpreted in it.

func parseDateInSalon(tz, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(tz),
	)
}
