package scheduling

import "time"

const clockLayout = "15:04"

// ClockMinutes parses an "15:04" time-of-day into minutes since midnight.
func ClockMinutes(hm string) (int, bool) {
	t, err := time.Parse(clockLayout, hm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// OnDate anchors an "15:04" time-of-day to the given date, in the date's location.
func OnDate(date time.Time, hm string) (time.Time, bool) {
	t, err := time.Parse(clockLayout, hm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), true
}

// ISOWeekday returns 1 for Monday through 7 for Sunday.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
