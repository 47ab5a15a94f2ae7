package leave

import (
	"time"

	"github.com/lmoretti/workcrew-backend/models"
)

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// DateOnly discards the time-of-day component.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysInclusive counts calendar days in [start, end], both ends included:
// DaysInclusive(d, d) == 1. Returns 0 when end precedes start.
func DaysInclusive(start, end time.Time) int {
	start, end = DateOnly(start), DateOnly(end)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// HoursForRange derives the requested hours of a date-range leave.
func HoursForRange(start, end time.Time, workDayHours float64) float64 {
	return float64(DaysInclusive(start, end)) * workDayHours
}

// KindLabel is the human label shown on calendars and notifications.
func KindLabel(kind string) string {
	switch kind {
	case models.LeaveVacation:
		return "Ferie"
	case models.LeaveRol:
		return "ROL"
	case models.LeaveSickLeave:
		return "Malattia"
	}
	return kind
}
