package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/fitlog/internal/models"
)

// CalendarDay returns the day value falls on in location, as UTC midnight.
// Every stored date uses this representation.
func CalendarDay(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	year, month, day := value.In(location).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TruncateDay keeps the calendar day of value as seen in its own location.
func TruncateDay(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ParseCalendarDay(raw string, now time.Time, location *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.EqualFold(trimmed, "today") {
		return CalendarDay(now, location), nil
	}

	parsed, err := time.ParseInLocation(models.DayLayout, trimmed, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return parsed, nil
}

func FormatCalendarDay(day time.Time) string {
	return TruncateDay(day).Format(models.DayLayout)
}
