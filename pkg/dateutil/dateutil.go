package dateutil

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the calendar date format used by events ("YYYY-MM-DD")
	DateLayout = "2006-01-02"
	// DateTimeLayout is the timed event format ("YYYY-MM-DD hh:mm")
	DateTimeLayout = "2006-01-02 15:04"
)

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// CalendarDate strips the clock and location from t.
// Two values returned by CalendarDate compare equal exactly when they name the same calendar day.
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after date (n may be negative)
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// StartOfWeek returns the first day of the week containing date.
// weekStart is usually time.Monday or time.Sunday.
func StartOfWeek(date time.Time, weekStart time.Weekday) time.Time {
	offset := (int(date.Weekday()) - int(weekStart) + 7) % 7
	return StartOfDay(date.AddDate(0, 0, -offset))
}

// WeekWindow returns the first and last calendar day of the 7-day window containing date
func WeekWindow(date time.Time, weekStart time.Weekday) (time.Time, time.Time) {
	first := StartOfWeek(date, weekStart)
	return first, first.AddDate(0, 0, 6)
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// FormatDate formats date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// FormatDateTime formats date as YYYY-MM-DD hh:mm
func FormatDateTime(date time.Time) string {
	return date.Format(DateTimeLayout)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date
func ParseDate(dateStr string) (time.Time, error) {
	// time.Parse would also take single-digit fields
	if len(dateStr) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", dateStr)
	}
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return t, nil
}

// ParseDateTime parses a YYYY-MM-DD hh:mm string.
// It returns the calendar date and the time of day in minutes since midnight.
func ParseDateTime(dateTimeStr string) (time.Time, int, error) {
	if len(dateTimeStr) != len(DateTimeLayout) {
		return time.Time{}, 0, fmt.Errorf("invalid date-time %q: expected YYYY-MM-DD hh:mm", dateTimeStr)
	}
	t, err := time.Parse(DateTimeLayout, dateTimeStr)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid date-time %q: %w", dateTimeStr, err)
	}
	return CalendarDate(t), t.Hour()*60 + t.Minute(), nil
}

// ParseCalendarDate accepts either a date or a date-time string and returns its calendar date
func ParseCalendarDate(s string) (time.Time, error) {
	switch len(s) {
	case len(DateLayout):
		return ParseDate(s)
	case len(DateTimeLayout):
		date, _, err := ParseDateTime(s)
		return date, err
	default:
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or YYYY-MM-DD hh:mm", s)
	}
}

// IsDateString reports whether s is formatted like YYYY-MM-DD
func IsDateString(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// IsDateTimeString reports whether s is formatted like YYYY-MM-DD hh:mm
func IsDateTimeString(s string) bool {
	if len(s) != len(DateTimeLayout) {
		return false
	}
	_, err := time.Parse(DateTimeLayout, s)
	return err == nil
}

// ParseWeekday maps "monday"/"sunday" to a time.Weekday, defaulting to Monday
func ParseWeekday(name string) time.Weekday {
	switch name {
	case "sunday":
		return time.Sunday
	default:
		return time.Monday
	}
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
