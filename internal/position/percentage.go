package position

import (
	"fmt"
	"math"

	"github.com/username/calendar-layout/pkg/dateutil"
)

// UnitsPerHour is the resolution of day units: 08:00 is 800, 08:30 is 850, 24:00 is 2400.
const UnitsPerHour = 100

// DayUnits converts minutes since midnight into day units
func DayUnits(minutes int) float64 {
	return float64(minutes/60*UnitsPerHour) + float64(minutes%60)*UnitsPerHour/60
}

// HoursToDayUnits converts a whole hour boundary (e.g. 8 for 08:00) into day units
func HoursToDayUnits(hours int) int {
	return hours * UnitsPerHour
}

// PercentageOfDay returns how far into the rendered day dateTime lies, as a percentage.
//
// dateTime must be formatted like "YYYY-MM-DD hh:mm"; dayStartUnits and dayEndUnits
// delimit the visible part of the day in day units. The result is not clamped:
// times before the start are negative and times after the end exceed 100.
// A malformed dateTime yields NaN.
func PercentageOfDay(dateTime string, dayStartUnits, dayEndUnits int) float64 {
	p, err := PercentageOfDayStrict(dateTime, dayStartUnits, dayEndUnits)
	if err != nil {
		return math.NaN()
	}
	return p
}

// PercentageOfDayStrict is PercentageOfDay with the parse error returned instead of NaN
func PercentageOfDayStrict(dateTime string, dayStartUnits, dayEndUnits int) (float64, error) {
	_, minutes, err := dateutil.ParseDateTime(dateTime)
	if err != nil {
		return math.NaN(), fmt.Errorf("percentage of day: %w", err)
	}

	timeUnits := DayUnits(minutes)
	start := float64(dayStartUnits)
	span := float64(dayEndUnits) - start

	return ((timeUnits - start) / span) * 100, nil
}

// Clamp clips a percentage into [0, 100]. NaN is returned unchanged.
func Clamp(p float64) float64 {
	if math.IsNaN(p) {
		return p
	}
	return math.Max(0, math.Min(100, p))
}
