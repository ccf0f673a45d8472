package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/username/calendar-layout/internal/event"
	"github.com/username/calendar-layout/internal/position"
	"github.com/username/calendar-layout/pkg/dateutil"
)

// TimedSlot is a timed event positioned inside the visible part of its day
type TimedSlot struct {
	Event  *event.Event
	Date   time.Time
	Top    float64 // percentage of the day column where the event starts
	Height float64 // percentage of the day column the event covers
}

// PositionTimed computes TimedSlots for timed events that start within [first, last].
// Percentages are clamped so events partly outside the day boundaries stay inside the column.
func PositionTimed(timed []event.Event, first, last time.Time, dayStartUnits, dayEndUnits int) []TimedSlot {
	first = dateutil.CalendarDate(first)
	last = dateutil.CalendarDate(last)

	slots := make([]TimedSlot, 0, len(timed))
	for i := range timed {
		e := &timed[i]
		date, err := dateutil.ParseCalendarDate(e.Time.Start)
		if err != nil || date.Before(first) || date.After(last) {
			continue
		}

		top := position.Clamp(position.PercentageOfDay(e.Time.Start, dayStartUnits, dayEndUnits))
		bottom := 100.0
		if endDate, err := dateutil.ParseCalendarDate(e.Time.End); err == nil && dateutil.IsSameDay(date, endDate) {
			bottom = position.Clamp(position.PercentageOfDay(e.Time.End, dayStartUnits, dayEndUnits))
		}

		slots = append(slots, TimedSlot{
			Event:  e,
			Date:   date,
			Top:    top,
			Height: bottom - top,
		})
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Event.Time.Start < slots[j].Event.Time.Start
	})

	return slots
}

// TimedList renders timed slots one per line
func TimedList(slots []TimedSlot) string {
	if len(slots) == 0 {
		return emptyStyle.Render("no timed events this week")
	}

	var b strings.Builder
	for _, s := range slots {
		fmt.Fprintf(&b, "%s  %s-%s  %-24s top %5.1f%%  height %5.1f%%\n",
			s.Date.Format("Mon 01-02"),
			clock(s.Event.Time.Start),
			clock(s.Event.Time.End),
			truncate(s.Event.Title, 24),
			s.Top,
			s.Height)
	}
	return strings.TrimRight(b.String(), "\n")
}

// clock returns the hh:mm part of a "YYYY-MM-DD hh:mm" string
func clock(dateTime string) string {
	if i := strings.LastIndexByte(dateTime, ' '); i >= 0 {
		return dateTime[i+1:]
	}
	return dateTime
}
