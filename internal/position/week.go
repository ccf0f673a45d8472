package position

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"github.com/username/calendar-layout/internal/event"
	"github.com/username/calendar-layout/pkg/dateutil"
)

// DaysPerWeek is the number of days produced for every window
const DaysPerWeek = 7

// BlockedMarker is the serialized form of a blocked lane
const BlockedMarker = "blocked"

// LaneKind tells what a lane holds on a given day
type LaneKind int

const (
	// LaneEmpty means nothing is rendered in the lane that day
	LaneEmpty LaneKind = iota
	// LaneBlocked means an event that started on an earlier day still runs through the lane
	LaneBlocked
	// LaneOccupied means the lane's event is rendered starting that day
	LaneOccupied
)

func (k LaneKind) String() string {
	switch k {
	case LaneBlocked:
		return "blocked"
	case LaneOccupied:
		return "occupied"
	default:
		return "empty"
	}
}

// Lane is the content of one level on one day
type Lane struct {
	Kind  LaneKind
	Event *event.Event // set only for LaneOccupied
}

// Day is one calendar date of a week window together with its lanes.
// Lanes[0] is level1. Trailing empty lanes are never present.
type Day struct {
	Date  time.Time
	Lanes []Lane
}

// LevelKey returns the external identifier of the n-th lane (1-based)
func LevelKey(n int) string {
	return "level" + strconv.Itoa(n)
}

// Level returns the lane with 1-based index n, or an empty lane if it does not exist
func (d Day) Level(n int) Lane {
	if n < 1 || n > len(d.Lanes) {
		return Lane{}
	}
	return d.Lanes[n-1]
}

// Levels returns the non-empty lanes keyed by level identifier
func (d Day) Levels() map[string]Lane {
	levels := make(map[string]Lane, len(d.Lanes))
	for i, lane := range d.Lanes {
		if lane.Kind == LaneEmpty {
			continue
		}
		levels[LevelKey(i+1)] = lane
	}
	return levels
}

// MarshalJSON renders the day as {"date": "...", "level1": {...}, "level2": "blocked"}
func (d Day) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"date": dateutil.FormatDate(d.Date),
	}
	for key, lane := range d.Levels() {
		if lane.Kind == LaneBlocked {
			out[key] = BlockedMarker
			continue
		}
		out[key] = lane.Event
	}
	return json.Marshal(out)
}

// laneSlot is a lane held by an event until (and including) end
type laneSlot struct {
	event *event.Event
	end   time.Time
}

func (s laneSlot) free() bool {
	return s.event == nil
}

// placement is an event that intersects the window, with parsed dates
type placement struct {
	event *event.Event
	start time.Time
	end   time.Time
}

// PositionFullDayEventsInWeek assigns events to lanes for each of the 7 days starting at windowStart.
//
// Events are placed first-fit in order of start date (input order on ties). An event
// is Occupied on the day it starts, or on the first day of the window if it started
// earlier, and Blocked on every later day it still covers. A lane is released the day
// after its event ends. Events outside [windowStart, windowEnd] are ignored, as are
// events whose dates cannot be parsed.
//
// windowEnd is expected to be windowStart + 6 days; start <= end is expected for every event.
func PositionFullDayEventsInWeek(windowStart, windowEnd time.Time, events []event.Event) []Day {
	first := dateutil.CalendarDate(windowStart)
	last := dateutil.CalendarDate(windowEnd)

	pending := eventsInWindow(first, last, events)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].start.Before(pending[j].start)
	})

	week := make([]Day, DaysPerWeek)
	base := dateutil.StartOfDay(windowStart)
	var lanes []laneSlot

	for i := range week {
		date := first.AddDate(0, 0, i)

		for l := range lanes {
			if !lanes[l].free() && lanes[l].end.Before(date) {
				lanes[l] = laneSlot{}
			}
		}

		day := Day{
			Date:  base.AddDate(0, 0, i),
			Lanes: make([]Lane, len(lanes)),
		}
		for l, slot := range lanes {
			if !slot.free() {
				day.Lanes[l] = Lane{Kind: LaneBlocked}
			}
		}

		for len(pending) > 0 && !pending[0].start.After(date) {
			p := pending[0]
			pending = pending[1:]

			l := firstFreeLane(lanes)
			if l == len(lanes) {
				lanes = append(lanes, laneSlot{})
				day.Lanes = append(day.Lanes, Lane{})
			}
			lanes[l] = laneSlot{event: p.event, end: p.end}
			day.Lanes[l] = Lane{Kind: LaneOccupied, Event: p.event}
		}

		day.Lanes = trimEmptyTail(day.Lanes)
		week[i] = day
	}

	return week
}

func eventsInWindow(first, last time.Time, events []event.Event) []placement {
	out := make([]placement, 0, len(events))
	for i := range events {
		start, err := dateutil.ParseCalendarDate(events[i].Time.Start)
		if err != nil {
			continue
		}
		end, err := dateutil.ParseCalendarDate(events[i].Time.End)
		if err != nil {
			continue
		}
		if end.Before(first) || start.After(last) {
			continue
		}
		out = append(out, placement{event: &events[i], start: start, end: end})
	}
	return out
}

func firstFreeLane(lanes []laneSlot) int {
	for l, slot := range lanes {
		if slot.free() {
			return l
		}
	}
	return len(lanes)
}

func trimEmptyTail(lanes []Lane) []Lane {
	n := len(lanes)
	for n > 0 && lanes[n-1].Kind == LaneEmpty {
		n--
	}
	return lanes[:n]
}
