package event

import (
	"github.com/username/calendar-layout/pkg/dateutil"
)

// TimeRange is the start/end of an event.
// Full-day ranges use YYYY-MM-DD, timed ranges use YYYY-MM-DD hh:mm; both ends are inclusive.
type TimeRange struct {
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end" json:"end"`
}

// Event represents a single calendar event as supplied by the caller
type Event struct {
	ID          string    `yaml:"id" json:"id"`
	Title       string    `yaml:"title" json:"title"`
	Time        TimeRange `yaml:"time" json:"time"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	Location    string    `yaml:"location,omitempty" json:"location,omitempty"`
	Topic       string    `yaml:"topic,omitempty" json:"topic,omitempty"`
	With        string    `yaml:"with,omitempty" json:"with,omitempty"`
	Color       string    `yaml:"color,omitempty" json:"color,omitempty"`
	IsEditable  bool      `yaml:"is_editable,omitempty" json:"isEditable,omitempty"`
}

// IsFullDay reports whether both ends of the range are plain calendar dates
func (e *Event) IsFullDay() bool {
	return dateutil.IsDateString(e.Time.Start) && dateutil.IsDateString(e.Time.End)
}

// IsTimed reports whether both ends of the range carry a time of day
func (e *Event) IsTimed() bool {
	return dateutil.IsDateTimeString(e.Time.Start) && dateutil.IsDateTimeString(e.Time.End)
}

// Partition splits events into full-day and timed ones, keeping input order.
// Events matching neither shape are dropped.
func Partition(events []Event) (fullDay []Event, timed []Event) {
	for _, e := range events {
		switch {
		case e.IsFullDay():
			fullDay = append(fullDay, e)
		case e.IsTimed():
			timed = append(timed, e)
		}
	}
	return fullDay, timed
}
