package warnings

import (
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"github.com/username/calendar-layout/internal/config"
	"github.com/username/calendar-layout/internal/event"
	"github.com/username/calendar-layout/pkg/dateutil"
)

// Prefix is prepended to every advisory message
const Prefix = "[Qalendar warning]"

var localePattern = regexp.MustCompile(`^[a-z]{2}-[A-Z]{2}$`)

// Checker logs advisory warnings about events and configuration.
// It never returns errors and never changes what the caller does next.
type Checker struct {
	logger *zap.Logger
}

// NewChecker creates a new Checker
func NewChecker(logger *zap.Logger) *Checker {
	return &Checker{logger: logger}
}

// CheckEventProperties warns about missing or badly formatted event properties.
// The returned messages are the ones that were logged.
func (c *Checker) CheckEventProperties(e event.Event) []string {
	var msgs []string
	warn := func(format string, a ...interface{}) {
		msg := fmt.Sprintf(format, a...)
		msgs = append(msgs, msg)
		c.logger.Warn(Prefix+" "+msg, zap.String("event_id", e.ID))
	}

	// Warn if required property is missing
	if e.ID == "" {
		warn("required event property 'id' is missing")
	}
	if e.Title == "" {
		warn("required event property 'title' is missing")
	}
	if e.Time.Start == "" {
		warn("required event property 'time.start' is missing")
	}
	if e.Time.End == "" {
		warn("required event property 'time.end' is missing")
	}

	// Warn if property format is faulty
	if e.Time.Start != "" && !isEventTimeString(e.Time.Start) {
		warn("event property 'time.start' expects a string formatted like 'YYYY-MM-DD hh:mm' or 'YYYY-MM-DD', received %s", e.Time.Start)
	}
	if e.Time.End != "" && !isEventTimeString(e.Time.End) {
		warn("event property 'time.end' expects a string formatted like 'YYYY-MM-DD hh:mm' or 'YYYY-MM-DD', received %s", e.Time.End)
	}
	if isEventTimeString(e.Time.Start) && isEventTimeString(e.Time.End) && !e.IsFullDay() && !e.IsTimed() {
		warn("event properties 'time.start' and 'time.end' mix full-day and timed formats: %s / %s", e.Time.Start, e.Time.End)
	}

	if e.IsFullDay() || e.IsTimed() {
		start, errStart := dateutil.ParseCalendarDate(e.Time.Start)
		end, errEnd := dateutil.ParseCalendarDate(e.Time.End)
		if errStart == nil && errEnd == nil && end.Before(start) {
			warn("event ends before it starts: %s > %s", e.Time.Start, e.Time.End)
		}
	}

	return msgs
}

// CheckEvents runs CheckEventProperties over every event.
// Each returned message is prefixed with the id of the event it concerns.
func (c *Checker) CheckEvents(events []event.Event) []string {
	var msgs []string
	for _, e := range events {
		for _, msg := range c.CheckEventProperties(e) {
			msgs = append(msgs, fmt.Sprintf("event %q: %s", e.ID, msg))
		}
	}
	return msgs
}

// CheckConfig warns about calendar settings the renderer would not understand
func (c *Checker) CheckConfig(cfg config.CalendarConfig) []string {
	var msgs []string

	if cfg.Locale != "" && !localePattern.MatchString(cfg.Locale) {
		msg := fmt.Sprintf("config.locale expects a string of format xx-XX, received: %s", cfg.Locale)
		msgs = append(msgs, msg)
		c.logger.Warn(Prefix + " " + msg)
	}

	switch cfg.DefaultMode {
	case "", "month", "week", "day":
	default:
		msg := `config.defaultMode expects either one of the values "day", "week" or "month"`
		msgs = append(msgs, msg)
		c.logger.Warn(Prefix+" "+msg, zap.String("default_mode", cfg.DefaultMode))
	}

	return msgs
}

func isEventTimeString(s string) bool {
	return dateutil.IsDateString(s) || dateutil.IsDateTimeString(s)
}
