package source

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/username/calendar-layout/internal/event"
	"github.com/username/calendar-layout/pkg/dateutil"
)

const icsDateLayout = "20060102"

// ICSSource implements Source using an iCalendar file.
//
// All-day VEVENTs become full-day events (DTEND is exclusive in iCalendar and is
// turned into an inclusive end date). Timed VEVENTs keep their wall clock time in
// the zone they were written in. RRULEs are not expanded: only the first instance
// is returned.
type ICSSource struct {
	filePath string
	logger   *zap.Logger
}

// NewICSSource creates a new ICSSource instance
func NewICSSource(filePath string, logger *zap.Logger) *ICSSource {
	return &ICSSource{
		filePath: filePath,
		logger:   logger,
	}
}

// Name returns the file path
func (is *ICSSource) Name() string {
	return is.filePath
}

// Load parses VEVENTs from the file. Events that cannot be converted are logged and skipped.
func (is *ICSSource) Load() ([]event.Event, error) {
	file, err := os.Open(is.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open ics file: %w", err)
	}
	defer file.Close()

	cal, err := ical.ParseCalendar(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ics file %s: %w", is.filePath, err)
	}

	events := make([]event.Event, 0)
	for _, ve := range cal.Events() {
		ev, err := convertVEvent(ve)
		if err != nil {
			is.logger.Warn("Skipping VEVENT", zap.String("file", is.filePath), zap.Error(err))
			continue
		}
		if ve.GetProperty(ical.ComponentPropertyRrule) != nil {
			is.logger.Warn("Recurring VEVENT is not expanded, using first instance only",
				zap.String("uid", ev.ID))
		}
		events = append(events, ev)
	}

	is.logger.Info("ICS file loaded",
		zap.String("file", is.filePath),
		zap.Int("events", len(events)))

	return events, nil
}

func convertVEvent(ve *ical.VEvent) (event.Event, error) {
	var out event.Event

	uidProp := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uidProp == nil || uidProp.Value == "" {
		return out, errors.New("missing UID")
	}
	out.ID = uidProp.Value

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Title = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		out.Description = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		out.Location = p.Value
	}

	startProp := ve.GetProperty(ical.ComponentPropertyDtStart)
	if startProp == nil {
		return out, fmt.Errorf("event %s: missing DTSTART", out.ID)
	}

	if isAllDay(startProp) {
		start, err := time.Parse(icsDateLayout, strings.TrimSpace(startProp.Value))
		if err != nil {
			return out, fmt.Errorf("event %s: invalid DTSTART: %w", out.ID, err)
		}
		end := start
		if endProp := ve.GetProperty(ical.ComponentPropertyDtEnd); endProp != nil {
			exclusiveEnd, err := time.Parse(icsDateLayout, strings.TrimSpace(endProp.Value))
			if err != nil {
				return out, fmt.Errorf("event %s: invalid DTEND: %w", out.ID, err)
			}
			if exclusiveEnd.After(start) {
				end = dateutil.AddDays(exclusiveEnd, -1)
			}
		}
		out.Time = event.TimeRange{Start: dateutil.FormatDate(start), End: dateutil.FormatDate(end)}
		return out, nil
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return out, fmt.Errorf("event %s: invalid DTSTART: %w", out.ID, err)
	}
	end, err := ve.GetEndAt()
	if err != nil {
		end = start
	}
	out.Time = event.TimeRange{Start: dateutil.FormatDateTime(start), End: dateutil.FormatDateTime(end)}
	return out, nil
}

// isAllDay reports whether DTSTART has VALUE=DATE or a bare YYYYMMDD value
func isAllDay(prop *ical.IANAProperty) bool {
	if vs, ok := prop.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(prop.Value, "T")
}
