package seed

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	ical "github.com/arran4/golang-ical"
	"gopkg.in/yaml.v3"

	"github.com/username/calendar-layout/internal/event"
	"github.com/username/calendar-layout/pkg/dateutil"
)

// ErrUnsupportedFormat is returned for output formats other than yaml and ics
var ErrUnsupportedFormat = errors.New("unsupported seed output format")

// Write stores events at path in the given format ("yaml" or "ics")
func Write(path, format string, events []event.Event) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case "", "yaml":
		data, err = yaml.Marshal(struct {
			Events []event.Event `yaml:"events"`
		}{Events: events})
	case "ics":
		data, err = encodeICS(events)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode events: %w", err)
	}

	return writeAtomic(path, data)
}

func encodeICS(events []event.Event) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//calendar-layout//seed//EN")

	stamp := time.Now().UTC()

	for _, e := range events {
		ve := cal.AddEvent(e.ID)
		ve.SetDtStampTime(stamp)
		ve.SetSummary(e.Title)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		if e.Location != "" {
			ve.SetLocation(e.Location)
		}

		switch {
		case e.IsFullDay():
			start, err := dateutil.ParseDate(e.Time.Start)
			if err != nil {
				return nil, err
			}
			end, err := dateutil.ParseDate(e.Time.End)
			if err != nil {
				return nil, err
			}
			ve.SetAllDayStartAt(start)
			// DTEND of an all-day VEVENT is exclusive
			ve.SetAllDayEndAt(dateutil.AddDays(end, 1))
		case e.IsTimed():
			start, err := time.Parse(dateutil.DateTimeLayout, e.Time.Start)
			if err != nil {
				return nil, err
			}
			end, err := time.Parse(dateutil.DateTimeLayout, e.Time.End)
			if err != nil {
				return nil, err
			}
			ve.SetStartAt(start)
			ve.SetEndAt(end)
		default:
			return nil, fmt.Errorf("event %s: unrecognized time range %s - %s", e.ID, e.Time.Start, e.Time.End)
		}
	}

	return []byte(cal.Serialize()), nil
}

// writeAtomic writes data to a temp file next to path and renames it into place
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".seed-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to chmod output: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	return nil
}
