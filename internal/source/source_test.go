package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/username/calendar-layout/internal/event"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestFileSource_Load(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "Keyed YAML document",
			file: "events.yaml",
			content: `
events:
  - id: "1"
    title: Foo
    time:
      start: "2022-06-13"
      end: "2022-06-14"
  - id: "2"
    title: Bar
    time:
      start: "2022-06-14 09:00"
      end: "2022-06-14 10:30"
    location: Office
`,
		},
		{
			name: "Bare YAML list",
			file: "events.yml",
			content: `
- id: "1"
  title: Foo
  time: {start: "2022-06-13", end: "2022-06-14"}
- id: "2"
  title: Bar
  time: {start: "2022-06-14 09:00", end: "2022-06-14 10:30"}
  location: Office
`,
		},
		{
			name: "JSON list",
			file: "events.json",
			content: `[
  {"id": "1", "title": "Foo", "time": {"start": "2022-06-13", "end": "2022-06-14"}},
  {"id": "2", "title": "Bar", "time": {"start": "2022-06-14 09:00", "end": "2022-06-14 10:30"}, "location": "Office"}
]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := Open(writeFile(t, tt.file, tt.content), zap.NewNop())
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}

			events, err := src.Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if len(events) != 2 {
				t.Fatalf("Load() returned %d events, want 2", len(events))
			}
			if events[0].Title != "Foo" || !events[0].IsFullDay() {
				t.Errorf("events[0] = %+v, want full-day Foo", events[0])
			}
			if events[1].Location != "Office" || !events[1].IsTimed() {
				t.Errorf("events[1] = %+v, want timed Bar at Office", events[1])
			}
		})
	}
}

func TestFileSource_Load_Errors(t *testing.T) {
	if _, err := NewFileSource(filepath.Join(t.TempDir(), "missing.yaml"), zap.NewNop()).Load(); err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}

	path := writeFile(t, "broken.yaml", "events: [unterminated")
	if _, err := NewFileSource(path, zap.NewNop()).Load(); err == nil {
		t.Error("Load() expected error for malformed YAML, got nil")
	}
}

func TestOpen_UnsupportedFormat(t *testing.T) {
	_, err := Open("events.csv", zap.NewNop())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Open() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestICSSource_Load(t *testing.T) {
	content := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//test//EN\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:conference\r\n" +
		"DTSTAMP:20220601T000000Z\r\n" +
		"SUMMARY:Conference\r\n" +
		"DTSTART;VALUE=DATE:20220614\r\n" +
		"DTEND;VALUE=DATE:20220617\r\n" +
		"END:VEVENT\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:holiday\r\n" +
		"DTSTAMP:20220601T000000Z\r\n" +
		"SUMMARY:Holiday\r\n" +
		"DTSTART;VALUE=DATE:20220618\r\n" +
		"END:VEVENT\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:standup\r\n" +
		"DTSTAMP:20220601T000000Z\r\n" +
		"SUMMARY:Standup\r\n" +
		"LOCATION:Room 1\r\n" +
		"DTSTART:20220613T091500Z\r\n" +
		"DTEND:20220613T093000Z\r\n" +
		"END:VEVENT\r\n" +
		"BEGIN:VEVENT\r\n" +
		"DTSTAMP:20220601T000000Z\r\n" +
		"SUMMARY:No UID\r\n" +
		"DTSTART;VALUE=DATE:20220618\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	src, err := Open(writeFile(t, "calendar.ics", content), zap.NewNop())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	events, err := src.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(events) != 3 {
		t.Fatalf("Load() returned %d events, want 3: %+v", len(events), events)
	}

	conference := events[0]
	if conference.Time.Start != "2022-06-14" || conference.Time.End != "2022-06-16" {
		t.Errorf("conference time = %+v, want 2022-06-14..2022-06-16", conference.Time)
	}

	holiday := events[1]
	if holiday.Time.Start != "2022-06-18" || holiday.Time.End != "2022-06-18" {
		t.Errorf("holiday time = %+v, want single day 2022-06-18", holiday.Time)
	}

	standup := events[2]
	if standup.Time.Start != "2022-06-13 09:15" || standup.Time.End != "2022-06-13 09:30" {
		t.Errorf("standup time = %+v, want 09:15..09:30", standup.Time)
	}
	if standup.Location != "Room 1" {
		t.Errorf("standup location = %q, want Room 1", standup.Location)
	}
}

type stubSource struct {
	name   string
	titles []string
	err    error
}

func (s stubSource) Name() string { return s.name }

func (s stubSource) Load() ([]event.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]event.Event, len(s.titles))
	for i, title := range s.titles {
		out[i] = event.Event{ID: title, Title: title}
	}
	return out, nil
}

func TestCompositeSource_Load(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	cs := NewCompositeSource(logger,
		stubSource{name: "a", titles: []string{"Foo", "Bar"}},
		stubSource{name: "b", err: errors.New("boom")},
		stubSource{name: "c", titles: []string{"Baz"}},
	)

	events, err := cs.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(events) != 3 || events[2].Title != "Baz" {
		t.Errorf("Load() = %+v, want Foo, Bar, Baz", events)
	}
	if cs.Name() != "a+b+c" {
		t.Errorf("Name() = %q, want a+b+c", cs.Name())
	}
}

func TestCompositeSource_AllFail(t *testing.T) {
	cs := NewCompositeSource(zap.NewNop(),
		stubSource{name: "a", err: errors.New("first")},
		stubSource{name: "b", err: errors.New("second")},
	)

	if _, err := cs.Load(); err == nil {
		t.Error("Load() expected error when every source fails, got nil")
	}

	if _, err := NewCompositeSource(zap.NewNop()).Load(); err == nil {
		t.Error("Load() expected error with no sources, got nil")
	}
}
