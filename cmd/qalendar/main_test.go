package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/username/calendar-layout/internal/seed"
	"github.com/username/calendar-layout/internal/source"
)

const testEvents = `
events:
  - id: "1"
    title: Offsite
    time:
      start: "2022-06-13"
      end: "2022-06-15"
  - id: "2"
    title: Standup
    time:
      start: "2022-06-14 09:00"
      end: "2022-06-14 09:15"
`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// run executes the CLI with an isolated config and returns its stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWithConfig(t, "log:\n  level: error\n", args...)
}

func runWithConfig(t *testing.T, configContent string, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	configFile := writeTestFile(t, dir, "config.yaml", configContent)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", configFile}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestWeekCmd_JSON(t *testing.T) {
	eventsFile := writeTestFile(t, t.TempDir(), "events.yaml", testEvents)

	out, err := run(t, "week", "--events", eventsFile, "--date", "2022-06-15", "--format", "json")
	if err != nil {
		t.Fatalf("week failed: %v\n%s", err, out)
	}

	var days []map[string]any
	if err := json.Unmarshal([]byte(out), &days); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(days) != 7 {
		t.Fatalf("got %d days, want 7", len(days))
	}
	if days[0]["date"] != "2022-06-13" {
		t.Errorf("week should start on Monday 2022-06-13, got %v", days[0]["date"])
	}
	if days[1]["level1"] != "blocked" {
		t.Errorf("day 1 level1 = %v, want blocked", days[1]["level1"])
	}
	if _, ok := days[1]["level2"]; ok {
		t.Errorf("timed events must not take a lane: %v", days[1])
	}
}

func TestWeekCmd_Grid(t *testing.T) {
	eventsFile := writeTestFile(t, t.TempDir(), "events.yaml", testEvents)

	out, err := run(t, "week", "--events", eventsFile, "--date", "2022-06-15")
	if err != nil {
		t.Fatalf("week failed: %v\n%s", err, out)
	}

	for _, want := range []string{"Mon 06-13", "Offsite", "Standup", "09:00-09:15"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWeekCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"No event source", []string{"week"}},
		{"Bad date", []string{"week", "--events", "events.yaml", "--date", "15.06.2022"}},
		{"Unknown format", []string{"week", "--events", "events.ics.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestPercentCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Whole day", []string{"percent", "--at", "2022-06-13 12:00"}, "50.00%"},
		{"Working hours", []string{"percent", "--at", "2022-06-13 10:00", "--day-start", "8", "--day-end", "16"}, "25.00%"},
		{"Before start", []string{"percent", "--at", "2022-06-13 06:00", "--day-start", "8", "--day-end", "16"}, "-25.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("percent failed: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want it to contain %q", out, tt.want)
			}
		})
	}

	if _, err := run(t, "percent", "--at", "noon"); err == nil {
		t.Error("expected an error for a malformed time")
	}
}

func TestPercentCmd_ConfigBoundaries(t *testing.T) {
	const workingHours = `
calendar:
  day_boundaries:
    start: 8
    end: 16
log:
  level: error
`

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Both from config", []string{"percent", "--at", "2022-06-13 10:00"}, "25.00%"},
		{"End overridden", []string{"percent", "--at", "2022-06-13 10:00", "--day-end", "12"}, "50.00%"},
		{"Start overridden", []string{"percent", "--at", "2022-06-13 10:00", "--day-start", "6"}, "40.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runWithConfig(t, workingHours, tt.args...)
			if err != nil {
				t.Fatalf("percent failed: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want it to contain %q", out, tt.want)
			}
		})
	}

	if def := percentCmd().Flags().Lookup("day-end").DefValue; def != "0" {
		t.Errorf("--day-end default = %s, want 0 so the config value applies", def)
	}
}

func TestCheckCmd(t *testing.T) {
	eventsFile := writeTestFile(t, t.TempDir(), "events.yaml", `
events:
  - id: "1"
    time:
      start: "2022-06-13"
      end: "2022-06-12"
`)

	out, err := run(t, "check", "--events", eventsFile)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}

	for _, want := range []string{"'title' is missing", "ends before it starts", "2 warning(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "'title' is missing"); n != 1 {
		t.Errorf("title warning printed %d times, want 1", n)
	}
}

func TestCheckCmd_WarningsNotLogged(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "qalendar.log")
	eventsFile := writeTestFile(t, dir, "events.yaml", `
events:
  - id: "1"
    time:
      start: "2022-06-13"
      end: "2022-06-13"
`)

	out, err := runWithConfig(t, "log:\n  level: debug\n  file: "+logFile+"\n", "check", "--events", eventsFile)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "'title' is missing") {
		t.Fatalf("warning not printed:\n%s", out)
	}

	logged, err := os.ReadFile(logFile)
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("failed to read log: %v", err)
	}
	if strings.Contains(string(logged), "'title' is missing") {
		t.Errorf("warning was logged as well as printed:\n%s", logged)
	}
}

func TestSeedCmd_YearAndMonth(t *testing.T) {
	output := filepath.Join(t.TempDir(), "seeded.yaml")

	_, err := run(t, "seed", "--year", "2022", "--month", "2022-06", "--out", output)
	if !errors.Is(err, seed.ErrConflictingPeriod) {
		t.Errorf("seed error = %v, want ErrConflictingPeriod", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Errorf("nothing should be written, stat error = %v", statErr)
	}
}

func TestSeedCmd(t *testing.T) {
	output := filepath.Join(t.TempDir(), "seeded.ics")

	out, err := run(t, "seed", "--month", "2022-06", "--out", output, "--format", "ics", "--seed", "7")
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	for _, want := range []string{"Seeding was successful!", "June 2022", output} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	events, err := source.NewICSSource(output, zap.NewNop()).Load()
	if err != nil {
		t.Fatalf("seeded file does not load: %v", err)
	}
	if len(events) < 6 {
		t.Errorf("seeded %d events, want at least the 6 full-day ones", len(events))
	}
}
