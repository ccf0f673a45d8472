package seed

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/username/calendar-layout/internal/event"
	"github.com/username/calendar-layout/pkg/dateutil"
	"github.com/username/calendar-layout/pkg/random"
)

var (
	titles = []string{
		"Sprint planning", "Design review", "Lunch with Anna", "Dentist", "Team retro",
		"Customer call", "Yoga", "Release party", "1:1", "Budget meeting",
		"Interview", "Workshop", "Code freeze", "Board meeting", "Pick up kids",
	}
	fullDayTitles = []string{
		"Vacation", "Conference", "Company offsite", "Hackathon", "Public holiday",
		"Business trip", "Training", "Moving day",
	}
	topics    = []string{"Work", "Private", "Health", "Travel", "Family"}
	locations = []string{"Office", "Home", "Meeting room 3", "Cafe", "Online", ""}
	people    = []string{"Anna", "Ben", "Chloe", "Daniel", "Eva", ""}
	colors    = []string{"blue", "yellow", "green", "red"}
)

// ErrConflictingPeriod is returned when both a year and single months are requested
var ErrConflictingPeriod = errors.New("seed either a year or single months, not both")

// Options controls what the Seeder generates
type Options struct {
	// Months lists the months to seed; any day inside the month identifies it
	Months []time.Time
	// Year seeds all twelve months of the year when non-zero; it excludes Months
	Year int
	// MaxTimedPerDay caps the number of timed events generated per day
	MaxTimedPerDay int
	// FullDayPerMonth is the number of multi-day events generated per month
	FullDayPerMonth int
	// MaxSpanDays caps the length of full-day events
	MaxSpanDays int
}

// Result is what a seeding run produced
type Result struct {
	Events []event.Event
	Months []time.Time // first day of every seeded month, ascending
}

// Seeder generates fake calendar events for development
type Seeder struct {
	rnd    *random.Generator
	now    func() time.Time
	logger *zap.Logger
}

// NewSeeder creates a new Seeder. The same seed yields the same events.
func NewSeeder(seed int64, logger *zap.Logger) *Seeder {
	return &Seeder{
		rnd:    random.New(seed),
		now:    time.Now,
		logger: logger,
	}
}

// ResolveMonths returns the months a run covers: the year if set, else the listed months,
// else the current month. Options with both a year and months are rejected by Generate.
func (s *Seeder) ResolveMonths(opts Options) []time.Time {
	var months []time.Time

	switch {
	case opts.Year != 0:
		for m := time.January; m <= time.December; m++ {
			months = append(months, time.Date(opts.Year, m, 1, 0, 0, 0, 0, time.UTC))
		}
	case len(opts.Months) > 0:
		seen := make(map[string]bool)
		for _, m := range opts.Months {
			first := time.Date(m.Year(), m.Month(), 1, 0, 0, 0, 0, time.UTC)
			key := first.Format("2006-01")
			if seen[key] {
				continue
			}
			seen[key] = true
			months = append(months, first)
		}
	default:
		now := s.now()
		months = append(months, time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC))
	}

	return months
}

// Generate creates events for every month resolved from opts
func (s *Seeder) Generate(opts Options) (*Result, error) {
	if opts.Year != 0 && len(opts.Months) > 0 {
		return nil, ErrConflictingPeriod
	}
	if opts.MaxTimedPerDay <= 0 {
		opts.MaxTimedPerDay = 3
	}
	if opts.FullDayPerMonth < 0 {
		opts.FullDayPerMonth = 0
	}
	if opts.MaxSpanDays <= 0 {
		opts.MaxSpanDays = 4
	}

	result := &Result{Months: s.ResolveMonths(opts)}

	for _, month := range result.Months {
		events, err := s.generateMonth(month, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to seed %s: %w", month.Format("2006-01"), err)
		}
		result.Events = append(result.Events, events...)

		s.logger.Debug("Month seeded",
			zap.String("month", month.Format("2006-01")),
			zap.Int("events", len(events)))
	}

	s.logger.Info("Seeding completed",
		zap.Int("months", len(result.Months)),
		zap.Int("events", len(result.Events)))

	return result, nil
}

func (s *Seeder) generateMonth(month time.Time, opts Options) ([]event.Event, error) {
	var events []event.Event
	daysInMonth := month.AddDate(0, 1, -1).Day()

	// full-day events start on distinct days
	for _, offset := range s.rnd.SelectRandomItems(daysInMonth, opts.FullDayPerMonth) {
		start := month.AddDate(0, 0, offset)
		end := start.AddDate(0, 0, s.rnd.IntBetween(0, opts.MaxSpanDays-1))

		e, err := s.newEvent(s.rnd.Pick(fullDayTitles), dateutil.FormatDate(start), dateutil.FormatDate(end))
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	for day := 0; day < daysInMonth; day++ {
		date := month.AddDate(0, 0, day)
		count := s.rnd.IntBetween(0, opts.MaxTimedPerDay)

		for i := 0; i < count; i++ {
			// start on a quarter hour between 07:00 and 19:45, last 30 minutes to 3 hours
			startMinutes := s.rnd.IntBetween(7*4, 19*4+3) * 15
			duration := s.rnd.IntBetween(2, 12) * 15
			start := date.Add(time.Duration(startMinutes) * time.Minute)
			end := start.Add(time.Duration(duration) * time.Minute)

			e, err := s.newEvent(s.rnd.Pick(titles), dateutil.FormatDateTime(start), dateutil.FormatDateTime(end))
			if err != nil {
				return nil, err
			}
			events = append(events, e)
		}
	}

	return events, nil
}

func (s *Seeder) newEvent(title, start, end string) (event.Event, error) {
	id, err := uuid.NewRandomFromReader(s.rnd)
	if err != nil {
		return event.Event{}, fmt.Errorf("failed to generate event id: %w", err)
	}

	return event.Event{
		ID:          id.String(),
		Title:       title,
		Time:        event.TimeRange{Start: start, End: end},
		Topic:       s.rnd.Pick(topics),
		Location:    s.rnd.Pick(locations),
		With:        s.rnd.Pick(people),
		Color:       s.rnd.Pick(colors),
		Description: fmt.Sprintf("Seeded %s event", title),
		IsEditable:  s.rnd.Chance(50),
	}, nil
}
