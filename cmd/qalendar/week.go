package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/calendar-layout/internal/event"
	"github.com/username/calendar-layout/internal/position"
	"github.com/username/calendar-layout/internal/render"
	"github.com/username/calendar-layout/internal/warnings"
	"github.com/username/calendar-layout/pkg/dateutil"
)

func weekCmd() *cobra.Command {
	var (
		eventsFile string
		icsFile    string
		date       string
		format     string
		width      int
	)

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Lay out the week containing a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			day := dateutil.Today()
			if date != "" {
				parsed, err := dateutil.ParseDate(date)
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
				day = parsed
			}

			events, err := loadEvents(eventsFile, icsFile)
			if err != nil {
				return fmt.Errorf("failed to load events: %w", err)
			}

			start, end := dateutil.WeekWindow(day, cfg.Calendar.GetWeekStart())
			fullDay, timed := event.Partition(events)
			week := position.PositionFullDayEventsInWeek(start, end, fullDay)

			logger.Debug("Week laid out",
				zap.String("window_start", dateutil.FormatDate(start)),
				zap.Int("full_day_events", len(fullDay)),
				zap.Int("timed_events", len(timed)))

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				return render.WriteJSON(out, week)
			case "grid":
				dayStart, dayEnd := cfg.Calendar.GetDayBoundaryUnits()
				fmt.Fprintln(out, render.Grid(week, width))
				fmt.Fprintln(out)
				fmt.Fprintln(out, render.TimedList(render.PositionTimed(timed, start, end, dayStart, dayEnd)))
				return nil
			default:
				return fmt.Errorf("unknown format %q: use grid or json", format)
			}
		},
	}

	cmd.Flags().StringVar(&eventsFile, "events", "", "Events file (.yaml, .yml, .json or .ics)")
	cmd.Flags().StringVar(&icsFile, "ics", "", "Additional iCalendar file")
	cmd.Flags().StringVar(&date, "date", "", "Any day of the week to show, YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&format, "format", "grid", "Output format: grid or json")
	cmd.Flags().IntVar(&width, "width", render.DefaultColumnWidth, "Width of a day column in the grid")

	return cmd
}

func percentCmd() *cobra.Command {
	var (
		at       string
		dayStart int
		dayEnd   int
	)

	cmd := &cobra.Command{
		Use:   "percent",
		Short: "Show how far into the visible day a time lies",
		RunE: func(cmd *cobra.Command, args []string) error {
			startUnits, endUnits := cfg.Calendar.GetDayBoundaryUnits()
			if cmd.Flags().Changed("day-start") {
				startUnits = position.HoursToDayUnits(dayStart)
			}
			if cmd.Flags().Changed("day-end") {
				endUnits = position.HoursToDayUnits(dayEnd)
			}

			p, err := position.PercentageOfDayStrict(at, startUnits, endUnits)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is at %.2f%% of the day (clamped %.2f%%)\n", at, p, position.Clamp(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Date and time, YYYY-MM-DD hh:mm")
	cmd.Flags().IntVar(&dayStart, "day-start", 0, "First visible hour (default from config)")
	cmd.Flags().IntVar(&dayEnd, "day-end", 0, "End of the visible day in hours (default from config)")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func checkCmd() *cobra.Command {
	var (
		eventsFile string
		icsFile    string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report problems with events and calendar settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := loadEvents(eventsFile, icsFile)
			if err != nil {
				return fmt.Errorf("failed to load events: %w", err)
			}

			// warnings are printed below, logging them too would show each one twice
			checker := warnings.NewChecker(zap.NewNop())
			out := cmd.OutOrStdout()

			msgs := checker.CheckConfig(cfg.Calendar)
			msgs = append(msgs, checker.CheckEvents(events)...)

			for _, msg := range msgs {
				fmt.Fprintf(out, "%s %s\n", warnings.Prefix, msg)
			}
			if len(msgs) == 0 {
				fmt.Fprintf(out, "Checked %d events, no problems found\n", len(events))
				return nil
			}
			fmt.Fprintf(out, "Checked %d events, %d warning(s)\n", len(events), len(msgs))
			return nil
		},
	}

	cmd.Flags().StringVar(&eventsFile, "events", "", "Events file (.yaml, .yml, .json or .ics)")
	cmd.Flags().StringVar(&icsFile, "ics", "", "Additional iCalendar file")

	return cmd
}
