package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/calendar-layout/internal/seed"
)

func seedCmd() *cobra.Command {
	var (
		months   []string
		year     int
		output   string
		format   string
		seedVal  int64
		fullDay  int
		maxTimed int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate fake calendar events for development",
		RunE: func(cmd *cobra.Command, args []string) error {
			if year != 0 && len(months) > 0 {
				return fmt.Errorf("--year and --month cannot be combined: %w", seed.ErrConflictingPeriod)
			}

			opts := seed.Options{
				Year:            year,
				FullDayPerMonth: fullDay,
				MaxTimedPerDay:  maxTimed,
			}
			for _, m := range months {
				month, err := time.Parse("2006-01", m)
				if err != nil {
					return fmt.Errorf("invalid --month %q, expected YYYY-MM: %w", m, err)
				}
				opts.Months = append(opts.Months, month)
			}

			if output == "" {
				output = cfg.Seed.Output
			}
			if format == "" {
				format = cfg.Seed.Format
			}

			result, err := seed.NewSeeder(seedVal, logger).Generate(opts)
			if err != nil {
				return err
			}

			if err := seed.Write(output, format, result.Events); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			logger.Info("Seeded events written",
				zap.String("output", output),
				zap.String("format", format),
				zap.Int("events", len(result.Events)))

			seed.PrintSummary(cmd.OutOrStdout(), output, opts, result)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&months, "month", nil, "Month to seed, YYYY-MM (repeatable)")
	cmd.Flags().IntVar(&year, "year", 0, "Seed all months of this year")
	cmd.Flags().StringVar(&output, "out", "", "Output file (default from config)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: yaml or ics (default from config)")
	cmd.Flags().Int64Var(&seedVal, "seed", 0, "Random seed, 0 for a time based one")
	cmd.Flags().IntVar(&fullDay, "full-day", 6, "Full-day events per month")
	cmd.Flags().IntVar(&maxTimed, "max-timed", 3, "Maximum timed events per day")

	return cmd
}
