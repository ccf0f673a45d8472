package seed

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var successBadge = lipgloss.NewStyle().
	Background(lipgloss.Color("2")).
	Foreground(lipgloss.Color("0")).
	Padding(0, 1)

// MonthLabel formats a seeded month for CLI output, e.g. "June 2022"
func MonthLabel(month time.Time) string {
	return month.Format("January 2006")
}

// PrintSummary writes the human-readable result of a seeding run
func PrintSummary(w io.Writer, outputPath string, opts Options, result *Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, successBadge.Render("Seeding was successful!"))
	fmt.Fprintf(w, "Wrote %d calendar events to %s\n", len(result.Events), outputPath)
	fmt.Fprintln(w)

	switch {
	case opts.Year != 0:
		fmt.Fprintf(w, "Seeded all months of %d\n", opts.Year)
	case len(opts.Months) > 0:
		fmt.Fprintln(w, "Seeded the following months:")
		for _, month := range result.Months {
			fmt.Fprintf(w, "- %s\n", MonthLabel(month))
		}
	default:
		fmt.Fprintln(w, "Seeded the current month")
	}
	fmt.Fprintln(w)
}
