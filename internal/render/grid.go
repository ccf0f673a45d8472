package render

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/username/calendar-layout/internal/position"
)

// DefaultColumnWidth is the width of one day column in the week grid
const DefaultColumnWidth = 16

// ContinuationMark is shown in a lane held by an event that started on an earlier day
const ContinuationMark = "…"

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, true, false)

	cellStyle = lipgloss.NewStyle().PaddingRight(1)

	continuationStyle = lipgloss.NewStyle().Faint(true)

	emptyStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)

// eventColors maps the color names carried by events to ANSI colors
var eventColors = map[string]lipgloss.Color{
	"blue":   lipgloss.Color("4"),
	"yellow": lipgloss.Color("3"),
	"green":  lipgloss.Color("2"),
	"red":    lipgloss.Color("1"),
}

// Grid renders a week of lanes as a table: one column per day, one row per level.
// Occupied lanes show the event title, blocked lanes show ContinuationMark.
func Grid(days []position.Day, columnWidth int) string {
	if columnWidth < 4 {
		columnWidth = DefaultColumnWidth
	}

	levels := 0
	for _, d := range days {
		if len(d.Lanes) > levels {
			levels = len(d.Lanes)
		}
	}

	header := make([]string, len(days))
	for i, d := range days {
		header[i] = cell(d.Date.Format("Mon 01-02"), columnWidth, headerStyle)
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	for n := 1; n <= levels; n++ {
		cells := make([]string, len(days))
		for i, d := range days {
			cells[i] = laneCell(d.Level(n), columnWidth)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	if levels == 0 {
		rows = append(rows, emptyStyle.Render("no full-day events this week"))
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func laneCell(lane position.Lane, width int) string {
	switch lane.Kind {
	case position.LaneOccupied:
		style := cellStyle.Copy()
		if c, ok := eventColors[lane.Event.Color]; ok {
			style = style.Foreground(c)
		}
		return cell(lane.Event.Title, width, style)
	case position.LaneBlocked:
		return cell(ContinuationMark, width, continuationStyle)
	default:
		return cell("", width, cellStyle)
	}
}

func cell(text string, width int, style lipgloss.Style) string {
	return style.Copy().Width(width).Render(truncate(text, width-1))
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	if n <= 1 {
		return ContinuationMark
	}
	r := []rune(s)
	return string(r[:n-1]) + ContinuationMark
}
