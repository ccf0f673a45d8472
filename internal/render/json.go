package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/username/calendar-layout/internal/position"
)

// WriteJSON writes the week as an indented JSON array of day objects
func WriteJSON(w io.Writer, days []position.Day) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(days); err != nil {
		return fmt.Errorf("failed to encode week: %w", err)
	}
	return nil
}
