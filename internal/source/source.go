package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/username/calendar-layout/internal/event"
)

// ErrUnsupportedFormat is returned for event files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported event file format")

// Source loads calendar events from somewhere
type Source interface {
	// Load returns all events known to the source
	Load() ([]event.Event, error)

	// Name identifies the source in logs
	Name() string
}

// Open picks a Source implementation by file extension
func Open(path string, logger *zap.Logger) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return NewFileSource(path, logger), nil
	case ".ics", ".ical":
		return NewICSSource(path, logger), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
