package source

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/username/calendar-layout/internal/event"
)

// FileSource implements Source using a local YAML (or JSON) file.
//
// Both a bare list of events and a document with a top-level "events" key are accepted.
type FileSource struct {
	filePath string
	logger   *zap.Logger
}

// eventsDocument is the keyed form of an events file
type eventsDocument struct {
	Events []event.Event `yaml:"events"`
}

// NewFileSource creates a new FileSource instance
func NewFileSource(filePath string, logger *zap.Logger) *FileSource {
	return &FileSource{
		filePath: filePath,
		logger:   logger,
	}
}

// Name returns the file path
func (fs *FileSource) Name() string {
	return fs.filePath
}

// Load reads events from the file
func (fs *FileSource) Load() ([]event.Event, error) {
	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read events file: %w", err)
	}

	events, err := decodeEvents(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse events file %s: %w", fs.filePath, err)
	}

	fs.logger.Info("Events file loaded",
		zap.String("file", fs.filePath),
		zap.Int("events", len(events)))

	return events, nil
}

func decodeEvents(data []byte) ([]event.Event, error) {
	var list []event.Event
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var doc eventsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Events, nil
}
