package source

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/username/calendar-layout/internal/event"
)

// CompositeSource merges events from several sources in order.
// A failing source is logged and skipped; Load fails only when every source fails.
type CompositeSource struct {
	sources []Source
	logger  *zap.Logger
}

// NewCompositeSource creates a new CompositeSource
func NewCompositeSource(logger *zap.Logger, sources ...Source) *CompositeSource {
	return &CompositeSource{
		sources: sources,
		logger:  logger,
	}
}

// Name joins the names of the wrapped sources
func (cs *CompositeSource) Name() string {
	names := make([]string, len(cs.sources))
	for i, s := range cs.sources {
		names[i] = s.Name()
	}
	return strings.Join(names, "+")
}

// Load returns the concatenated events of all sources that loaded successfully
func (cs *CompositeSource) Load() ([]event.Event, error) {
	if len(cs.sources) == 0 {
		return nil, errors.New("no event sources configured")
	}

	var all []event.Event
	var errs []error

	for _, s := range cs.sources {
		events, err := s.Load()
		if err != nil {
			cs.logger.Warn("Event source failed, continuing with the others",
				zap.String("source", s.Name()),
				zap.Error(err))
			errs = append(errs, err)
			continue
		}
		all = append(all, events...)
	}

	if len(errs) == len(cs.sources) {
		return nil, fmt.Errorf("all event sources failed: %w", errors.Join(errs...))
	}

	return all, nil
}
