// Package service provides the core results service that implements the
// dependencies required by the HTTP API and the feed poller.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/splitboard/internal/adapters/snapshot"
	"github.com/okian/splitboard/internal/domain/model"
	"github.com/okian/splitboard/internal/feed"
	"github.com/okian/splitboard/pkg/logger"
	"github.com/okian/splitboard/pkg/metrics"
)

// Service holds the current board state: the normalized event model for
// listings plus the raw document that backs detail drill-downs. Both are
// replaced together, wholesale, on every successful ingest.
type Service struct {
	mu sync.RWMutex

	event model.Event
	// doc is the raw source of the current event. Detail lookups re-scan
	// it instead of the summary model; nil until the first ingest or
	// snapshot restore without a fetch.
	doc *feed.Document

	// Injected collaborators
	store  snapshot.Store
	logger logger.Logger

	started bool
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSnapshotStore sets the store that keeps the board across restarts.
// Without one the service runs purely in memory.
func WithSnapshotStore(store snapshot.Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start seeds the board from the persisted snapshot, if any. A failing
// store is a warning: the service starts with an empty board and waits
// for the first fetch cycle.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.store != nil {
		ev, err := s.store.LoadEvent(ctx)
		if err != nil {
			s.logger.Warn(ctx, "snapshot restore failed; starting with an empty board", logger.Error(err))
		} else {
			s.event = ev
			updateBoardGauges(ev)
		}
	}

	s.started = true
	s.logger.Info(ctx, "results service started",
		logger.String("event", s.event.Name),
		logger.Int("classes", len(s.event.Classes)),
	)
	return nil
}

// Stop releases the snapshot store.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn(context.Background(), "snapshot store close failed", logger.Error(err))
		}
	}

	s.started = false
	s.logger.Info(context.Background(), "results service stopped")
}

// Ingest replaces the board with the contents of one raw feed document.
// The whole document is parsed and extracted before anything becomes
// visible: a malformed document returns an error and leaves the previous
// board untouched. Ingesting the same bytes twice yields the same board.
func (s *Service) Ingest(ctx context.Context, raw []byte) error {
	start := time.Now()

	doc, err := feed.Parse(raw)
	if err != nil {
		metrics.RecordIngestError()
		return fmt.Errorf("ingest: %w", err)
	}
	ev := feed.ExtractEvent(doc)

	s.mu.Lock()
	s.event = ev
	s.doc = doc
	s.mu.Unlock()

	// Snapshot failures keep the in-memory board; it just will not
	// survive a restart.
	if s.store != nil {
		if err := s.store.SaveEvent(ctx, ev); err != nil {
			s.logger.Warn(ctx, "snapshot save failed", logger.Error(err))
		}
	}

	metrics.RecordIngest()
	metrics.RecordIngestDuration(float64(time.Since(start).Milliseconds()))
	metrics.UpdateLastIngestUnix(time.Now().Unix())
	updateBoardGauges(ev)

	s.logger.Info(ctx, "board replaced",
		logger.String("event", ev.Name),
		logger.String("timestamp", ev.Timestamp),
		logger.Int("classes", len(ev.Classes)),
	)
	return nil
}

// Event returns the current event model.
func (s *Service) Event(ctx context.Context) model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.event
}

// Classes returns the current classes in document order.
func (s *Service) Classes(ctx context.Context) []model.Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.event.Classes
}

// Class returns one class by its sanitized key.
func (s *Service) Class(ctx context.Context, key string) (model.Class, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.event.Classes {
		if c.Key() == key {
			return c, nil
		}
	}
	return model.Class{}, fmt.Errorf("class %q: %w", key, ErrNotFound)
}

// Detail re-scans the raw document for one competitor and derives their
// splits sheet. First match wins on both the class key and the full name;
// duplicate names within a class are not disambiguated. A concurrent
// ingest may swap the document mid-flight, in which case the result
// reflects either the old or the new document, never a mix.
func (s *Service) Detail(ctx context.Context, classKey, name string) (model.Detail, error) {
	metrics.RecordDetailLookup()

	s.mu.RLock()
	doc := s.doc
	s.mu.RUnlock()

	if doc == nil {
		metrics.RecordDetailNotFound()
		return model.Detail{}, fmt.Errorf("no document ingested: %w", ErrNotFound)
	}

	for _, cr := range doc.ClassResults {
		if model.ClassKey(cr.ClassName) != classKey {
			continue
		}
		for _, pr := range cr.PersonResults {
			if pr.FullName() != name {
				continue
			}
			return feed.ExtractDetail(cr, pr), nil
		}
	}

	metrics.RecordDetailNotFound()
	return model.Detail{}, fmt.Errorf("competitor %q in class %q: %w", name, classKey, ErrNotFound)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	competitors := 0
	for _, c := range s.event.Classes {
		competitors += len(c.Results)
	}

	return map[string]interface{}{
		"started":     s.started,
		"eventName":   s.event.Name,
		"timestamp":   s.event.Timestamp,
		"classes":     len(s.event.Classes),
		"competitors": competitors,
		"persistent":  s.store != nil,
	}
}

func updateBoardGauges(ev model.Event) {
	competitors := 0
	for _, c := range ev.Classes {
		competitors += len(c.Results)
	}
	metrics.UpdateClassesTotal(len(ev.Classes))
	metrics.UpdateCompetitorsTotal(competitors)
}
