// Package snapshot persists the last ingested event model so the board
// survives a restart between feed polls.
package snapshot

import (
	"context"

	"github.com/okian/splitboard/internal/domain/model"
)

// Store saves and restores the event model. Implementations keep exactly
// one snapshot; every save overwrites the previous one.
type Store interface {
	// SaveEvent persists the three top-level fields of the model.
	SaveEvent(ctx context.Context, ev model.Event) error

	// LoadEvent restores the last saved model. An empty store yields the
	// zero event, not an error.
	LoadEvent(ctx context.Context) (model.Event, error)

	// Close releases the underlying storage.
	Close() error
}
