package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/okian/splitboard/internal/domain/model"
	"github.com/okian/splitboard/pkg/metrics"
)

// Fixed snapshot keys. There is no schema version field: a format change
// on either side silently yields an incompatible read. Known limitation.
var (
	keyEventName = []byte("results/name")
	keyTimestamp = []byte("results/timestamp")
	keyClasses   = []byte("results/classes")
)

// BadgerStore implements Store on a badger key-value database. Values are
// msgpack-encoded.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens (or creates) the store with the given options.
func NewBadgerStore(opts ...Option) (*BadgerStore, error) {
	cfg := settings{path: "snapshot.db"}
	for _, opt := range opts {
		opt(&cfg)
	}

	bopts := badger.DefaultOptions(cfg.path).WithLogger(nil)
	if cfg.inMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}
	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// SaveEvent writes the three top-level fields under their fixed keys in a
// single transaction.
func (s *BadgerStore) SaveEvent(_ context.Context, ev model.Event) error {
	classes, err := msgpack.Marshal(ev.Classes)
	if err != nil {
		metrics.RecordSnapshotError()
		return fmt.Errorf("encode classes: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(keyEventName, []byte(ev.Name)); err != nil {
			return err
		}
		if err := txn.Set(keyTimestamp, []byte(ev.Timestamp)); err != nil {
			return err
		}
		return txn.Set(keyClasses, classes)
	})
	if err != nil {
		metrics.RecordSnapshotError()
		return fmt.Errorf("save snapshot: %w", err)
	}
	metrics.RecordSnapshotSave()
	return nil
}

// LoadEvent reads the snapshot back. Missing keys are treated as an empty
// store, so first startup yields the zero event.
func (s *BadgerStore) LoadEvent(_ context.Context) (model.Event, error) {
	var ev model.Event
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		if ev.Name, err = getString(txn, keyEventName); err != nil {
			return err
		}
		if ev.Timestamp, err = getString(txn, keyTimestamp); err != nil {
			return err
		}
		item, err := txn.Get(keyClasses)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return msgpack.Unmarshal(val, &ev.Classes)
		})
	})
	if err != nil {
		metrics.RecordSnapshotError()
		return model.Event{}, fmt.Errorf("load snapshot: %w", err)
	}
	metrics.RecordSnapshotLoad()
	return ev, nil
}

// Close shuts the underlying database down.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func getString(txn *badger.Txn, key []byte) (string, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return "", err
	}
	return string(val), nil
}
