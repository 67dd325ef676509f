// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wishrank/internal/logging"
	"github.com/tomtom215/wishrank/internal/metrics"
)

// Key layout. Item and wishlist keys are the prefix followed by the id.
const (
	prefixItem     = "item:"
	prefixWishlist = "wishlist:"
	keyOrder       = "meta:catalog_order"
)

var (
	// ErrNotFound is returned when an item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("store is closed")
)

// Config configures the Badger database.
type Config struct {
	// Path is the data directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps all data in memory. Used by tests and demos.
	InMemory bool

	// SyncWrites fsyncs every commit.
	SyncWrites bool

	// ValueLogFileSize bounds each value log file. Zero keeps Badger's
	// default.
	ValueLogFileSize int64

	// GCRatio is the discard ratio passed to value log GC.
	// Default: 0.5.
	GCRatio float64
}

// Store persists the catalog and every user's wishlist in Badger.
// It is safe for concurrent use.
type Store struct {
	db      *badger.DB
	gcRatio float64
	logger  zerolog.Logger

	mu     sync.RWMutex
	closed bool
}

// Open opens (or creates) the database described by cfg.
//
//nolint:gocritic // Config is read once
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("store path is required unless in_memory is set")
	}

	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.SyncWrites = cfg.SyncWrites
	if cfg.ValueLogFileSize > 0 {
		opts.ValueLogFileSize = cfg.ValueLogFileSize
	}
	opts.Logger = nil // Suppress BadgerDB internal logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}

	ratio := cfg.GCRatio
	if ratio <= 0 || ratio >= 1 {
		ratio = 0.5
	}

	logger := logging.With().Str("component", "store").Logger()
	logger.Info().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Bool("sync_writes", cfg.SyncWrites).
		Msg("store opened")

	return &Store{db: db, gcRatio: ratio, logger: logger}, nil
}

// Close closes the database. Further calls return ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close badger db: %w", err)
	}
	return nil
}

// RunGC rewrites value log files until Badger reports nothing left to
// reclaim. In-memory stores have no value log and return nil.
func (s *Store) RunGC() error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.mu.RUnlock()

	runs := 0
	for {
		err := s.db.RunValueLogGC(s.gcRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			break
		}
		if errors.Is(err, badger.ErrRejected) {
			// Another GC is already running.
			break
		}
		if err != nil {
			metrics.RecordStoreGC("error")
			return fmt.Errorf("run value log gc: %w", err)
		}
		runs++
	}

	if runs > 0 {
		metrics.RecordStoreGC("rewritten")
		s.logger.Debug().Int("rewrites", runs).Msg("value log gc reclaimed space")
	} else {
		metrics.RecordStoreGC("noop")
	}
	return nil
}

// Stats holds entity counts.
type Stats struct {
	Items int `json:"items"`
	Users int `json:"users"`
}

// Stats counts items and users with a wishlist and refreshes the store
// gauges.
func (s *Store) Stats(ctx context.Context) (stats Stats, err error) {
	defer s.observe("stats", time.Now(), &err)
	if err := s.begin(ctx); err != nil {
		return Stats{}, err
	}
	defer s.mu.RUnlock()

	err = s.db.View(func(txn *badger.Txn) error {
		var err error
		if stats.Items, err = countPrefix(txn, prefixItem); err != nil {
			return err
		}
		stats.Users, err = countPrefix(txn, prefixWishlist)
		return err
	})
	if err != nil {
		return Stats{}, fmt.Errorf("count entities: %w", err)
	}

	metrics.UpdateStoreGauges(stats.Items, stats.Users)
	return stats, nil
}

// maxConflictRetries bounds how often update retries a transaction that
// lost a write conflict.
const maxConflictRetries = 16

// update runs fn in a read-write transaction, retrying on ErrConflict.
func (s *Store) update(fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		if err = s.db.Update(fn); !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}

// acquire takes the read lock unless the store is closed. On success the
// caller must RUnlock.
func (s *Store) acquire() error {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return ErrClosed
	}
	return nil
}

// begin is acquire preceded by a context check.
func (s *Store) begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.acquire()
}

// observe records an operation's latency and outcome. ErrNotFound is a
// normal lookup result and not counted as a failure.
func (s *Store) observe(op string, start time.Time, errp *error) {
	err := *errp
	if errors.Is(err, ErrNotFound) {
		err = nil
	}
	metrics.RecordStoreOperation(op, time.Since(start), err)
}

// getJSON decodes the value at key into v. It returns ErrNotFound for a
// missing key.
func getJSON(txn *badger.Txn, key string, v interface{}) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

func setJSON(txn *badger.Txn, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return txn.Set([]byte(key), data)
}

// scanPrefix calls fn with the id suffix and raw value of every key under
// prefix, in key order.
func scanPrefix(txn *badger.Txn, prefix string, fn func(id string, val []byte) error) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)

	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Rewind(); it.Valid(); it.Next() {
		item := it.Item()
		id := string(item.Key()[len(prefix):])
		if err := item.Value(func(val []byte) error { return fn(id, val) }); err != nil {
			return err
		}
	}
	return nil
}

func countPrefix(txn *badger.Txn, prefix string) (int, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	opts.PrefetchValues = false

	it := txn.NewIterator(opts)
	defer it.Close()

	n := 0
	for it.Rewind(); it.Valid(); it.Next() {
		n++
	}
	return n, nil
}
