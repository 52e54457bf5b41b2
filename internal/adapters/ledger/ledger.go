// Package ledger records answered mentions in a badger database.
package ledger

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/degrees/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	keyPrefix = "answered/"
	dirPerm   = 0o750
	// Retention bounds how long an answered mention is remembered.
	Retention = 30 * 24 * time.Hour
)

// Ledger implements ports.Ledger.
type Ledger struct {
	db  *badger.DB
	now func() time.Time
}

// Options configures Open.
type Options struct {
	// Dir is the database directory. Ignored when InMemory is set.
	Dir      string
	InMemory bool
	Logger   ports.Logger
}

// Open opens or creates the ledger.
func Open(opts Options) (*Ledger, error) {
	var bopts badger.Options
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if opts.Dir == "" {
			return nil, zerr.With(domain.ErrLedgerOpenFailed, "dir", opts.Dir)
		}
		if err := os.MkdirAll(opts.Dir, dirPerm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrLedgerOpenFailed.Error()), "dir", opts.Dir)
		}
		bopts = badger.DefaultOptions(opts.Dir).WithSyncWrites(true)
	}

	if opts.Logger != nil {
		bopts = bopts.WithLogger(&badgerLogger{logger: opts.Logger})
	} else {
		bopts = bopts.WithLogger(nil)
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLedgerOpenFailed.Error()), "dir", opts.Dir)
	}
	return &Ledger{db: db, now: time.Now}, nil
}

// Answered reports whether eventID was recorded.
func (l *Ledger) Answered(eventID string) (bool, error) {
	err := l.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key(eventID))
		return err
	})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return false, nil
	default:
		return false, zerr.With(zerr.Wrap(err, domain.ErrLedgerReadFailed.Error()), "event", eventID)
	}
}

// MarkAnswered records eventID. Recording twice is not an error.
func (l *Ledger) MarkAnswered(eventID string) error {
	err := l.db.Update(func(txn *badger.Txn) error {
		value := []byte(strconv.FormatInt(l.now().Unix(), 10))
		return txn.SetEntry(badger.NewEntry(key(eventID), value).WithTTL(Retention))
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLedgerWriteFailed.Error()), "event", eventID)
	}
	return nil
}

// Count returns the number of recorded mentions.
func (l *Ledger) Count() (int, error) {
	n := 0
	err := l.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, zerr.Wrap(err, domain.ErrLedgerReadFailed.Error())
	}
	return n, nil
}

// Close flushes and closes the database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func key(eventID string) []byte {
	return []byte(keyPrefix + eventID)
}

// badgerLogger forwards badger warnings and errors to a ports.Logger.
type badgerLogger struct {
	logger ports.Logger
}

func (b *badgerLogger) Errorf(format string, args ...any) {
	b.logger.Error(fmt.Errorf("badger: "+format, args...))
}

func (b *badgerLogger) Warningf(format string, args ...any) {
	b.logger.Warn(fmt.Sprintf("badger: "+format, args...))
}

func (b *badgerLogger) Infof(string, ...any) {}

func (b *badgerLogger) Debugf(string, ...any) {}

// Opener implements ports.LedgerOpener.
type Opener struct {
	Logger ports.Logger
}

// Open opens the on-disk ledger in dir.
func (o Opener) Open(dir string) (ports.Ledger, error) {
	return Open(Options{Dir: dir, Logger: o.Logger})
}
