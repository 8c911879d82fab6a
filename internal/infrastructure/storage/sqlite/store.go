package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "modernc.org/sqlite"

	"mykabu/internal/application/port"
	"mykabu/internal/domain/model"
	"mykabu/internal/infrastructure/storage"
)

const driverName = "sqlite"

// Store owns the one connection to the embedded database. Every mutation
// goes through runMutation, which pairs the write with its journal entry in
// a single transaction; reads go through runQuery and never write.
type Store struct {
	db     *sql.DB
	sink   port.ErrorSink
	mirror port.JournalSink
}

type nopSink struct{}

func (nopSink) ReportError(string, error) {}

// Open acquires the process-wide connection. It fails with
// storage.ErrStoreUnavailable when no sqlite driver is compiled in and with
// storage.ErrOpen when the engine refuses the file. sink receives every
// engine failure; pass nil to discard them.
func Open(path string, sink port.ErrorSink) (*Store, error) {
	if !slices.Contains(sql.Drivers(), driverName) {
		return nil, storage.ErrStoreUnavailable
	}
	if sink == nil {
		sink = nopSink{}
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, storage.ErrOpen)
	}
	// one connection: the engine serializes writes, the store adds no locking
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%v: %w", err, storage.ErrOpen)
	}
	return &Store{db: db, sink: sink}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying handle for tooling and tests.
func (s *Store) DB() *sql.DB { return s.db }

// SetJournalMirror attaches a sink that receives a copy of each journal
// entry after its transaction commits. Mirroring is best-effort: a mirror
// failure is reported but never rolls back the committed mutation.
func (s *Store) SetJournalMirror(m port.JournalSink) { s.mirror = m }

// runMutation executes one statement inside its own transaction. When an
// audit entry is given, the journal row is written in the same transaction,
// so mutation and audit record commit or roll back together.
func (s *Store) runMutation(ctx context.Context, command string, args []any, audit *model.JournalEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.fail(command, err)
	}
	if _, err := tx.ExecContext(ctx, command, args...); err != nil {
		_ = tx.Rollback()
		return s.fail(command, err)
	}
	if audit != nil {
		if err := appendJournal(ctx, tx, *audit); err != nil {
			_ = tx.Rollback()
			return s.fail(command, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return s.fail(command, err)
	}

	if audit != nil && s.mirror != nil {
		if err := s.mirror.Append(ctx, *audit); err != nil {
			s.sink.ReportError("journal mirror", err)
		}
	}
	return nil
}

// runQuery executes a read-only statement and hands the rows to scan.
// Reads never write and never journal.
func (s *Store) runQuery(ctx context.Context, command string, args []any, scan func(*sql.Rows) error) error {
	rows, err := s.db.QueryContext(ctx, command, args...)
	if err != nil {
		return s.fail(command, err)
	}
	defer rows.Close()

	if err := scan(rows); err != nil {
		return s.fail(command, err)
	}
	if err := rows.Err(); err != nil {
		return s.fail(command, err)
	}
	return nil
}

// fail classifies an engine error, reports the {command, error} pair to the
// sink, and returns the classified error. Nothing is retried.
func (s *Store) fail(command string, err error) error {
	err = classify(err)
	s.sink.ReportError(command, err)
	return err
}

func classify(err error) error {
	if strings.Contains(strings.ToLower(err.Error()), "constraint") {
		return fmt.Errorf("%v: %w", err, storage.ErrConstraintViolation)
	}
	return fmt.Errorf("%v: %w", err, storage.ErrEngine)
}

var _ port.LedgerStore = (*Store)(nil)
