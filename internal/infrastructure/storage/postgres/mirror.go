package postgres

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"

	"mykabu/internal/application/port"
	"mykabu/internal/domain/model"
)

// JournalMirror replicates journal entries to a postgres database for
// off-box audit retention. Ledger state itself never leaves the embedded
// store; the mirror only ever receives already-committed entries.
type JournalMirror struct {
	db *sql.DB
}

func New(dsn string) (*JournalMirror, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(2)

	m := &JournalMirror{db: db}
	if err := m.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return m, nil
}

func (m *JournalMirror) Close() error { return m.db.Close() }

func (m *JournalMirror) migrate(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS journal (
  id BIGSERIAL PRIMARY KEY,
  ts TIMESTAMPTZ NOT NULL DEFAULT now(),
  op TEXT NOT NULL,
  entry TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_journal_op ON journal(op);
`)
	return err
}

func (m *JournalMirror) Append(ctx context.Context, entry model.JournalEntry) error {
	payload, err := entry.Encode()
	if err != nil {
		return err
	}
	_, err = m.db.ExecContext(ctx,
		`INSERT INTO journal(op, entry) VALUES($1, $2)`, entry.Op, payload)
	return err
}

var _ port.JournalSink = (*JournalMirror)(nil)
