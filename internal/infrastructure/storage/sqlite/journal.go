package sqlite

import (
	"context"
	"database/sql"

	"mykabu/internal/domain/model"
)

// appendJournal writes one audit row inside the caller's open transaction.
// It never opens its own, so a mutation and its journal entry cannot
// diverge. The timestamp is generated by the store at write time.
func appendJournal(ctx context.Context, tx *sql.Tx, entry model.JournalEntry) error {
	payload, err := entry.Encode()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO journal(timestamp, entry) VALUES(DATETIME('NOW'), ?)`, payload)
	return err
}
