package port

import (
	"context"

	"mykabu/internal/domain/model"
)

// JournalSink receives copies of journal entries after the embedded store
// has committed them. Mirrors are best-effort replicas; the authoritative
// journal lives in the embedded store, inside the mutation's transaction.
type JournalSink interface {
	Append(ctx context.Context, entry model.JournalEntry) error
}
