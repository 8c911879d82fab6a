package composite

import (
	"context"
	"errors"
	"testing"

	"mykabu/internal/domain/model"
)

type captureSink struct {
	entries []model.JournalEntry
	err     error
}

func (c *captureSink) Append(ctx context.Context, e model.JournalEntry) error {
	c.entries = append(c.entries, e)
	return c.err
}

func TestJournalFansOut(t *testing.T) {
	a := &captureSink{}
	b := &captureSink{}
	j := New(a, nil, b)

	entry := model.NewJournalEntry("insert", "buy_lots", map[string]any{"ticker_id": int64(1)})
	if err := j.Append(context.Background(), entry); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if len(a.entries) != 1 || len(b.entries) != 1 {
		t.Errorf("expected one entry per sink, got %d and %d", len(a.entries), len(b.entries))
	}
	if a.entries[0].Op != entry.Op {
		t.Errorf("correlation id not preserved: %s vs %s", a.entries[0].Op, entry.Op)
	}
}

func TestJournalReportsFirstErrorButTriesAll(t *testing.T) {
	boom := errors.New("boom")
	a := &captureSink{err: boom}
	b := &captureSink{}
	j := New(a, b)

	err := j.Append(context.Background(), model.NewJournalEntry("insert", "buy_lots", nil))
	if !errors.Is(err, boom) {
		t.Fatalf("expected first error, got %v", err)
	}
	if len(b.entries) != 1 {
		t.Errorf("expected later sink to still receive the entry, got %d", len(b.entries))
	}
}
