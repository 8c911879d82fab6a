package composite

import (
	"context"

	"mykabu/internal/application/port"
	"mykabu/internal/domain/model"
)

// Journal fans one entry out to several sinks. Every sink is attempted;
// the first error wins.
type Journal struct {
	sinks []port.JournalSink
}

func New(sinks ...port.JournalSink) *Journal {
	// nil sinks are allowed; filter in constructor for safety
	out := make([]port.JournalSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return &Journal{sinks: out}
}

func (j *Journal) Append(ctx context.Context, entry model.JournalEntry) error {
	var firstErr error
	for _, s := range j.sinks {
		if err := s.Append(ctx, entry); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

var _ port.JournalSink = (*Journal)(nil)
