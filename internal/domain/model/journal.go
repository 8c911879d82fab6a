package model

import (
	"encoding/json"

	"github.com/google/uuid"
)

// JournalEntry describes one mutation for the audit trail. The entry is
// written in the same transaction as the mutation it describes, so the two
// cannot diverge. Op is a correlation id so mirrored copies of the journal
// can be matched against the embedded one.
type JournalEntry struct {
	Op     string         `json:"op"`
	Action string         `json:"action"`
	Table  string         `json:"table"`
	Data   map[string]any `json:"data"`
}

// NewJournalEntry assigns a fresh correlation id.
func NewJournalEntry(action, table string, data map[string]any) JournalEntry {
	return JournalEntry{
		Op:     uuid.NewString(),
		Action: action,
		Table:  table,
		Data:   data,
	}
}

// Encode serializes the entry for the journal's TEXT column.
func (e JournalEntry) Encode() (string, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
