package storage

import "errors"

// ErrStoreUnavailable means no embedded SQL engine is compiled in. Fatal.
var ErrStoreUnavailable = errors.New("embedded sql store unavailable")

// ErrOpen means the engine refused to open the database. Fatal.
var ErrOpen = errors.New("store open failed")

// ErrConstraintViolation is a unique-key or type violation on write. The
// engine rolls the transaction back; nothing partially applies.
var ErrConstraintViolation = errors.New("constraint violation")

// ErrUnknownTicker means a purchase named a symbol with no ticker row. No
// write is attempted.
var ErrUnknownTicker = errors.New("unknown ticker")

// ErrInvariantViolation means a unique lookup matched more than one row,
// which indicates a corrupt store. Surfaced loudly, never handled silently.
var ErrInvariantViolation = errors.New("invariant violation")

// ErrEngine wraps any other engine-reported failure.
var ErrEngine = errors.New("engine error")
