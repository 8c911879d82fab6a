package port

import (
	"context"

	"mykabu/internal/domain/model"
)

// LedgerStore is the persistence contract for the ledger: ticker reference
// data, append-only buy lots, and the joined holdings view.
type LedgerStore interface {
	// UpsertTicker inserts or replaces a ticker. With an explicit ID the
	// replace is keyed on the ID; without one it is keyed on the unique
	// symbol and the engine assigns the ID.
	UpsertTicker(ctx context.Context, t model.TickerUpsert) error

	// ListTickers returns all tickers ordered by ID.
	ListTickers(ctx context.Context) ([]model.Ticker, error)

	// TickerIDsBySymbol returns the IDs of tickers whose symbol matches
	// exactly. The symbol column is unique, so more than one result means
	// the store is corrupt.
	TickerIDsBySymbol(ctx context.Context, symbol string) ([]int64, error)

	// InsertBuyLot appends one purchase row and its journal entry in a
	// single transaction.
	InsertBuyLot(ctx context.Context, lot model.BuyLot) error

	// ListHoldings returns every buy lot joined with its ticker, ordered
	// by purchase timestamp ascending.
	ListHoldings(ctx context.Context) ([]model.Holding, error)
}
