package sqlite

import (
	"context"
	"fmt"

	"mykabu/internal/domain/model"
)

// TableDef is one logical table: its name and the column list of its
// CREATE TABLE statement. The column text is a published contract; other
// tooling reads these files, so it must not drift.
type TableDef struct {
	Name    string
	Columns string
}

var (
	journalTable = TableDef{
		Name:    "journal",
		Columns: `id INTEGER PRIMARY KEY AUTOINCREMENT, timestamp DATETIME, entry TEXT`,
	}
	tickersTable = TableDef{
		Name:    "tickers",
		Columns: `id INTEGER PRIMARY KEY, ticker TEXT UNIQUE, name TEXT`,
	}
	buyLotsTable = TableDef{
		Name: "buy_lots",
		Columns: `id INTEGER PRIMARY KEY AUTOINCREMENT, ticker_id INTEGER, ` +
			`timestamp DATETIME, shares DECIMAL, price_per_share DECIMAL, notes TEXT, broker TEXT`,
	}
)

// seedTickers are inserted with explicit ids on every setup run. If the ids
// were left to the engine, reseeding a fresh store could renumber them and
// silently break buy_lots.ticker_id references.
var seedTickers = []model.Ticker{
	{ID: 1, Symbol: "GOOG", Name: "Alphabet"},
	{ID: 2, Symbol: "HP", Name: "Hewlett-Packard"},
}

// EnsureTable creates def if it is absent. dropFirst destroys the existing
// table before creating; it is for development resets only.
func (s *Store) EnsureTable(ctx context.Context, def TableDef, dropFirst bool) error {
	if dropFirst {
		drop := fmt.Sprintf(`DROP TABLE IF EXISTS %s`, def.Name)
		if err := s.runMutation(ctx, drop, nil, nil); err != nil {
			return err
		}
	}
	create := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (%s)`, def.Name, def.Columns)
	return s.runMutation(ctx, create, nil, nil)
}

// Setup idempotently creates all ledger tables and seeds the ticker
// reference rows. Running it twice converges to the same state: same ids,
// same symbols, same names, no duplicates.
func (s *Store) Setup(ctx context.Context, dropFirst bool) error {
	for _, def := range []TableDef{journalTable, tickersTable, buyLotsTable} {
		if err := s.EnsureTable(ctx, def, dropFirst); err != nil {
			return err
		}
	}
	for _, t := range seedTickers {
		id := t.ID
		if err := s.UpsertTicker(ctx, model.TickerUpsert{ID: &id, Symbol: t.Symbol, Name: t.Name}); err != nil {
			return err
		}
	}
	return nil
}
