package sqlite

import (
	"context"
	"database/sql"

	"mykabu/internal/domain/model"
)

// UpsertTicker inserts or replaces a ticker. With an explicit id (zero
// included) the replace is keyed on the id, which is what seeding needs;
// without one the engine assigns the id and the replace keys on the unique
// symbol. Either way the upsert is journaled.
func (s *Store) UpsertTicker(ctx context.Context, t model.TickerUpsert) error {
	if t.ID != nil {
		audit := model.NewJournalEntry("insert_or_replace", "tickers", map[string]any{
			"id":     *t.ID,
			"ticker": t.Symbol,
			"name":   t.Name,
		})
		return s.runMutation(ctx,
			`INSERT OR REPLACE INTO tickers(id, ticker, name) VALUES(?, ?, ?)`,
			[]any{*t.ID, t.Symbol, t.Name}, &audit)
	}
	audit := model.NewJournalEntry("insert_or_replace", "tickers", map[string]any{
		"ticker": t.Symbol,
		"name":   t.Name,
	})
	return s.runMutation(ctx,
		`INSERT OR REPLACE INTO tickers(ticker, name) VALUES(?, ?)`,
		[]any{t.Symbol, t.Name}, &audit)
}

// ListTickers returns all tickers ordered by id. The slice is materialized;
// a fresh call re-queries.
func (s *Store) ListTickers(ctx context.Context) ([]model.Ticker, error) {
	var out []model.Ticker
	err := s.runQuery(ctx,
		`SELECT id, ticker, name FROM tickers ORDER BY id`, nil,
		func(rows *sql.Rows) error {
			for rows.Next() {
				var t model.Ticker
				if err := rows.Scan(&t.ID, &t.Symbol, &t.Name); err != nil {
					return err
				}
				out = append(out, t)
			}
			return nil
		})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TickerIDsBySymbol returns the ids matching symbol exactly. The column is
// unique, so the caller treats more than one result as corruption.
func (s *Store) TickerIDsBySymbol(ctx context.Context, symbol string) ([]int64, error) {
	var ids []int64
	err := s.runQuery(ctx,
		`SELECT id FROM tickers WHERE ticker = ?`, []any{symbol},
		func(rows *sql.Rows) error {
			for rows.Next() {
				var id int64
				if err := rows.Scan(&id); err != nil {
					return err
				}
				ids = append(ids, id)
			}
			return nil
		})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
