package sqlite

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"mykabu/internal/domain/model"
)

// ListHoldings joins buy lots with their tickers, ordered by purchase
// timestamp ascending. Lot value is derived in the projection step with
// exact decimal arithmetic rather than in SQL, where the DECIMAL columns
// would degrade to floats.
func (s *Store) ListHoldings(ctx context.Context) ([]model.Holding, error) {
	var out []model.Holding
	err := s.runQuery(ctx,
		`SELECT tickers.ticker, buy_lots.timestamp, buy_lots.shares, `+
			`buy_lots.price_per_share, buy_lots.notes, buy_lots.broker `+
			`FROM buy_lots, tickers `+
			`WHERE tickers.id = buy_lots.ticker_id `+
			`ORDER BY buy_lots.timestamp`, nil,
		func(rows *sql.Rows) error {
			for rows.Next() {
				var h model.Holding
				var shares, price string
				if err := rows.Scan(&h.Symbol, &h.Timestamp, &shares, &price, &h.Notes, &h.Broker); err != nil {
					return err
				}
				var err error
				if h.Shares, err = decimal.NewFromString(shares); err != nil {
					return err
				}
				if h.PricePerShare, err = decimal.NewFromString(price); err != nil {
					return err
				}
				h.LotValue = h.Shares.Mul(h.PricePerShare)
				out = append(out, h)
			}
			return nil
		})
	if err != nil {
		return nil, err
	}
	return out, nil
}
