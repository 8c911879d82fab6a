package sqlite

import (
	"context"

	"mykabu/internal/domain/model"
)

// InsertBuyLot appends one purchase row. The journal entry describing the
// insert rides in the same transaction: either both rows persist or
// neither does.
func (s *Store) InsertBuyLot(ctx context.Context, lot model.BuyLot) error {
	audit := model.NewJournalEntry("insert", "buy_lots", map[string]any{
		"ticker_id":       lot.TickerID,
		"timestamp":       lot.Timestamp,
		"shares":          lot.Shares.String(),
		"price_per_share": lot.PricePerShare.String(),
		"notes":           lot.Notes,
		"broker":          lot.Broker,
	})
	return s.runMutation(ctx,
		`INSERT INTO buy_lots(ticker_id, timestamp, shares, price_per_share, notes, broker) `+
			`VALUES(?, ?, ?, ?, ?, ?)`,
		[]any{lot.TickerID, lot.Timestamp, lot.Shares.String(), lot.PricePerShare.String(), lot.Notes, lot.Broker},
		&audit)
}
