package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"mykabu/internal/application/port"
	"mykabu/internal/domain/model"
	"mykabu/internal/infrastructure/storage"
)

// LedgerService is the data-operation surface the presentation layer calls.
// It owns no connection; everything goes through the LedgerStore.
type LedgerService struct {
	store port.LedgerStore
	sink  port.ErrorSink
}

func NewLedgerService(store port.LedgerStore, sink port.ErrorSink) *LedgerService {
	return &LedgerService{store: store, sink: sink}
}

// RecordPurchase looks the ticker up by its already-uppercased symbol, then
// inserts the buy lot referencing the ticker's id. The insert happens only
// after the lookup resolves; an unknown symbol writes nothing. More than
// one match means the unique symbol constraint is broken somewhere, which
// is corruption, not a normal error.
func (s *LedgerService) RecordPurchase(ctx context.Context, symbol string, p model.Purchase) error {
	ids, err := s.store.TickerIDsBySymbol(ctx, symbol)
	if err != nil {
		return err
	}
	switch {
	case len(ids) == 0:
		err := fmt.Errorf("%s: %w", symbol, storage.ErrUnknownTicker)
		s.sink.ReportError("record purchase", err)
		return err
	case len(ids) > 1:
		err := fmt.Errorf("%d tickers match %s: %w", len(ids), symbol, storage.ErrInvariantViolation)
		log.Error().Str("symbol", symbol).Int("matches", len(ids)).Msg("ticker symbol not unique")
		s.sink.ReportError("record purchase", err)
		return err
	}

	return s.store.InsertBuyLot(ctx, model.BuyLot{
		TickerID:      ids[0],
		Timestamp:     p.Timestamp,
		Shares:        p.Shares,
		PricePerShare: p.PricePerShare,
		Notes:         p.Notes,
		Broker:        p.Broker,
	})
}

// ListHoldings returns the joined holdings view, oldest purchase first.
func (s *LedgerService) ListHoldings(ctx context.Context) ([]model.Holding, error) {
	return s.store.ListHoldings(ctx)
}

// ListTickers returns the reference table ordered by id.
func (s *LedgerService) ListTickers(ctx context.Context) ([]model.Ticker, error) {
	return s.store.ListTickers(ctx)
}

// AddTicker upserts a ticker keyed on its unique symbol, letting the engine
// assign the id.
func (s *LedgerService) AddTicker(ctx context.Context, symbol, name string) error {
	return s.store.UpsertTicker(ctx, model.TickerUpsert{Symbol: symbol, Name: name})
}
