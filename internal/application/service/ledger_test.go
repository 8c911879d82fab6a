package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mykabu/internal/domain/model"
	"mykabu/internal/infrastructure/storage"
)

type recordingSink struct {
	commands []string
	errs     []error
}

func (r *recordingSink) ReportError(command string, err error) {
	r.commands = append(r.commands, command)
	r.errs = append(r.errs, err)
}

func seededService(t *testing.T) (*LedgerService, *storage.InMemoryStore, *recordingSink) {
	t.Helper()
	store := storage.NewInMemoryStore()
	id := int64(1)
	require.NoError(t, store.UpsertTicker(context.Background(), model.TickerUpsert{ID: &id, Symbol: "GOOG", Name: "Alphabet"}))
	sink := &recordingSink{}
	return NewLedgerService(store, sink), store, sink
}

func TestRecordPurchase(t *testing.T) {
	svc, store, _ := seededService(t)
	ctx := context.Background()

	err := svc.RecordPurchase(ctx, "GOOG", model.Purchase{
		Timestamp:     "2026-01-05 10:30:00",
		Shares:        decimal.RequireFromString("10"),
		PricePerShare: decimal.RequireFromString("150.25"),
		Broker:        "schwab",
	})
	require.NoError(t, err)

	holdings, err := store.ListHoldings(ctx)
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Equal(t, "GOOG", holdings[0].Symbol)
	assert.True(t, holdings[0].LotValue.Equal(decimal.RequireFromString("1502.50")),
		"lot value %s", holdings[0].LotValue)
	assert.Equal(t, 1, store.JournalLen())
}

func TestRecordPurchaseUnknownTicker(t *testing.T) {
	svc, store, sink := seededService(t)
	ctx := context.Background()

	err := svc.RecordPurchase(ctx, "ZZZZ", model.Purchase{
		Timestamp:     "2026-01-05 10:30:00",
		Shares:        decimal.RequireFromString("1"),
		PricePerShare: decimal.RequireFromString("1"),
	})
	require.ErrorIs(t, err, storage.ErrUnknownTicker)

	holdings, err := store.ListHoldings(ctx)
	require.NoError(t, err)
	assert.Empty(t, holdings, "no write on unknown ticker")
	assert.Equal(t, 0, store.JournalLen())
	require.Len(t, sink.errs, 1)
	assert.ErrorIs(t, sink.errs[0], storage.ErrUnknownTicker)
}

func TestRecordPurchaseDuplicateSymbolIsInvariantViolation(t *testing.T) {
	svc, store, sink := seededService(t)
	ctx := context.Background()

	// explicit distinct ids sharing a symbol simulate a corrupted store
	id := int64(7)
	require.NoError(t, store.UpsertTicker(ctx, model.TickerUpsert{ID: &id, Symbol: "GOOG", Name: "Alphabet duplicate"}))

	err := svc.RecordPurchase(ctx, "GOOG", model.Purchase{
		Timestamp:     "2026-01-05 10:30:00",
		Shares:        decimal.RequireFromString("1"),
		PricePerShare: decimal.RequireFromString("1"),
	})
	require.ErrorIs(t, err, storage.ErrInvariantViolation)
	assert.NotEmpty(t, sink.errs)
}

func TestAddTickerAssignsID(t *testing.T) {
	svc, store, _ := seededService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddTicker(ctx, "IBM", "International Business Machines"))

	tickers, err := store.ListTickers(ctx)
	require.NoError(t, err)
	require.Len(t, tickers, 2)
	assert.Equal(t, "IBM", tickers[1].Symbol)
	assert.Greater(t, tickers[1].ID, int64(1))
}
