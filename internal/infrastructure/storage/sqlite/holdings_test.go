package sqlite

import (
	"context"
	"os"
	"testing"

	"github.com/shopspring/decimal"
)

func TestListHoldingsJoinAndLotValue(t *testing.T) {
	dbPath := "test_holdings.db"
	defer os.Remove(dbPath)

	store := openStore(t, dbPath)
	defer store.Close()

	ctx := context.Background()
	if err := store.Setup(ctx, false); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if err := store.InsertBuyLot(ctx, testLot(1, "2026-01-05 10:30:00", "10", "150.25")); err != nil {
		t.Fatalf("InsertBuyLot failed: %v", err)
	}

	holdings, err := store.ListHoldings(ctx)
	if err != nil {
		t.Fatalf("ListHoldings failed: %v", err)
	}
	if len(holdings) != 1 {
		t.Fatalf("expected 1 holding, got %d", len(holdings))
	}
	h := holdings[0]
	if h.Symbol != "GOOG" {
		t.Errorf("expected symbol GOOG, got %s", h.Symbol)
	}
	want := decimal.RequireFromString("1502.50")
	if !h.LotValue.Equal(want) {
		t.Errorf("expected lot value %s, got %s", want, h.LotValue)
	}
}

func TestListHoldingsOrderedByTimestamp(t *testing.T) {
	dbPath := "test_holdings_order.db"
	defer os.Remove(dbPath)

	store := openStore(t, dbPath)
	defer store.Close()

	ctx := context.Background()
	if err := store.Setup(ctx, false); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	// inserted newest first; the view must come back oldest first
	if err := store.InsertBuyLot(ctx, testLot(1, "2026-02-01 09:00:00", "5", "100")); err != nil {
		t.Fatalf("InsertBuyLot failed: %v", err)
	}
	if err := store.InsertBuyLot(ctx, testLot(2, "2026-01-15 09:00:00", "3", "30")); err != nil {
		t.Fatalf("InsertBuyLot failed: %v", err)
	}

	holdings, err := store.ListHoldings(ctx)
	if err != nil {
		t.Fatalf("ListHoldings failed: %v", err)
	}
	if len(holdings) != 2 {
		t.Fatalf("expected 2 holdings, got %d", len(holdings))
	}
	if holdings[0].Timestamp != "2026-01-15 09:00:00" || holdings[1].Timestamp != "2026-02-01 09:00:00" {
		t.Errorf("holdings out of order: %s then %s", holdings[0].Timestamp, holdings[1].Timestamp)
	}
	if holdings[0].Symbol != "HP" || holdings[1].Symbol != "GOOG" {
		t.Errorf("unexpected symbols: %s then %s", holdings[0].Symbol, holdings[1].Symbol)
	}
}

func TestListHoldingsSkipsOrphanedLots(t *testing.T) {
	dbPath := "test_holdings_orphan.db"
	defer os.Remove(dbPath)

	store := openStore(t, dbPath)
	defer store.Close()

	ctx := context.Background()
	if err := store.Setup(ctx, false); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	// ticker_id carries no declared constraint; an orphan simply drops out
	// of the inner join
	if err := store.InsertBuyLot(ctx, testLot(99, "2026-01-05 10:30:00", "1", "1")); err != nil {
		t.Fatalf("InsertBuyLot failed: %v", err)
	}

	holdings, err := store.ListHoldings(ctx)
	if err != nil {
		t.Fatalf("ListHoldings failed: %v", err)
	}
	if len(holdings) != 0 {
		t.Errorf("expected orphaned lot to be absent from the join, got %d rows", len(holdings))
	}
}
