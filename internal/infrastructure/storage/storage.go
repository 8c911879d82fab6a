package storage

import (
	"context"
	"sort"
	"sync"

	"mykabu/internal/application/port"
	"mykabu/internal/domain/model"
)

// InMemoryStore is a map-backed LedgerStore. It exists for tests and for
// callers that want ledger semantics without a database file; persistence
// belongs to the sqlite store.
type InMemoryStore struct {
	mu      sync.Mutex
	nextID  int64
	tickers map[int64]model.Ticker
	lots    []model.BuyLot
	journal []model.JournalEntry
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		nextID:  1,
		tickers: make(map[int64]model.Ticker),
	}
}

func (s *InMemoryStore) UpsertTicker(ctx context.Context, t model.TickerUpsert) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID != nil {
		// replace keyed on the explicit id
		s.tickers[*t.ID] = model.Ticker{ID: *t.ID, Symbol: t.Symbol, Name: t.Name}
		if *t.ID >= s.nextID {
			s.nextID = *t.ID + 1
		}
		return nil
	}
	// replace keyed on the unique symbol
	for id, row := range s.tickers {
		if row.Symbol == t.Symbol {
			s.tickers[id] = model.Ticker{ID: id, Symbol: t.Symbol, Name: t.Name}
			return nil
		}
	}
	id := s.nextID
	s.nextID++
	s.tickers[id] = model.Ticker{ID: id, Symbol: t.Symbol, Name: t.Name}
	return nil
}

func (s *InMemoryStore) ListTickers(ctx context.Context) ([]model.Ticker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Ticker, 0, len(s.tickers))
	for _, t := range s.tickers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemoryStore) TickerIDsBySymbol(ctx context.Context, symbol string) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []int64
	for id, t := range s.tickers {
		if t.Symbol == symbol {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *InMemoryStore) InsertBuyLot(ctx context.Context, lot model.BuyLot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lot.ID = int64(len(s.lots) + 1)
	s.lots = append(s.lots, lot)
	s.journal = append(s.journal, model.NewJournalEntry("insert", "buy_lots", map[string]any{
		"ticker_id":       lot.TickerID,
		"timestamp":       lot.Timestamp,
		"shares":          lot.Shares.String(),
		"price_per_share": lot.PricePerShare.String(),
		"notes":           lot.Notes,
		"broker":          lot.Broker,
	}))
	return nil
}

func (s *InMemoryStore) ListHoldings(ctx context.Context) ([]model.Holding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Holding, 0, len(s.lots))
	for _, lot := range s.lots {
		t, ok := s.tickers[lot.TickerID]
		if !ok {
			// matches the sqlite view: an orphaned lot drops out of the
			// inner join rather than erroring
			continue
		}
		out = append(out, model.Holding{
			Symbol:        t.Symbol,
			Timestamp:     lot.Timestamp,
			Shares:        lot.Shares,
			PricePerShare: lot.PricePerShare,
			Notes:         lot.Notes,
			Broker:        lot.Broker,
			LotValue:      lot.Shares.Mul(lot.PricePerShare),
		})
	}
	// timestamps are "YYYY-MM-DD HH:MM:SS", lexicographic order is time order
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return out, nil
}

// JournalLen reports how many entries the in-memory journal holds.
func (s *InMemoryStore) JournalLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.journal)
}

var _ port.LedgerStore = (*InMemoryStore)(nil)
