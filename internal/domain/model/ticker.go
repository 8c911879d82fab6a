package model

// Ticker maps a stock symbol to a display name. IDs for seeded tickers are
// assigned by the caller, not the engine, so that buy_lots.ticker_id stays
// valid across re-runs of schema setup.
type Ticker struct {
	ID     int64
	Symbol string
	Name   string
}

// TickerUpsert is the input to the ticker upsert. A nil ID lets the engine
// assign one, keyed on the unique symbol instead; an explicit ID (zero
// included) replaces whatever row holds that ID.
type TickerUpsert struct {
	ID     *int64
	Symbol string
	Name   string
}
