package model

import "github.com/shopspring/decimal"

// BuyLot is one purchase event. Rows are append-only; the core never
// updates or deletes them.
type BuyLot struct {
	ID            int64
	TickerID      int64
	Timestamp     string // "YYYY-MM-DD HH:MM:SS"
	Shares        decimal.Decimal
	PricePerShare decimal.Decimal
	Notes         string
	Broker        string
}

// Purchase carries the caller-supplied fields of a new buy lot. The
// presentation layer validates the timestamp format and the numbers before
// handing it over.
type Purchase struct {
	Timestamp     string
	Shares        decimal.Decimal
	PricePerShare decimal.Decimal
	Notes         string
	Broker        string
}
