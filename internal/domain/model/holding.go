package model

import "github.com/shopspring/decimal"

// Holding is one row of the denormalized holdings view: a buy lot joined
// with its ticker, plus the lot value derived at query time. Nothing here
// is formatted; rendering belongs to the presentation layer.
type Holding struct {
	Symbol        string
	Timestamp     string
	Shares        decimal.Decimal
	PricePerShare decimal.Decimal
	Notes         string
	Broker        string
	LotValue      decimal.Decimal
}
