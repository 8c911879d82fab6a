package console

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"mykabu/internal/domain/model"
)

var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

// NormalizeSymbol upper-cases and trims a user-entered ticker symbol. The
// core looks symbols up exactly as given, so normalization happens here.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ParsePurchase validates the raw form fields of a buy and produces the
// purchase the core will persist. The core does not re-validate; anything
// that passes here is written as-is.
func ParsePurchase(timestamp, shares, pricePerShare, notes, broker string) (model.Purchase, error) {
	p := model.Purchase{
		Timestamp: strings.TrimSpace(timestamp),
		Notes:     strings.TrimSpace(notes),
		Broker:    strings.TrimSpace(broker),
	}
	if !timestampPattern.MatchString(p.Timestamp) {
		return model.Purchase{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD HH:MM:SS", timestamp)
	}

	var err error
	if p.Shares, err = parseAmount("shares", shares); err != nil {
		return model.Purchase{}, err
	}
	if p.PricePerShare, err = parseAmount("price per share", pricePerShare); err != nil {
		return model.Purchase{}, err
	}
	return p, nil
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q", field, raw)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%s must not be negative, got %s", field, d)
	}
	return d, nil
}
