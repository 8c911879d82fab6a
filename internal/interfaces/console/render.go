package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"mykabu/internal/domain/model"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatShares renders a share quantity with thousands grouping and up to
// four fraction digits.
func FormatShares(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprintf("%v", number.Decimal(f,
		number.MinFractionDigits(0), number.MaxFractionDigits(4)))
}

// FormatMoney renders a dollar amount with at least two and at most four
// fraction digits.
func FormatMoney(d decimal.Decimal) string {
	f, _ := d.Float64()
	return "$" + printer.Sprintf("%v", number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(4)))
}

// RenderHoldings writes the holdings view as an aligned table.
func RenderHoldings(w io.Writer, holdings []model.Holding) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TICKER\tTIMESTAMP\tSHARES\tPRICE/SHARE\tLOT VALUE\tBROKER\tNOTES")
	for _, h := range holdings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			h.Symbol, h.Timestamp,
			FormatShares(h.Shares),
			FormatMoney(h.PricePerShare),
			FormatMoney(h.LotValue),
			h.Broker, h.Notes)
	}
	tw.Flush()
}

// RenderTickers writes the ticker reference table.
func RenderTickers(w io.Writer, tickers []model.Ticker) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTICKER\tNAME")
	for _, t := range tickers {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", t.ID, t.Symbol, t.Name)
	}
	tw.Flush()
}
