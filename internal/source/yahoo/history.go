package yahoo

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pricehistory/internal/prices"
	"pricehistory/internal/source"
)

// HistoryResponse is a plain history-list payload: ordered {date, close}
// rows for one instrument. The instrument itself is not in the payload.
type HistoryResponse struct {
	Prices []HistoryPrice `json:"prices"`
}

// HistoryPrice is one row of a history list. Date is a provider epoch stamp.
type HistoryPrice struct {
	Date  int64           `json:"date"`
	Close decimal.Decimal `json:"close"`
}

// ToPriceSet normalizes the history list under the supplied instrument
// symbol. Rows with a zero close are adjustment rows (dividends, splits),
// not trades: they key their date without contributing a price.
func (h HistoryResponse) ToPriceSet(dates []time.Time, symbol string) (*prices.PriceSet, error) {
	if symbol == "" {
		return nil, fmt.Errorf("history response: missing instrument symbol")
	}
	set := prices.New().AddDates(dates...)
	for _, row := range h.Prices {
		set.Add(source.EpochDay(row.Date), symbol, row.Close)
	}
	return set, nil
}
