// Package tradermade holds the foreign-exchange history payload shape.
package tradermade

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pricehistory/internal/prices"
)

// History is a foreign-exchange history: one record per trading day, each
// carrying its own date and quote. The currency pair is supplied by the
// caller, not the payload.
type History []Record

// Record is a single day's quote set.
type Record struct {
	Date   string  `json:"date"`
	Quotes []Quote `json:"quotes"`
}

// Quote is one quoted rate within a record.
type Quote struct {
	BaseCurrency  string          `json:"base_currency"`
	QuoteCurrency string          `json:"quote_currency"`
	Close         decimal.Decimal `json:"close"`
}

// The history endpoint returns bare dates; the intraday one appends a time.
var dateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05"}

// ToPriceSet normalizes the history under the supplied currency pair. Each
// record contributes at most one price, keyed by its own date; a record
// without a quote is a malformed payload.
func (h History) ToPriceSet(dates []time.Time, pair string) (*prices.PriceSet, error) {
	if pair == "" {
		return nil, fmt.Errorf("forex history: missing currency pair")
	}
	set := prices.New().AddDates(dates...)
	for _, rec := range h {
		day, err := rec.day()
		if err != nil {
			return nil, fmt.Errorf("forex history %s: %w", pair, err)
		}
		if len(rec.Quotes) == 0 {
			return nil, fmt.Errorf("forex history %s: no quote on %s", pair, rec.Date)
		}
		set.Add(day, pair, rec.Quotes[0].Close)
	}
	return set, nil
}

func (r Record) day() (time.Time, error) {
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, r.Date, time.UTC)
		if err == nil {
			return prices.Day(t), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, fmt.Errorf("bad date %q: %w", r.Date, firstErr)
}
