// Package yahoo holds the two Yahoo-style payload shapes: the chart result
// with parallel timestamp/close arrays and the plain history list.
package yahoo

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pricehistory/internal/prices"
	"pricehistory/internal/source"
)

// Result is one entry of a chart API response: a shared timestamp series,
// parallel per-indicator arrays and the instrument metadata.
type Result struct {
	Meta       Meta       `json:"meta"`
	Timestamp  []int64    `json:"timestamp"`
	Indicators Indicators `json:"indicators"`
}

// Meta carries the chart metadata fields we read.
type Meta struct {
	Symbol string `json:"symbol"`
}

// Indicators wraps the quote series parallel to Result.Timestamp.
type Indicators struct {
	Quote []Quote `json:"quote"`
}

// Quote carries the closing price series. Entries are pointers because the
// provider emits JSON nulls for days without a close.
type Quote struct {
	Close []*decimal.Decimal `json:"close"`
}

// symbolDelim separates the canonical symbol from an exchange qualifier in
// chart metadata (e.g. "VOD.L").
const symbolDelim = "."

// Symbol returns the canonical instrument symbol: the metadata symbol with
// any exchange qualifier suffix stripped.
func (r Result) Symbol() string {
	sym, _, _ := strings.Cut(r.Meta.Symbol, symbolDelim)
	return sym
}

// ToPriceSet normalizes the chart result. The symbol argument is ignored:
// chart results name their own instrument. When dates is empty or nil, the
// observed [min, max] timestamp range is swept for absent business days
// instead; an explicit dates list fully governs out-of-payload keys.
func (r Result) ToPriceSet(dates []time.Time, _ string) (*prices.PriceSet, error) {
	sym := r.Symbol()
	if sym == "" {
		return nil, fmt.Errorf("chart result: missing meta symbol")
	}
	var closes []*decimal.Decimal
	if len(r.Indicators.Quote) > 0 {
		closes = r.Indicators.Quote[0].Close
	}
	if len(closes) < len(r.Timestamp) {
		return nil, fmt.Errorf("chart result %s: %d closes for %d timestamps",
			sym, len(closes), len(r.Timestamp))
	}

	set := prices.New()
	for i, stamp := range r.Timestamp {
		day := source.EpochDay(stamp)
		if closes[i] == nil {
			set.AddDates(day)
			continue
		}
		set.Add(day, sym, *closes[i])
	}

	if len(dates) > 0 {
		set.AddDates(dates...)
	} else if len(r.Timestamp) > 0 {
		ds := set.Dates()
		set.AddBusinessDays(ds[0], ds[len(ds)-1])
	}
	return set, nil
}
