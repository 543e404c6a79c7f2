package prices

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// scale is the number of fractional digits a stored price carries.
const scale = 6

// StockPrice is one instrument's closing price as exposed to consumers.
type StockPrice struct {
	Stock string          `json:"stock"`
	Price decimal.Decimal `json:"price"`
}

// PriceSet maps a calendar day (UTC midnight) to the closing prices observed
// on it, keyed by symbol. A day keyed with an empty map means "examined, no
// trade data" — distinct from a day that is absent entirely. The symbol map
// makes "at most one price per symbol per day" structural.
//
// PriceSet is not safe for concurrent use; callers sequence merges and
// interpolation against the same instance.
type PriceSet struct {
	Prices map[time.Time]map[string]decimal.Decimal
}

// New returns an empty PriceSet.
func New() *PriceSet {
	return &PriceSet{Prices: make(map[time.Time]map[string]decimal.Decimal)}
}

// Day truncates t to its UTC calendar day. Every PriceSet key goes through
// this, so time-of-day never leaks into the table.
func Day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Round normalizes a raw close to the canonical scale. decimal.Round rounds
// half away from zero.
func Round(p decimal.Decimal) decimal.Decimal {
	return p.Round(scale)
}

func (s *PriceSet) ensure(date time.Time) map[string]decimal.Decimal {
	d := Day(date)
	m, ok := s.Prices[d]
	if !ok {
		m = make(map[string]decimal.Decimal)
		s.Prices[d] = m
	}
	return m
}

// AddDates inserts each date as an empty entry when absent. Re-adding an
// existing date is a no-op.
func (s *PriceSet) AddDates(dates ...time.Time) *PriceSet {
	for _, d := range dates {
		s.ensure(d)
	}
	return s
}

// Add records stock's closing price on date, rounded to the canonical scale.
// A price that is (or rounds to) zero is the "no tradable close" sentinel:
// it only creates the date entry and is never stored.
func (s *PriceSet) Add(date time.Time, stock string, price decimal.Decimal) *PriceSet {
	m := s.ensure(date)
	p := Round(price)
	if p.IsZero() {
		return s
	}
	m[stock] = p
	return s
}

// AddPrices folds the other set into s for a single instrument: every date
// keyed in other is keyed in s, and stock's price is copied wherever other
// has one. Other instruments in other are ignored; dates present only in s
// are untouched.
func (s *PriceSet) AddPrices(other *PriceSet, stock string) *PriceSet {
	for date, day := range other.Prices {
		m := s.ensure(date)
		if p, ok := day[stock]; ok {
			m[stock] = p
		}
	}
	return s
}

// Price returns stock's close on date, if one is recorded.
func (s *PriceSet) Price(date time.Time, stock string) (decimal.Decimal, bool) {
	p, ok := s.Prices[Day(date)][stock]
	return p, ok
}

// Dates returns every day key in chronological order.
func (s *PriceSet) Dates() []time.Time {
	out := make([]time.Time, 0, len(s.Prices))
	for d := range s.Prices {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Symbols returns every instrument appearing anywhere in the set, sorted.
func (s *PriceSet) Symbols() []string {
	seen := make(map[string]struct{})
	for _, day := range s.Prices {
		for sym := range day {
			seen[sym] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for sym := range seen {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// At returns the prices recorded on date, ordered by symbol.
func (s *PriceSet) At(date time.Time) []StockPrice {
	day := s.Prices[Day(date)]
	out := make([]StockPrice, 0, len(day))
	for sym, p := range day {
		out = append(out, StockPrice{Stock: sym, Price: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stock < out[j].Stock })
	return out
}
