package prices

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is one day of a single instrument's series in date order, with
// a zero price standing in for days without a recorded close. It only lives
// for the duration of an Interpolate pass.
type PricePoint struct {
	Date  time.Time
	Price decimal.Decimal
}

// Interpolate fills interior runs of missing prices for each named stock.
// A missing day strictly between two days with known positive closes gets a
// linearly interpolated price, evenly stepped by position in the date-ordered
// sequence (not by elapsed calendar time). Runs at either end of the series
// are left unfilled: interpolation never extrapolates past the outermost
// known closes, and it never overwrites a recorded price.
//
// New points are collected per stock and applied after the scan, so a pass
// never anchors on its own output. Running Interpolate a second time would,
// which is why callers invoke it exactly once per completed set.
func (s *PriceSet) Interpolate(stocks []string) *PriceSet {
	dates := s.Dates()
	for _, stock := range stocks {
		points := make([]PricePoint, len(dates))
		for i, d := range dates {
			p, _ := s.Price(d, stock)
			points[i] = PricePoint{Date: d, Price: p}
		}

		var fills []PricePoint
		for i := 1; i < len(points)-1; i++ {
			if !points[i].Price.IsZero() {
				continue
			}
			before := lastPositiveBefore(points, i)
			after := firstPositiveAfter(points, i)
			if before < 0 || after < 0 {
				continue
			}
			gap := after - before - 1
			step := points[after].Price.Sub(points[before].Price).
				Div(decimal.NewFromInt(int64(gap + 1)))
			price := points[before].Price.Add(step.Mul(decimal.NewFromInt(int64(i - before))))
			fills = append(fills, PricePoint{Date: points[i].Date, Price: price})
		}

		for _, f := range fills {
			s.ensure(f.Date)[stock] = f.Price
		}
	}
	return s
}

func lastPositiveBefore(points []PricePoint, i int) int {
	for j := i - 1; j >= 0; j-- {
		if points[j].Price.IsPositive() {
			return j
		}
	}
	return -1
}

func firstPositiveAfter(points []PricePoint, i int) int {
	for j := i + 1; j < len(points); j++ {
		if points[j].Price.IsPositive() {
			return j
		}
	}
	return -1
}
