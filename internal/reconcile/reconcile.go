// Package reconcile folds per-instrument provider payloads into one
// multi-instrument price table.
package reconcile

import (
	"context"
	"fmt"
	"time"

	"pricehistory/internal/prices"
	"pricehistory/internal/source"
)

// Feed supplies one instrument's already-retrieved history payload. How the
// payload was obtained (HTTP, files, fixtures) is the caller's concern.
//
//go:generate mockgen -package=reconcile_test -destination=mock_feed_test.go -source=reconcile.go Feed
type Feed interface {
	// Symbol is the instrument hint passed to the adapter. Payloads that
	// name their own instrument (chart results) override it.
	Symbol() string
	History(ctx context.Context) (source.Payload, error)
}

// Build reduces the feeds into a single PriceSet: each feed's payload is
// adapted, then merged one instrument at a time into the accumulator. Dates
// of interest are keyed up front and passed to every adapter. When
// interpolate is set, interior gaps are filled once, after the last merge.
//
// Feeds are processed strictly in order; the accumulator is never shared.
func Build(ctx context.Context, feeds []Feed, dates []time.Time, interpolate bool) (*prices.PriceSet, error) {
	set := prices.New().AddDates(dates...)
	seen := make(map[string]struct{})
	var symbols []string

	for _, feed := range feeds {
		payload, err := feed.History(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: history: %w", feed.Symbol(), err)
		}
		adapted, err := payload.ToPriceSet(dates, feed.Symbol())
		if err != nil {
			return nil, fmt.Errorf("%s: adapt: %w", feed.Symbol(), err)
		}

		// Date keys survive the merge even when the feed priced nothing.
		set.AddDates(adapted.Dates()...)
		for _, sym := range adapted.Symbols() {
			set.AddPrices(adapted, sym)
			if _, ok := seen[sym]; !ok {
				seen[sym] = struct{}{}
				symbols = append(symbols, sym)
			}
		}
	}

	if interpolate {
		set.Interpolate(symbols)
	}
	return set, nil
}
