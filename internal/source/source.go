// Package source defines the closed set of provider payload shapes that can
// be normalized into a prices.PriceSet: the chart result and plain history
// list (yahoo) and the foreign-exchange history (tradermade). Retrieving the
// payloads is somebody else's job; everything here works on data already in
// memory.
package source

import (
	"time"

	"pricehistory/internal/prices"
)

// Payload is one provider's raw history response shape.
type Payload interface {
	// ToPriceSet normalizes the payload into a single-instrument price set.
	// Every date in dates is keyed in the result even when the payload has
	// no observation for it, and every date observed in the payload is keyed
	// regardless of dates. symbol names the instrument for payloads that do
	// not carry one themselves; payloads that do ignore it.
	ToPriceSet(dates []time.Time, symbol string) (*prices.PriceSet, error)
}

// maxEpochSeconds bounds a plausible seconds-since-epoch stamp (~year 5138).
// Anything past it is in a sub-second unit.
const maxEpochSeconds = 100_000_000_000

// EpochDay converts a provider epoch stamp to its UTC calendar day.
// Providers disagree on units, so millisecond, microsecond and nanosecond
// stamps are divided down to whole seconds before the time-of-day is
// discarded.
func EpochDay(v int64) time.Time {
	for v > maxEpochSeconds || v < -maxEpochSeconds {
		v /= 1000
	}
	return prices.Day(time.Unix(v, 0))
}
