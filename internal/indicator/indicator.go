// Package indicator provides the derived-series calculations the advisor
// consumes: simple and exponential moving averages, a Wilder-smoothed
// relative strength oscillator, and the volatility regime classifier.
//
// Series functions map a closing-price sequence to a sequence of the same
// length. Indices inside an indicator's warm-up window carry None instead
// of a value; callers thread that "not yet available" state through rather
// than treating it as an error.
package indicator

import "github.com/moznion/go-optional"

// Series is a per-bar indicator output aligned with its input sequence.
// Entries are None until the indicator's warm-up window has passed.
type Series = []optional.Option[float64]

// At returns the series entry at index i, or None when i is out of range.
func At(series Series, i int) optional.Option[float64] {
	if i < 0 || i >= len(series) {
		return optional.None[float64]()
	}

	return series[i]
}

// allNone builds a series of n undefined entries.
func allNone(n int) Series {
	series := make(Series, n)
	for i := range series {
		series[i] = optional.None[float64]()
	}

	return series
}
