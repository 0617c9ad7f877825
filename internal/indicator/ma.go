package indicator

import "github.com/moznion/go-optional"

// SMA calculates the simple moving average of values over the given period.
// Entry i holds the arithmetic mean of values[i-period+1..i] once i reaches
// period-1; earlier entries are None. A non-positive period yields an
// all-None series of the same length.
//
// The window is maintained as a running sum (add the newest value, drop the
// one leaving the window) so the whole series costs O(n).
func SMA(values []float64, period int) Series {
	series := allNone(len(values))
	if period <= 0 {
		return series
	}

	var sum float64

	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}

		if i >= period-1 {
			series[i] = optional.Some(sum / float64(period))
		}
	}

	return series
}

// SpreadPercent returns the short-vs-long average spread as a percentage of
// the long average, (short-long)/long*100, or None when either side is
// still inside its warm-up window.
func SpreadPercent(short, long optional.Option[float64]) optional.Option[float64] {
	if short.IsNone() || long.IsNone() {
		return optional.None[float64]()
	}

	s := short.Unwrap()
	l := long.Unwrap()
	if l == 0 {
		return optional.None[float64]()
	}

	return optional.Some((s - l) / l * 100)
}
