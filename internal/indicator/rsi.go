package indicator

import "github.com/moznion/go-optional"

// RSI calculates the relative strength index of values over the given
// period using Wilder's smoothing method. The first period entries are
// None; the entry at index period is seeded from the simple mean of the
// raw gains and losses over indices 1..period, and later entries smooth
// with weight (period-1)/period on the running average:
//
//	avgGain[i] = (avgGain[i-1]*(period-1) + gain[i]) / period
//
// A zero average loss maps to 100 (perfect uptrend). Inputs shorter than
// period+1 values, or a non-positive period, yield an all-None series.
func RSI(values []float64, period int) Series {
	series := allNone(len(values))
	if period <= 0 || len(values) <= period {
		return series
	}

	var avgGain, avgLoss float64

	// Seed averages over the first window of changes.
	for i := 1; i <= period; i++ {
		change := values[i] - values[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss += -change
		}
	}

	avgGain /= float64(period)
	avgLoss /= float64(period)
	series[period] = optional.Some(rsiValue(avgGain, avgLoss))

	for i := period + 1; i < len(values); i++ {
		change := values[i] - values[i-1]

		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}

		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		series[i] = optional.Some(rsiValue(avgGain, avgLoss))
	}

	return series
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}

	rs := avgGain / avgLoss

	return 100 - (100 / (1 + rs))
}
