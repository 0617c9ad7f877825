package indicator

// EMA calculates the exponential moving average of values over the given
// period. The first value seeds the average, so the output is defined for
// every index of a non-empty input:
//
//	ema[0] = values[0]
//	ema[i] = (values[i] - ema[i-1]) * (2/(period+1)) + ema[i-1]
func EMA(values []float64, period int) []float64 {
	ema := make([]float64, len(values))
	if len(values) == 0 {
		return ema
	}

	multiplier := 2.0 / (float64(period) + 1.0)

	ema[0] = values[0]
	for i := 1; i < len(values); i++ {
		ema[i] = (values[i]-ema[i-1])*multiplier + ema[i-1]
	}

	return ema
}
