package profile

import (
	"math"
	"sort"

	"github.com/rxtech-lab/argo-advisor/pkg/errors"
)

// SummaryStats describes a sample set with its central tendency and the
// percentile ladder the recommendation policy reads from.
type SummaryStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P10    float64 `json:"p10"`
	P25    float64 `json:"p25"`
	P75    float64 `json:"p75"`
	P90    float64 `json:"p90"`
}

// Percentile interpolates the p-th percentile (0-100) over sorted values
// using linear interpolation at fractional index p/100*(n-1). The slice
// must be sorted ascending and non-empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))

	if lower < 0 {
		return sorted[0]
	}
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	if lower == upper {
		return sorted[lower]
	}

	frac := pos - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// Summarize computes SummaryStats over the samples. The input is not
// mutated. An empty sample set is an error.
func Summarize(samples []float64) (SummaryStats, error) {
	if len(samples) == 0 {
		return SummaryStats{}, errors.New(errors.ErrCodeEmptySample, "cannot summarize an empty sample set")
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}

	return SummaryStats{
		Count:  len(sorted),
		Mean:   sum / float64(len(sorted)),
		Median: Percentile(sorted, 50),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		P10:    Percentile(sorted, 10),
		P25:    Percentile(sorted, 25),
		P75:    Percentile(sorted, 75),
		P90:    Percentile(sorted, 90),
	}, nil
}
