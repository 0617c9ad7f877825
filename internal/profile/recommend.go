package profile

import (
	"fmt"

	"github.com/rxtech-lab/argo-advisor/internal/indicator"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
)

// Clamp bounds for the recommended oscillator bands. Recommendations
// derived from thin histories stay inside sane trading ranges.
const (
	oversoldFloor   = 20.0
	oversoldCeil    = 45.0
	overboughtFloor = 60.0
	overboughtCeil  = 85.0
)

// RecommendedValue is one derived threshold together with the one-line
// statistic trail it came from. Callers display the basis verbatim.
type RecommendedValue struct {
	Value float64
	Basis string
}

// Recommendation carries the derived oscillator bands and volatility
// regime levels.
type Recommendation struct {
	Oversold    RecommendedValue
	Overbought  RecommendedValue
	Normal      RecommendedValue
	Fear        RecommendedValue
	HighFear    RecommendedValue
	ExtremeFear RecommendedValue
}

// Thresholds packs the recommended volatility levels for the regime scorer.
func (r Recommendation) Thresholds() indicator.RegimeThresholds {
	return indicator.RegimeThresholds{
		Normal:      r.Normal.Value,
		Fear:        r.Fear.Value,
		HighFear:    r.HighFear.Value,
		ExtremeFear: r.ExtremeFear.Value,
	}
}

// Recommend derives threshold recommendations from the peak-side and
// trough-side statistics: oversold is the trough oscillator P25 clamped to
// [20,45], overbought the peak oscillator P75 clamped to [60,85], the
// volatility "normal" level the peak median and the fear levels the trough
// P25/median/P75. It fails when a required sample set is empty.
func Recommend(peak, trough Stats) (Recommendation, error) {
	troughRSI, err := trough.RSI.Take()
	if err != nil {
		return Recommendation{}, errors.New(errors.ErrCodeEmptySample, "no trough-side oscillator samples to recommend from")
	}
	peakRSI, err := peak.RSI.Take()
	if err != nil {
		return Recommendation{}, errors.New(errors.ErrCodeEmptySample, "no peak-side oscillator samples to recommend from")
	}
	peakVol, err := peak.Volatility.Take()
	if err != nil {
		return Recommendation{}, errors.New(errors.ErrCodeEmptySample, "no peak-side volatility samples to recommend from")
	}
	troughVol, err := trough.Volatility.Take()
	if err != nil {
		return Recommendation{}, errors.New(errors.ErrCodeEmptySample, "no trough-side volatility samples to recommend from")
	}

	return Recommendation{
		Oversold: RecommendedValue{
			Value: clamp(troughRSI.P25, oversoldFloor, oversoldCeil),
			Basis: fmt.Sprintf("trough oscillator P25 %.1f (median %.1f, P10 %.1f), clamped to [%.0f, %.0f]",
				troughRSI.P25, troughRSI.Median, troughRSI.P10, oversoldFloor, oversoldCeil),
		},
		Overbought: RecommendedValue{
			Value: clamp(peakRSI.P75, overboughtFloor, overboughtCeil),
			Basis: fmt.Sprintf("peak oscillator P75 %.1f (median %.1f, P90 %.1f), clamped to [%.0f, %.0f]",
				peakRSI.P75, peakRSI.Median, peakRSI.P90, overboughtFloor, overboughtCeil),
		},
		Normal: RecommendedValue{
			Value: peakVol.Median,
			Basis: fmt.Sprintf("peak volatility median %.1f (P25 %.1f, P75 %.1f)",
				peakVol.Median, peakVol.P25, peakVol.P75),
		},
		Fear: RecommendedValue{
			Value: troughVol.P25,
			Basis: fmt.Sprintf("trough volatility P25 %.1f (median %.1f, P10 %.1f)",
				troughVol.P25, troughVol.Median, troughVol.P10),
		},
		HighFear: RecommendedValue{
			Value: troughVol.Median,
			Basis: fmt.Sprintf("trough volatility median %.1f (P25 %.1f, P75 %.1f)",
				troughVol.Median, troughVol.P25, troughVol.P75),
		},
		ExtremeFear: RecommendedValue{
			Value: troughVol.P75,
			Basis: fmt.Sprintf("trough volatility P75 %.1f (median %.1f, P90 %.1f)",
				troughVol.P75, troughVol.Median, troughVol.P90),
		},
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
