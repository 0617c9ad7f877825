// Package profile joins indicator readings with detected swing cycles and
// derives percentile statistics and recommended thresholds from them.
package profile

import (
	"time"

	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-advisor/internal/indicator"
	"github.com/rxtech-lab/argo-advisor/internal/swing"
	"github.com/rxtech-lab/argo-advisor/internal/types"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
)

// Params configures a historical analysis run.
type Params struct {
	RSIPeriod         int
	ShortMAPeriod     int
	LongMAPeriod      int
	DrawdownThreshold float64
}

// DefaultParams mirrors the default signal configuration.
func DefaultParams() Params {
	return Params{
		RSIPeriod:         14,
		ShortMAPeriod:     50,
		LongMAPeriod:      200,
		DrawdownThreshold: 0.10,
	}
}

func (p Params) validate() error {
	if p.RSIPeriod <= 0 || p.ShortMAPeriod <= 0 || p.LongMAPeriod <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod,
			"periods must be positive, got rsi=%d short=%d long=%d",
			p.RSIPeriod, p.ShortMAPeriod, p.LongMAPeriod)
	}
	if p.ShortMAPeriod >= p.LongMAPeriod {
		return errors.Newf(errors.ErrCodeInvalidPeriod,
			"short ma period %d must be below long ma period %d",
			p.ShortMAPeriod, p.LongMAPeriod)
	}

	return nil
}

// Stats holds the per-indicator summaries for one side of the cycles
// (peaks or troughs). A field is None when no cycle had a defined reading
// for that indicator, for example when every peak fell inside the warm-up
// window.
type Stats struct {
	RSI        optional.Option[SummaryStats]
	Volatility optional.Option[SummaryStats]
	MASpread   optional.Option[SummaryStats]
}

// SeverityStats aggregates the cycles that fall in one severity bucket.
type SeverityStats struct {
	Count           int
	AvgDrawdown     float64
	AvgDeclineDays  float64
	AvgRecoveryDays optional.Option[float64]
}

// Analysis is the result of a historical swing analysis.
type Analysis struct {
	Cycles         []types.SwingCycle
	PeakStats      Stats
	TroughStats    Stats
	DrawdownStats  optional.Option[SummaryStats]
	BySeverity     map[types.Severity]SeverityStats
	Recommendation optional.Option[Recommendation]
}

// Analyze detects swing cycles in the price history, samples the oscillator,
// volatility and moving-average spread at every cycle peak and trough, and
// derives summary statistics plus a threshold recommendation. Volatility
// rows are matched to price bars by exact date; bars without a volatility
// reading are excluded from the volatility sample only.
func Analyze(prices, volatility []types.PriceRow, params Params) (Analysis, error) {
	if err := params.validate(); err != nil {
		return Analysis{}, err
	}

	detector := swing.NewDetector(params.DrawdownThreshold)
	cycles, err := detector.Detect(prices)
	if err != nil {
		return Analysis{}, err
	}

	closes := types.Closes(prices)
	rsi := indicator.RSI(closes, params.RSIPeriod)
	short := indicator.SMA(closes, params.ShortMAPeriod)
	long := indicator.SMA(closes, params.LongMAPeriod)

	volByDate := make(map[string]float64, len(volatility))
	for _, row := range volatility {
		volByDate[dateKey(row.Date)] = row.Close
	}

	peakSamples := newSampleSet()
	troughSamples := newSampleSet()
	drawdowns := make([]float64, 0, len(cycles))

	for _, cycle := range cycles {
		peakSamples.add(cycle.PeakIndex, prices, rsi, short, long, volByDate)
		troughSamples.add(cycle.TroughIndex, prices, rsi, short, long, volByDate)
		drawdowns = append(drawdowns, cycle.Drawdown)
	}

	peakStats := peakSamples.stats()
	troughStats := troughSamples.stats()

	analysis := Analysis{
		Cycles:         cycles,
		PeakStats:      peakStats,
		TroughStats:    troughStats,
		DrawdownStats:  summarizeOrNone(drawdowns),
		BySeverity:     groupBySeverity(cycles),
		Recommendation: optional.None[Recommendation](),
	}

	if rec, err := Recommend(peakStats, troughStats); err == nil {
		analysis.Recommendation = optional.Some(rec)
	}

	return analysis, nil
}

func dateKey(d time.Time) string {
	return d.Format(time.DateOnly)
}

// sampleSet collects the per-indicator readings at one side of the cycles.
// A missing reading drops the sample from that indicator's set only.
type sampleSet struct {
	rsi      []float64
	vol      []float64
	maSpread []float64
}

func newSampleSet() *sampleSet {
	return &sampleSet{}
}

func (s *sampleSet) add(index int, prices []types.PriceRow, rsi, short, long indicator.Series, volByDate map[string]float64) {
	if r := indicator.At(rsi, index); r.IsSome() {
		s.rsi = append(s.rsi, r.Unwrap())
	}
	if v, ok := volByDate[dateKey(prices[index].Date)]; ok {
		s.vol = append(s.vol, v)
	}
	if spread := indicator.SpreadPercent(indicator.At(short, index), indicator.At(long, index)); spread.IsSome() {
		s.maSpread = append(s.maSpread, spread.Unwrap())
	}
}

func (s *sampleSet) stats() Stats {
	return Stats{
		RSI:        summarizeOrNone(s.rsi),
		Volatility: summarizeOrNone(s.vol),
		MASpread:   summarizeOrNone(s.maSpread),
	}
}

func summarizeOrNone(samples []float64) optional.Option[SummaryStats] {
	stats, err := Summarize(samples)
	if err != nil {
		return optional.None[SummaryStats]()
	}

	return optional.Some(stats)
}

func groupBySeverity(cycles []types.SwingCycle) map[types.Severity]SeverityStats {
	type bucket struct {
		count        int
		drawdownSum  float64
		declineSum   float64
		recoverySum  float64
		recoverCount int
	}

	buckets := make(map[types.Severity]*bucket)
	for _, cycle := range cycles {
		severity := types.SeverityOf(cycle)
		b, ok := buckets[severity]
		if !ok {
			b = &bucket{}
			buckets[severity] = b
		}

		b.count++
		b.drawdownSum += cycle.Drawdown
		b.declineSum += float64(cycle.DeclineDays())
		if days, err := cycle.RecoveryDays().Take(); err == nil {
			b.recoverySum += float64(days)
			b.recoverCount++
		}
	}

	out := make(map[types.Severity]SeverityStats, len(buckets))
	for severity, b := range buckets {
		stats := SeverityStats{
			Count:           b.count,
			AvgDrawdown:     b.drawdownSum / float64(b.count),
			AvgDeclineDays:  b.declineSum / float64(b.count),
			AvgRecoveryDays: optional.None[float64](),
		}
		if b.recoverCount > 0 {
			stats.AvgRecoveryDays = optional.Some(b.recoverySum / float64(b.recoverCount))
		}
		out[severity] = stats
	}

	return out
}
