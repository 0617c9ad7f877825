package types

import (
	"time"

	"github.com/moznion/go-optional"
)

// SwingCycle is one peak-to-trough-to-(optional)recovery episode whose
// decline exceeded the detector's drawdown threshold. Cycles are created
// only by the swing detector and are immutable once emitted.
type SwingCycle struct {
	// PeakIndex is the bar index of the episode's nominal peak.
	PeakIndex int
	// PeakDate is the date of the nominal peak.
	PeakDate time.Time
	// PeakPrice is the closing price at the nominal peak.
	PeakPrice float64
	// TroughIndex is the bar index of the lowest close of the episode.
	TroughIndex int
	// TroughDate is the date of the trough.
	TroughDate time.Time
	// TroughPrice is the closing price at the trough.
	TroughPrice float64
	// RecoveryIndex is the first bar at or after the trough whose close
	// reached the peak price again. None while the episode is still open.
	RecoveryIndex optional.Option[int]
	// RecoveryDate is the date of the recovery bar.
	RecoveryDate optional.Option[time.Time]
	// RecoveryPrice is the closing price at the recovery bar.
	RecoveryPrice optional.Option[float64]
	// Drawdown is (TroughPrice - PeakPrice) / PeakPrice. Always negative.
	Drawdown float64
}

// Completed reports whether the price recovered to the peak within the data.
func (c SwingCycle) Completed() bool {
	return c.RecoveryIndex.IsSome()
}

// DeclineDays returns the calendar days from peak to trough.
func (c SwingCycle) DeclineDays() int {
	return int(c.TroughDate.Sub(c.PeakDate).Hours() / 24)
}

// RecoveryDays returns the calendar days from trough to recovery,
// or None for an episode that has not recovered.
func (c SwingCycle) RecoveryDays() optional.Option[int] {
	if c.RecoveryDate.IsNone() {
		return optional.None[int]()
	}

	days := int(c.RecoveryDate.Unwrap().Sub(c.TroughDate).Hours() / 24)

	return optional.Some(days)
}

// TotalCycleDays returns the calendar days of the full peak-to-recovery
// round trip, or None for an episode that has not recovered.
func (c SwingCycle) TotalCycleDays() optional.Option[int] {
	if c.RecoveryDate.IsNone() {
		return optional.None[int]()
	}

	days := int(c.RecoveryDate.Unwrap().Sub(c.PeakDate).Hours() / 24)

	return optional.Some(days)
}

// Severity buckets map cycle depth onto the labels the historical report uses.
type Severity string

const (
	SeverityCorrection     Severity = "correction_10_15"
	SeverityDeepCorrection Severity = "correction_15_20"
	SeverityBearMarket     Severity = "bear_market_20_30"
	SeverityCrash          Severity = "crash_30_plus"
)

// SeverityOf classifies a cycle by the magnitude of its drawdown.
func SeverityOf(c SwingCycle) Severity {
	depth := -c.Drawdown
	switch {
	case depth < 0.15:
		return SeverityCorrection
	case depth < 0.20:
		return SeverityDeepCorrection
	case depth < 0.30:
		return SeverityBearMarket
	default:
		return SeverityCrash
	}
}
