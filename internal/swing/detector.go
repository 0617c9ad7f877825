package swing

import (
	"sort"
	"time"

	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-advisor/internal/types"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
)

// Detector scans a full price history and emits every drawdown episode
// deeper than its threshold, ordered ascending by peak index.
type Detector struct {
	threshold float64
	rebound   float64
}

// NewDetector creates a detector with the given drawdown threshold and the
// default rebound reset ratio.
func NewDetector(threshold float64) *Detector {
	return NewDetectorWithRebound(threshold, DefaultReboundReset)
}

// NewDetectorWithRebound creates a detector with an explicit rebound reset ratio.
func NewDetectorWithRebound(threshold, rebound float64) *Detector {
	return &Detector{
		threshold: threshold,
		rebound:   rebound,
	}
}

// Detect segments rows into swing cycles. Rows must be sorted ascending by
// date with unique dates and positive closes; violations yield a
// MalformedInputError. Fewer than two rows yield an empty list.
func (d *Detector) Detect(rows []types.PriceRow) ([]types.SwingCycle, error) {
	if d.threshold <= 0 || d.threshold >= 1 {
		return nil, errors.Newf(errors.ErrCodeInvalidThreshold, "drawdown threshold must be in (0, 1), got %v", d.threshold)
	}

	if d.rebound <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidThreshold, "rebound reset ratio must be positive, got %v", d.rebound)
	}

	if err := ValidateRows(rows); err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return []types.SwingCycle{}, nil
	}

	tracker := NewTracker(d.threshold, d.rebound)
	episodes := make([]Episode, 0)

	for i, row := range rows {
		if episode, ok := tracker.Observe(i, row.Close); ok {
			episodes = append(episodes, episode)
		}
	}

	if episode, ok := tracker.Flush(); ok {
		episodes = append(episodes, episode)
	}

	cycles := make([]types.SwingCycle, 0, len(episodes))
	for _, episode := range episodes {
		cycles = append(cycles, resolveCycle(rows, episode))
	}

	// Emission order is already ascending by construction, but callers
	// must not depend on buffering order.
	sort.Slice(cycles, func(i, j int) bool {
		return cycles[i].PeakIndex < cycles[j].PeakIndex
	})

	return cycles, nil
}

// CurrentState replays rows through the tracker and reports only the
// in-progress cycle. The signal engine uses this for the drawdown gate.
func (d *Detector) CurrentState(rows []types.PriceRow) (OpenState, error) {
	if err := ValidateRows(rows); err != nil {
		return OpenState{}, err
	}

	tracker := NewTracker(d.threshold, d.rebound)
	for i, row := range rows {
		tracker.Observe(i, row.Close)
	}

	return tracker.Open(), nil
}

// ValidateRows checks the shared input contract: ascending unique dates and
// positive closing prices.
func ValidateRows(rows []types.PriceRow) error {
	for i, row := range rows {
		if row.Close <= 0 {
			return errors.Wrapf(errors.ErrCodeMalformedInput,
				errors.NewMalformedInputErrorf(i, "row %d has non-positive close %v", i, row.Close),
				"price rows rejected")
		}

		if i > 0 && !rows[i-1].Date.Before(row.Date) {
			return errors.Wrapf(errors.ErrCodeDataUnsorted,
				errors.NewMalformedInputErrorf(i, "row %d date %s is not after row %d", i, row.Date.Format("2006-01-02"), i-1),
				"price rows rejected")
		}
	}

	return nil
}

// resolveCycle turns a raw episode into a SwingCycle, scanning forward from
// the trough for the first close back at the peak. The forward scan is
// reporting only and never feeds back into detection.
func resolveCycle(rows []types.PriceRow, episode Episode) types.SwingCycle {
	cycle := types.SwingCycle{
		PeakIndex:     episode.PeakIndex,
		PeakDate:      rows[episode.PeakIndex].Date,
		PeakPrice:     episode.PeakPrice,
		TroughIndex:   episode.TroughIndex,
		TroughDate:    rows[episode.TroughIndex].Date,
		TroughPrice:   episode.TroughPrice,
		RecoveryIndex: optional.None[int](),
		RecoveryDate:  optional.None[time.Time](),
		RecoveryPrice: optional.None[float64](),
		Drawdown:      episode.Drawdown(),
	}

	for j := episode.TroughIndex; j < len(rows); j++ {
		if rows[j].Close >= episode.PeakPrice {
			cycle.RecoveryIndex = optional.Some(j)
			cycle.RecoveryDate = optional.Some(rows[j].Date)
			cycle.RecoveryPrice = optional.Some(rows[j].Close)

			break
		}
	}

	return cycle
}
