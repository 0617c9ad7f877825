// Package swing segments a price history into drawdown episodes: a peak,
// a decline beyond a configured threshold, a trough, and an optional
// recovery back to the peak. Detection is strictly causal; every state
// transition uses only bars up to the current index.
package swing

// DefaultReboundReset is the rebound ratio that ends a tracked decline:
// once price recovers more than this fraction above the trough, the
// episode is considered finished and a fresh cycle starts at that bar.
const DefaultReboundReset = 0.5

// Episode is a closed or flushed drawdown candidate, expressed as indices
// into the observed sequence. The detector resolves indices into dates and
// fills the retrospective recovery fields.
type Episode struct {
	PeakIndex   int
	PeakPrice   float64
	TroughIndex int
	TroughPrice float64
}

// Drawdown returns the episode depth as a negative ratio of the peak.
func (e Episode) Drawdown() float64 {
	return (e.TroughPrice - e.PeakPrice) / e.PeakPrice
}

// OpenState describes the in-progress cycle after the last observed bar.
type OpenState struct {
	// PeakIndex and PeakPrice identify the running peak of the current cycle.
	PeakIndex int
	PeakPrice float64
	// TroughIndex and TroughPrice identify the lowest close since that peak.
	TroughIndex int
	TroughPrice float64
	// InDrawdown reports whether the decline has breached the threshold.
	InDrawdown bool
	// Drawdown is the latest close's decline from the running peak,
	// zero when the latest close set a new peak.
	Drawdown float64
}

// Tracker is the peak/trough state machine shared by the full historical
// scan and the current-cycle computation. It alternates between a normal
// state and an in-drawdown state entered when the decline from the running
// peak breaches the threshold, and it restarts the cycle on a new high or
// on a rebound beyond the reset ratio.
type Tracker struct {
	threshold float64
	rebound   float64

	started     bool
	peak        float64
	peakIndex   int
	trough      float64
	troughIndex int
	inDrawdown  bool
	// episodePeakIndex pins the local peak recorded when the threshold was
	// breached; the running peak cannot move while in drawdown, but the
	// episode must report the peak as of entry.
	episodePeakIndex int
	episodePeakPrice float64

	lastIndex int
	lastPrice float64
}

// NewTracker creates a tracker for the given drawdown threshold
// (fractional, e.g. 0.10) and rebound reset ratio.
func NewTracker(threshold, rebound float64) *Tracker {
	return &Tracker{
		threshold: threshold,
		rebound:   rebound,
	}
}

// Observe feeds the next bar to the state machine. When the bar closes the
// current episode (a new high or a rebound past the reset ratio) and the
// episode is deep enough, it is returned with ok=true. Shallower candidates
// are discarded silently.
func (t *Tracker) Observe(index int, price float64) (Episode, bool) {
	if !t.started {
		t.started = true
		t.reset(index, price)
		t.lastIndex, t.lastPrice = index, price

		return Episode{}, false
	}

	t.lastIndex, t.lastPrice = index, price

	var (
		closed Episode
		ok     bool
	)

	if price > t.peak {
		if t.inDrawdown {
			closed, ok = t.closeEpisode()
			t.inDrawdown = false
		}

		t.reset(index, price)
	} else if price < t.trough {
		t.trough = price
		t.troughIndex = index
	}

	if ok {
		// The new high already restarted the cycle; the remaining checks
		// operate on a zero drawdown and cannot fire.
		return closed, true
	}

	drawdown := (price - t.peak) / t.peak
	if drawdown <= -t.threshold && !t.inDrawdown {
		t.inDrawdown = true
		t.episodePeakIndex = t.peakIndex
		t.episodePeakPrice = t.peak
	}

	if t.inDrawdown && t.trough > 0 {
		recovery := (price - t.trough) / t.trough
		if recovery > t.rebound {
			closed, ok = t.closeEpisode()
			t.inDrawdown = false
			t.reset(index, price)
		}
	}

	return closed, ok
}

// Flush returns the still-open episode at end of data, if the tracker is in
// drawdown and the decline is deep enough against the episode peak.
func (t *Tracker) Flush() (Episode, bool) {
	if !t.inDrawdown {
		return Episode{}, false
	}

	return t.closeEpisode()
}

// Open reports the in-progress cycle after the last observed bar. The
// signal engine uses this to measure the current, possibly still-open
// drawdown without emitting a cycle list.
func (t *Tracker) Open() OpenState {
	if !t.started {
		return OpenState{}
	}

	drawdown := 0.0
	if t.peak > 0 {
		drawdown = (t.lastPrice - t.peak) / t.peak
	}

	if drawdown > 0 {
		drawdown = 0
	}

	return OpenState{
		PeakIndex:   t.peakIndex,
		PeakPrice:   t.peak,
		TroughIndex: t.troughIndex,
		TroughPrice: t.trough,
		InDrawdown:  t.inDrawdown,
		Drawdown:    drawdown,
	}
}

func (t *Tracker) closeEpisode() (Episode, bool) {
	episode := Episode{
		PeakIndex:   t.episodePeakIndex,
		PeakPrice:   t.episodePeakPrice,
		TroughIndex: t.troughIndex,
		TroughPrice: t.trough,
	}

	if episode.Drawdown() > -t.threshold {
		return Episode{}, false
	}

	return episode, true
}

func (t *Tracker) reset(index int, price float64) {
	t.peak = price
	t.peakIndex = index
	t.trough = price
	t.troughIndex = index
}
