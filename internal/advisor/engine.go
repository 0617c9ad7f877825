// Package advisor blends the oscillator, moving-average and volatility
// readings into a five-level trading signal with position-aware advice.
package advisor

import (
	"math"

	"github.com/rxtech-lab/argo-advisor/internal/config"
	"github.com/rxtech-lab/argo-advisor/internal/indicator"
	"github.com/rxtech-lab/argo-advisor/internal/swing"
	"github.com/rxtech-lab/argo-advisor/internal/types"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
)

// minVolatilityRows is the minimum volatility history for a valid signal.
const minVolatilityRows = 5

// Engine computes signals from price and volatility history. It holds
// only the configuration and is safe to reuse across calls.
type Engine struct {
	cfg config.Config
}

// NewEngine creates a signal engine with the given configuration.
func NewEngine(cfg config.Config) *Engine {
	return &Engine{cfg: cfg}
}

// GenerateSignal computes the blended signal for the latest bar of the
// price history. It fails with an InsufficientDataError when the history
// cannot warm up the long moving average plus slack, and with coded
// errors when the rows are malformed.
func (e *Engine) GenerateSignal(prices, volatility []types.PriceRow) (types.SignalResult, error) {
	required := e.cfg.MovingAverage.LongPeriod + 5
	if len(prices) < required {
		return types.SignalResult{}, errors.NewInsufficientDataErrorf(required, len(prices), "prices",
			"need %d price rows to warm up the %d-bar long average, got %d",
			required, e.cfg.MovingAverage.LongPeriod, len(prices))
	}
	if len(volatility) < minVolatilityRows {
		return types.SignalResult{}, errors.NewInsufficientDataErrorf(minVolatilityRows, len(volatility), "volatility",
			"need %d volatility rows, got %d", minVolatilityRows, len(volatility))
	}

	if err := swing.ValidateRows(prices); err != nil {
		return types.SignalResult{}, err
	}
	if err := swing.ValidateRows(volatility); err != nil {
		return types.SignalResult{}, err
	}

	closes := types.Closes(prices)
	latest := len(closes) - 1

	rsiSeries := indicator.RSI(closes, e.cfg.Oscillator.Period)
	shortSeries := indicator.SMA(closes, e.cfg.MovingAverage.ShortPeriod)
	longSeries := indicator.SMA(closes, e.cfg.MovingAverage.LongPeriod)

	latestRSI := indicator.At(rsiSeries, latest)
	latestVol := volatility[len(volatility)-1].Close

	rsi := rsiScore(latestRSI, e.cfg.Oscillator.Oversold, e.cfg.Oscillator.Overbought)
	ma := maScore(closes[latest], indicator.At(shortSeries, latest), indicator.At(longSeries, latest))
	vol, rawVol := volScore(latestVol, e.cfg.Volatility)

	weights := e.cfg.Weights.Normalize()
	total := float64(rsi.Score)*weights.RSI +
		float64(ma.Score)*weights.MA +
		float64(vol.Score)*weights.Volatility

	detector := swing.NewDetectorWithRebound(e.cfg.Swing.DrawdownThreshold, e.cfg.Swing.ReboundReset)
	state, err := detector.CurrentState(prices)
	if err != nil {
		return types.SignalResult{}, err
	}

	signal := classify(total, rawVol, state.Drawdown, e.cfg.Swing.BuyGate)

	prev := closes[latest-1]
	result := types.SignalResult{
		Date:               prices[latest].Date,
		Signal:             signal,
		TotalScore:         total,
		Confidence:         confidence(rsi.Score, ma.Score, vol.Score),
		RSIScore:           rsi,
		MAScore:            ma,
		VolatilityScore:    vol,
		RawVolatilityScore: rawVol,
		Price:              closes[latest],
		PriceChange:        (closes[latest] - prev) / prev * 100,
		VolatilityValue:    latestVol,
		Drawdown:           state.Drawdown,
		ReferencePeak:      state.PeakPrice,
		Status:             types.MarketStatusForDrawdown(state.Drawdown),
		NoPositionAdvice:   noPositionAdvice(state.Drawdown, latestRSI, rawVol),
		HoldingAdvice:      holdingAdvice(state.Drawdown, latestRSI, rawVol),
	}

	return result, nil
}

// classify turns the blended total into the final signal. Volatility
// extremes override the blend in both directions, then the drawdown gate
// downgrades buys during shallow dips.
func classify(total float64, rawVol int, drawdown, buyGate float64) types.SignalType {
	var signal types.SignalType
	switch {
	case rawVol >= 4:
		if total >= 0 {
			signal = types.SignalTypeStrongBuy
		} else {
			signal = types.SignalTypeBuy
		}
	case rawVol <= -2:
		if total <= 0 {
			signal = types.SignalTypeStrongSell
		} else {
			signal = types.SignalTypeSell
		}
	case total >= 1.5:
		signal = types.SignalTypeStrongBuy
	case total >= 0.5:
		signal = types.SignalTypeBuy
	case total <= -1.5:
		signal = types.SignalTypeStrongSell
	case total <= -0.5:
		signal = types.SignalTypeSell
	default:
		signal = types.SignalTypeHold
	}

	if (signal == types.SignalTypeBuy || signal == types.SignalTypeStrongBuy) && drawdown > -buyGate {
		return types.SignalTypeHold
	}

	return signal
}

// confidence scores sub-score agreement and strength on a 0-100 scale.
func confidence(scores ...int) float64 {
	positive, negative := 0, 0
	absSum := 0.0
	for _, s := range scores {
		if s > 0 {
			positive++
		}
		if s < 0 {
			negative++
		}
		absSum += math.Abs(float64(s))
	}

	agreement := float64(max(positive, negative)) / float64(len(scores))
	avgStrength := absSum / float64(len(scores))

	return math.Min(agreement*50+(avgStrength/2)*50, 100)
}
