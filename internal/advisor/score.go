package advisor

import (
	"fmt"

	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-advisor/internal/indicator"
	"github.com/rxtech-lab/argo-advisor/internal/types"
)

// Hard oscillator extremes that score independently of the configured bands.
const (
	rsiDeepOversold   = 20.0
	rsiDeepOverbought = 80.0
)

func rsiScore(value optional.Option[float64], oversold, overbought float64) types.IndicatorScore {
	v, err := value.Take()
	if err != nil {
		return types.IndicatorScore{
			Indicator:   types.IndicatorTypeRSI,
			Score:       0,
			Description: "oscillator has insufficient data",
		}
	}

	score := types.IndicatorScore{Indicator: types.IndicatorTypeRSI, Value: v}
	switch {
	case v < rsiDeepOversold:
		score.Score = 2
		score.Description = fmt.Sprintf("oscillator %.1f deeply oversold", v)
	case v < oversold:
		score.Score = 1
		score.Description = fmt.Sprintf("oscillator %.1f below the oversold band %.1f", v, oversold)
	case v > rsiDeepOverbought:
		score.Score = -2
		score.Description = fmt.Sprintf("oscillator %.1f deeply overbought", v)
	case v > overbought:
		score.Score = -1
		score.Description = fmt.Sprintf("oscillator %.1f above the overbought band %.1f", v, overbought)
	default:
		score.Description = fmt.Sprintf("oscillator %.1f neutral", v)
	}

	return score
}

func maScore(price float64, short, long optional.Option[float64]) types.IndicatorScore {
	shortV, shortErr := short.Take()
	longV, longErr := long.Take()
	if shortErr != nil || longErr != nil {
		return types.IndicatorScore{
			Indicator:   types.IndicatorTypeMA,
			Score:       0,
			Description: "moving averages have insufficient data",
		}
	}

	spread := indicator.SpreadPercent(short, long).TakeOr(0)
	score := types.IndicatorScore{Indicator: types.IndicatorTypeMA, Value: spread}

	bullish := shortV > longV
	above := price > shortV
	switch {
	case bullish && above:
		score.Score = 2
		score.Description = fmt.Sprintf("short average above long (spread %+.1f%%), price above short average", spread)
	case bullish:
		score.Score = 1
		score.Description = fmt.Sprintf("short average above long (spread %+.1f%%), price below short average", spread)
	case above:
		score.Score = -1
		score.Description = fmt.Sprintf("short average below long (spread %+.1f%%), price above short average", spread)
	default:
		score.Score = -2
		score.Description = fmt.Sprintf("short average below long (spread %+.1f%%), price below short average", spread)
	}

	return score
}

// volScore returns the clamped blending score and the raw regime score the
// override rules read.
func volScore(value float64, thresholds indicator.RegimeThresholds) (types.IndicatorScore, int) {
	raw := indicator.RegimeScore(value, thresholds)

	clamped := raw
	if clamped > 2 {
		clamped = 2
	}
	if clamped < -2 {
		clamped = -2
	}

	return types.IndicatorScore{
		Indicator:   types.IndicatorTypeVolatility,
		Value:       value,
		Score:       clamped,
		Description: fmt.Sprintf("volatility %.1f signals %s", value, indicator.RegimeLabel(raw)),
	}, raw
}
