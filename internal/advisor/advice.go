package advisor

import (
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-advisor/internal/types"
)

// Drawdown tiers for the stance ladders.
const (
	tierCrash      = -0.20
	tierBear       = -0.15
	tierCorrection = -0.10
	tierPullback   = -0.05
)

// noPositionAdvice builds the narrative for a reader with no current
// holding. The base action comes from the drawdown ladder; extreme
// oscillator and volatility readings upgrade it.
func noPositionAdvice(drawdown float64, rsi optional.Option[float64], rawVol int) types.PositionAdvice {
	advice := types.PositionAdvice{Stance: types.PositionStanceNone}

	switch {
	case drawdown <= tierCrash:
		advice.Action = types.SignalTypeStrongBuy
		advice.Reason = "decline beyond 20%, historically a strong accumulation zone, buy in tranches"
	case drawdown <= tierBear:
		advice.Action = types.SignalTypeBuy
		advice.Reason = "deep correction beyond 15%, start building a position in tranches"
	case drawdown <= tierCorrection:
		advice.Action = types.SignalTypeBuy
		advice.Reason = "correction beyond 10%, historically a reasonable entry zone"
	case drawdown <= tierPullback:
		advice.Action = types.SignalTypeHold
		advice.Reason = "minor pullback, wait for a correction of 10% or more before entering"
	default:
		advice.Action = types.SignalTypeHold
		advice.Reason = "market near its highs, avoid chasing, wait for a pullback"
	}

	if rawVol >= 4 && drawdown <= tierCorrection {
		advice.Action = types.SignalTypeStrongBuy
		advice.Reason = "extreme fear during a correction beyond 10%, historically among the best entry points"
		return advice
	}

	if v, err := rsi.Take(); err == nil && v < rsiDeepOversold && advice.Action == types.SignalTypeBuy {
		advice.Action = types.SignalTypeStrongBuy
		advice.Reason = "correction with a deeply oversold oscillator, favor aggressive tranche buying"
	}

	return advice
}

// holdingAdvice builds the narrative for a reader already holding.
func holdingAdvice(drawdown float64, rsi optional.Option[float64], rawVol int) types.PositionAdvice {
	advice := types.PositionAdvice{Stance: types.PositionStanceHolding}

	switch {
	case drawdown <= tierCrash:
		advice.Action = types.SignalTypeStrongBuy
		advice.Reason = "decline beyond 20%, hold and average down in tranches, do not capitulate"
	case drawdown <= tierBear:
		advice.Action = types.SignalTypeBuy
		advice.Reason = "deep correction, hold and consider adding on further weakness"
	case drawdown <= tierCorrection:
		advice.Action = types.SignalTypeHold
		advice.Reason = "correction in progress, hold existing position through it"
	case drawdown <= tierPullback:
		advice.Action = types.SignalTypeHold
		advice.Reason = "minor pullback, keep holding"
	default:
		advice.Action = types.SignalTypeHold
		advice.Reason = "market near its highs, keep holding, consider taking partial profit into strength"
	}

	if v, err := rsi.Take(); err == nil && v > rsiDeepOverbought && drawdown > tierPullback {
		advice.Action = types.SignalTypeSell
		advice.Reason = "deeply overbought near the highs, trim part of the position"
		return advice
	}

	if rawVol <= -2 && drawdown > tierPullback {
		advice.Action = types.SignalTypeSell
		advice.Reason = "extreme complacency near the highs, reduce exposure"
	}

	return advice
}
