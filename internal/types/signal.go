package types

import "time"

// SignalType is the five-level trading recommendation.
type SignalType string

const (
	SignalTypeStrongBuy  SignalType = "strong_buy"
	SignalTypeBuy        SignalType = "buy"
	SignalTypeHold       SignalType = "hold"
	SignalTypeSell       SignalType = "sell"
	SignalTypeStrongSell SignalType = "strong_sell"
)

// IndicatorType identifies the indicators the signal engine blends.
type IndicatorType string

const (
	IndicatorTypeRSI        IndicatorType = "rsi"
	IndicatorTypeMA         IndicatorType = "ma"
	IndicatorTypeEMA        IndicatorType = "ema"
	IndicatorTypeVolatility IndicatorType = "volatility"
)

// IndicatorScore is one indicator's contribution to the blended signal.
type IndicatorScore struct {
	// Indicator identifies which indicator produced the score.
	Indicator IndicatorType
	// Value is the underlying reading the score was derived from.
	Value float64
	// Score is the integer sub-score. Blended scores sit in [-2, 2];
	// the raw volatility score can reach 4 before clamping.
	Score int
	// Description is a human-readable account of the reading.
	Description string
}

// PositionStance distinguishes the two advice narratives.
type PositionStance string

const (
	// PositionStanceNone is advice for a reader with no current holding.
	PositionStanceNone PositionStance = "no_position"
	// PositionStanceHolding is advice for a reader already holding.
	PositionStanceHolding PositionStance = "holding"
)

// PositionAdvice is the stance-specific recommendation derived from the
// current drawdown depth and extreme indicator readings.
type PositionAdvice struct {
	Stance PositionStance
	Action SignalType
	Reason string
}

// SignalResult is the full outcome of one signal engine run. It is
// recomputed on every invocation and never persisted.
type SignalResult struct {
	// Date is the date of the latest price bar the signal was computed for.
	Date time.Time
	// Signal is the final five-level recommendation.
	Signal SignalType
	// TotalScore is the weighted blend of the sub-scores.
	TotalScore float64
	// Confidence is 0-100, driven by sub-score agreement and strength.
	Confidence float64

	// RSIScore, MAScore and VolatilityScore are the per-indicator sub-scores.
	RSIScore        IndicatorScore
	MAScore         IndicatorScore
	VolatilityScore IndicatorScore
	// RawVolatilityScore is the unclamped regime score used by the
	// override rules, in {-2, 0, 1, 2, 3, 4}.
	RawVolatilityScore int

	// Price is the latest closing price.
	Price float64
	// PriceChange is the one-day percentage change of the close.
	PriceChange float64
	// VolatilityValue is the latest volatility index reading.
	VolatilityValue float64

	// Drawdown is the decline of the latest close from the open cycle's
	// peak, as a negative ratio. Zero when the latest close is the peak.
	Drawdown float64
	// ReferencePeak is the peak price the drawdown is measured against.
	ReferencePeak float64
	// Status is the drawdown band the market currently sits in.
	Status MarketStatus

	// NoPositionAdvice and HoldingAdvice are the two stance narratives.
	NoPositionAdvice PositionAdvice
	HoldingAdvice    PositionAdvice
}
