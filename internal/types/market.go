package types

import (
	"time"

	"github.com/moznion/go-optional"
)

// PriceRow is a single end-of-day bar for an index or a volatility index.
// Rows are ordered ascending by date with unique dates and are immutable
// during analysis.
type PriceRow struct {
	// Date is the calendar date of the bar.
	Date time.Time
	// Close is the closing value. Always positive.
	Close float64
	// Open is the opening value, when the data source provides it.
	Open optional.Option[float64]
	// High is the intraday high, when the data source provides it.
	High optional.Option[float64]
	// Low is the intraday low, when the data source provides it.
	Low optional.Option[float64]
}

// Closes extracts the closing values of a row sequence in order.
func Closes(rows []PriceRow) []float64 {
	closes := make([]float64, len(rows))
	for i, row := range rows {
		closes[i] = row.Close
	}

	return closes
}

// MarketStatus classifies how far the latest close sits below its reference peak.
type MarketStatus string

const (
	// MarketStatusNearHigh means the drawdown is shallower than 5%.
	MarketStatusNearHigh MarketStatus = "near_high"
	// MarketStatusPullback means a 5-10% decline.
	MarketStatusPullback MarketStatus = "pullback"
	// MarketStatusCorrection means a 10-15% decline.
	MarketStatusCorrection MarketStatus = "correction"
	// MarketStatusDeepCorrection means a 15-20% decline.
	MarketStatusDeepCorrection MarketStatus = "deep_correction"
	// MarketStatusBearMarket means a 20-30% decline.
	MarketStatusBearMarket MarketStatus = "bear_market"
	// MarketStatusCrash means a decline beyond 30%.
	MarketStatusCrash MarketStatus = "crash"
)

// MarketStatusForDrawdown maps a drawdown ratio (negative, e.g. -0.12) to its status band.
func MarketStatusForDrawdown(drawdown float64) MarketStatus {
	switch {
	case drawdown >= -0.05:
		return MarketStatusNearHigh
	case drawdown >= -0.10:
		return MarketStatusPullback
	case drawdown >= -0.15:
		return MarketStatusCorrection
	case drawdown >= -0.20:
		return MarketStatusDeepCorrection
	case drawdown >= -0.30:
		return MarketStatusBearMarket
	default:
		return MarketStatusCrash
	}
}
