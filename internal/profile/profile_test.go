package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-advisor/internal/types"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
)

type AnalyzeTestSuite struct {
	suite.Suite
}

func TestAnalyzeSuite(t *testing.T) {
	suite.Run(t, new(AnalyzeTestSuite))
}

func day(i int) time.Time {
	return time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
}

func priceRows(closes []float64) []types.PriceRow {
	rows := make([]types.PriceRow, len(closes))
	for i, c := range closes {
		rows[i] = types.PriceRow{Date: day(i), Close: c}
	}
	return rows
}

// Two cycles: 120 down to 96 (recovered at the 130 bar) and 130 down to
// 110 (still open at the end of the data).
func (suite *AnalyzeTestSuite) fixture() ([]types.PriceRow, []types.PriceRow) {
	prices := priceRows([]float64{100, 110, 120, 108, 96, 130, 125, 110, 117})

	vol := make([]types.PriceRow, 0, len(prices))
	for i := range prices {
		if i == 4 {
			// No volatility print on the first trough date.
			continue
		}
		vol = append(vol, types.PriceRow{Date: day(i), Close: 20 + float64(i)})
	}

	return prices, vol
}

func (suite *AnalyzeTestSuite) params() Params {
	return Params{
		RSIPeriod:         2,
		ShortMAPeriod:     2,
		LongMAPeriod:      3,
		DrawdownThreshold: 0.10,
	}
}

func (suite *AnalyzeTestSuite) TestDetectsCycles() {
	prices, vol := suite.fixture()

	analysis, err := Analyze(prices, vol, suite.params())
	suite.Require().NoError(err)
	suite.Require().Len(analysis.Cycles, 2)

	first := analysis.Cycles[0]
	suite.Equal(2, first.PeakIndex)
	suite.InDelta(120, first.PeakPrice, 1e-9)
	suite.Equal(4, first.TroughIndex)
	suite.InDelta(-0.20, first.Drawdown, 1e-9)
	suite.True(first.Completed())
	suite.Equal(5, first.RecoveryIndex.Unwrap())

	second := analysis.Cycles[1]
	suite.Equal(5, second.PeakIndex)
	suite.InDelta(130, second.PeakPrice, 1e-9)
	suite.False(second.Completed())
}

func (suite *AnalyzeTestSuite) TestSampleCountsHonorMissingReadings() {
	prices, vol := suite.fixture()

	analysis, err := Analyze(prices, vol, suite.params())
	suite.Require().NoError(err)

	peakRSI, err := analysis.PeakStats.RSI.Take()
	suite.Require().NoError(err)
	suite.Equal(2, peakRSI.Count)

	// The first trough date has no volatility row, so only the second
	// trough contributes a volatility sample while both keep their
	// oscillator and spread samples.
	troughVol, err := analysis.TroughStats.Volatility.Take()
	suite.Require().NoError(err)
	suite.Equal(1, troughVol.Count)
	suite.InDelta(27, troughVol.Median, 1e-9)

	troughRSI, err := analysis.TroughStats.RSI.Take()
	suite.Require().NoError(err)
	suite.Equal(2, troughRSI.Count)

	troughSpread, err := analysis.TroughStats.MASpread.Take()
	suite.Require().NoError(err)
	suite.Equal(2, troughSpread.Count)
}

func (suite *AnalyzeTestSuite) TestDrawdownStats() {
	prices, vol := suite.fixture()

	analysis, err := Analyze(prices, vol, suite.params())
	suite.Require().NoError(err)

	stats, err := analysis.DrawdownStats.Take()
	suite.Require().NoError(err)
	suite.Equal(2, stats.Count)
	suite.InDelta(-0.1769230769, stats.Mean, 1e-9)
	suite.InDelta(-0.20, stats.Min, 1e-9)
}

func (suite *AnalyzeTestSuite) TestSeverityBuckets() {
	prices, vol := suite.fixture()

	analysis, err := Analyze(prices, vol, suite.params())
	suite.Require().NoError(err)

	bear, ok := analysis.BySeverity[types.SeverityBearMarket]
	suite.Require().True(ok)
	suite.Equal(1, bear.Count)
	suite.InDelta(-0.20, bear.AvgDrawdown, 1e-9)
	suite.InDelta(2, bear.AvgDeclineDays, 1e-9)
	suite.InDelta(1, bear.AvgRecoveryDays.Unwrap(), 1e-9)

	deep, ok := analysis.BySeverity[types.SeverityDeepCorrection]
	suite.Require().True(ok)
	suite.Equal(1, deep.Count)
	suite.True(deep.AvgRecoveryDays.IsNone())
}

func (suite *AnalyzeTestSuite) TestRecommendationPresent() {
	prices, vol := suite.fixture()

	analysis, err := Analyze(prices, vol, suite.params())
	suite.Require().NoError(err)

	rec, err := analysis.Recommendation.Take()
	suite.Require().NoError(err)
	suite.GreaterOrEqual(rec.Oversold.Value, 20.0)
	suite.LessOrEqual(rec.Oversold.Value, 45.0)
	suite.Contains(rec.Oversold.Basis, "median")
}

func (suite *AnalyzeTestSuite) TestRecommendationNoneWithoutVolatility() {
	prices, _ := suite.fixture()

	analysis, err := Analyze(prices, nil, suite.params())
	suite.Require().NoError(err)
	suite.True(analysis.Recommendation.IsNone())
	suite.True(analysis.PeakStats.Volatility.IsNone())
}

func (suite *AnalyzeTestSuite) TestNoCycles() {
	prices := priceRows([]float64{100, 101, 102, 103})

	analysis, err := Analyze(prices, nil, suite.params())
	suite.Require().NoError(err)
	suite.Empty(analysis.Cycles)
	suite.True(analysis.DrawdownStats.IsNone())
	suite.Empty(analysis.BySeverity)
}

func (suite *AnalyzeTestSuite) TestInvalidParams() {
	prices, vol := suite.fixture()

	bad := suite.params()
	bad.ShortMAPeriod = 10
	bad.LongMAPeriod = 5

	_, err := Analyze(prices, vol, bad)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))

	bad = suite.params()
	bad.RSIPeriod = 0
	_, err = Analyze(prices, vol, bad)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))
}
