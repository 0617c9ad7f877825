package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RSITestSuite struct {
	suite.Suite
}

func TestRSISuite(t *testing.T) {
	suite.Run(t, new(RSITestSuite))
}

func (suite *RSITestSuite) TestWarmupEntriesAreNone() {
	values := make([]float64, 20)
	for i := range values {
		values[i] = float64(100 + i)
	}

	series := RSI(values, 14)

	for i := 0; i < 14; i++ {
		suite.True(series[i].IsNone(), "index %d should be inside warm-up", i)
	}
	suite.True(series[14].IsSome())
}

func (suite *RSITestSuite) TestMonotonicIncreaseIsHundred() {
	values := make([]float64, 30)
	for i := range values {
		values[i] = 100 + float64(i)*2
	}

	series := RSI(values, 14)

	for i := 14; i < len(series); i++ {
		suite.True(series[i].IsSome())
		suite.InDelta(100.0, series[i].Unwrap(), 1e-9)
	}
}

func (suite *RSITestSuite) TestMonotonicDecreaseIsZero() {
	values := make([]float64, 30)
	for i := range values {
		values[i] = 1000 - float64(i)*3
	}

	series := RSI(values, 14)

	for i := 14; i < len(series); i++ {
		suite.True(series[i].IsSome())
		suite.InDelta(0.0, series[i].Unwrap(), 1e-9)
	}
}

func (suite *RSITestSuite) TestBoundedBetweenZeroAndHundred() {
	values := []float64{44, 47, 45, 50, 48, 52, 49, 53, 51, 55, 50, 54, 52, 56, 53, 57, 54}

	series := RSI(values, 14)

	for i := 14; i < len(series); i++ {
		v := series[i].Unwrap()
		suite.GreaterOrEqual(v, 0.0)
		suite.LessOrEqual(v, 100.0)
	}
}

func (suite *RSITestSuite) TestWilderSeedValue() {
	// One big gain then flat: seed average gain is 10/period, no losses.
	values := []float64{100, 110, 110, 110, 110}
	series := RSI(values, 4)

	suite.True(series[4].IsSome())
	suite.InDelta(100.0, series[4].Unwrap(), 1e-9)
}

func (suite *RSITestSuite) TestInputTooShortAllNone() {
	values := []float64{1, 2, 3}
	series := RSI(values, 14)

	suite.Len(series, len(values))
	for _, entry := range series {
		suite.True(entry.IsNone())
	}

	// Exactly period values is still too short: changes start at index 1.
	series = RSI([]float64{1, 2, 3, 4}, 4)
	for _, entry := range series {
		suite.True(entry.IsNone())
	}
}

func (suite *RSITestSuite) TestNonPositivePeriodAllNone() {
	series := RSI([]float64{1, 2, 3, 4, 5}, 0)
	for _, entry := range series {
		suite.True(entry.IsNone())
	}
}
