package types

import (
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"
)

type SwingCycleTestSuite struct {
	suite.Suite
}

func TestSwingCycleSuite(t *testing.T) {
	suite.Run(t, new(SwingCycleTestSuite))
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func (suite *SwingCycleTestSuite) TestCompletedCycleDurations() {
	cycle := SwingCycle{
		PeakDate:      date(2020, 1, 1),
		TroughDate:    date(2020, 2, 10),
		RecoveryDate:  optional.Some(date(2020, 5, 1)),
		RecoveryIndex: optional.Some(80),
		Drawdown:      -0.18,
	}

	suite.True(cycle.Completed())
	suite.Equal(40, cycle.DeclineDays())
	suite.Equal(81, cycle.RecoveryDays().Unwrap())
	suite.Equal(121, cycle.TotalCycleDays().Unwrap())
}

func (suite *SwingCycleTestSuite) TestOpenCycleHasNoRecoveryDurations() {
	cycle := SwingCycle{
		PeakDate:   date(2020, 1, 1),
		TroughDate: date(2020, 2, 10),
		Drawdown:   -0.12,
	}

	suite.False(cycle.Completed())
	suite.Equal(40, cycle.DeclineDays())
	suite.True(cycle.RecoveryDays().IsNone())
	suite.True(cycle.TotalCycleDays().IsNone())
}

func (suite *SwingCycleTestSuite) TestSeverityBuckets() {
	cases := []struct {
		drawdown float64
		severity Severity
	}{
		{-0.10, SeverityCorrection},
		{-0.149, SeverityCorrection},
		{-0.15, SeverityDeepCorrection},
		{-0.199, SeverityDeepCorrection},
		{-0.20, SeverityBearMarket},
		{-0.299, SeverityBearMarket},
		{-0.30, SeverityCrash},
		{-0.55, SeverityCrash},
	}

	for _, tc := range cases {
		suite.Equal(tc.severity, SeverityOf(SwingCycle{Drawdown: tc.drawdown}), "drawdown %.3f", tc.drawdown)
	}
}
