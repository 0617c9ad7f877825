package advisor

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-advisor/internal/types"
)

type AdviceTestSuite struct {
	suite.Suite
}

func TestAdviceSuite(t *testing.T) {
	suite.Run(t, new(AdviceTestSuite))
}

func neutralRSI() optional.Option[float64] {
	return optional.Some(50.0)
}

func (suite *AdviceTestSuite) TestNoPositionLadder() {
	cases := []struct {
		drawdown float64
		action   types.SignalType
	}{
		{-0.25, types.SignalTypeStrongBuy},
		{-0.20, types.SignalTypeStrongBuy},
		{-0.17, types.SignalTypeBuy},
		{-0.12, types.SignalTypeBuy},
		{-0.07, types.SignalTypeHold},
		{-0.02, types.SignalTypeHold},
		{0, types.SignalTypeHold},
	}

	for _, tc := range cases {
		advice := noPositionAdvice(tc.drawdown, neutralRSI(), 0)
		suite.Equal(tc.action, advice.Action, "drawdown %.2f", tc.drawdown)
		suite.Equal(types.PositionStanceNone, advice.Stance)
		suite.NotEmpty(advice.Reason)
	}
}

func (suite *AdviceTestSuite) TestNoPositionExtremeFearUpgrade() {
	advice := noPositionAdvice(-0.12, neutralRSI(), 4)
	suite.Equal(types.SignalTypeStrongBuy, advice.Action)
	suite.Contains(advice.Reason, "extreme fear")

	// Shallow dips do not qualify even in extreme fear.
	advice = noPositionAdvice(-0.04, neutralRSI(), 4)
	suite.Equal(types.SignalTypeHold, advice.Action)
}

func (suite *AdviceTestSuite) TestNoPositionOversoldUpgrade() {
	advice := noPositionAdvice(-0.12, optional.Some(15.0), 0)
	suite.Equal(types.SignalTypeStrongBuy, advice.Action)
	suite.Contains(advice.Reason, "oversold")

	// Missing oscillator leaves the ladder action in place.
	advice = noPositionAdvice(-0.12, optional.None[float64](), 0)
	suite.Equal(types.SignalTypeBuy, advice.Action)
}

func (suite *AdviceTestSuite) TestHoldingLadder() {
	cases := []struct {
		drawdown float64
		action   types.SignalType
	}{
		{-0.25, types.SignalTypeStrongBuy},
		{-0.17, types.SignalTypeBuy},
		{-0.12, types.SignalTypeHold},
		{-0.07, types.SignalTypeHold},
		{0, types.SignalTypeHold},
	}

	for _, tc := range cases {
		advice := holdingAdvice(tc.drawdown, neutralRSI(), 0)
		suite.Equal(tc.action, advice.Action, "drawdown %.2f", tc.drawdown)
		suite.Equal(types.PositionStanceHolding, advice.Stance)
		suite.NotEmpty(advice.Reason)
	}
}

func (suite *AdviceTestSuite) TestHoldingTrimsWhenOverboughtNearHighs() {
	advice := holdingAdvice(-0.01, optional.Some(85.0), 0)
	suite.Equal(types.SignalTypeSell, advice.Action)
	suite.Contains(advice.Reason, "overbought")

	// Deep in a correction the overbought trim does not apply.
	advice = holdingAdvice(-0.18, optional.Some(85.0), 0)
	suite.Equal(types.SignalTypeBuy, advice.Action)
}

func (suite *AdviceTestSuite) TestHoldingReducesOnExtremeComplacency() {
	advice := holdingAdvice(-0.01, neutralRSI(), -2)
	suite.Equal(types.SignalTypeSell, advice.Action)
	suite.Contains(advice.Reason, "complacency")
}
