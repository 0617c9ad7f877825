package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type EMATestSuite struct {
	suite.Suite
}

func TestEMASuite(t *testing.T) {
	suite.Run(t, new(EMATestSuite))
}

func (suite *EMATestSuite) TestSeedIsFirstValue() {
	values := []float64{42, 43, 44}
	ema := EMA(values, 10)
	suite.InDelta(42.0, ema[0], 1e-12)
}

func (suite *EMATestSuite) TestRecurrence() {
	values := []float64{10, 20, 30}
	period := 3
	multiplier := 2.0 / (float64(period) + 1.0)

	ema := EMA(values, period)

	expected1 := (values[1]-values[0])*multiplier + values[0]
	expected2 := (values[2]-expected1)*multiplier + expected1

	suite.InDelta(expected1, ema[1], 1e-9)
	suite.InDelta(expected2, ema[2], 1e-9)
}

func (suite *EMATestSuite) TestConstantInputStaysConstant() {
	values := []float64{7, 7, 7, 7, 7}
	ema := EMA(values, 4)

	for _, v := range ema {
		suite.InDelta(7.0, v, 1e-12)
	}
}

func (suite *EMATestSuite) TestEmptyInput() {
	suite.Empty(EMA(nil, 5))
}

func (suite *EMATestSuite) TestDefinedForEveryIndex() {
	values := []float64{1, 2, 3, 4, 5}
	ema := EMA(values, 20)
	suite.Len(ema, len(values))
}
