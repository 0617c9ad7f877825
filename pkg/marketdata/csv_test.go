package marketdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-advisor/pkg/errors"
)

type CSVTestSuite struct {
	suite.Suite

	dir string
}

func TestCSVSuite(t *testing.T) {
	suite.Run(t, new(CSVTestSuite))
}

func (suite *CSVTestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()
}

func (suite *CSVTestSuite) writeFile(name, content string) string {
	path := filepath.Join(suite.dir, name)
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (suite *CSVTestSuite) TestLoadSortsByDate() {
	path := suite.writeFile("prices.csv", `date,close
2020-01-03,102.5
2020-01-01,100
2020-01-02,101
`)

	rows, err := LoadCSV(path)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)

	suite.Equal("2020-01-01", rows[0].Date.Format("2006-01-02"))
	suite.InDelta(100, rows[0].Close, 1e-9)
	suite.Equal("2020-01-03", rows[2].Date.Format("2006-01-02"))
	suite.InDelta(102.5, rows[2].Close, 1e-9)
}

func (suite *CSVTestSuite) TestOptionalColumns() {
	path := suite.writeFile("prices.csv", `date,close,open,high,low
2020-01-01,100,99,101,98
2020-01-02,101,0,0,0
`)

	rows, err := LoadCSV(path)
	suite.Require().NoError(err)

	suite.InDelta(99, rows[0].Open.Unwrap(), 1e-9)
	suite.InDelta(101, rows[0].High.Unwrap(), 1e-9)
	suite.True(rows[1].Open.IsNone())
	suite.True(rows[1].Low.IsNone())
}

func (suite *CSVTestSuite) TestMissingFile() {
	_, err := LoadCSV(filepath.Join(suite.dir, "absent.csv"))
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeDataFileMissing))
}

func (suite *CSVTestSuite) TestEmptyFile() {
	path := suite.writeFile("prices.csv", "date,close\n")

	_, err := LoadCSV(path)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeDataNotFound))
}

func (suite *CSVTestSuite) TestBadDate() {
	path := suite.writeFile("prices.csv", `date,close
01/02/2020,100
`)

	_, err := LoadCSV(path)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeDataParseFailed))
	suite.True(errors.IsMalformedInputError(err))
}

func (suite *CSVTestSuite) TestNonPositiveClose() {
	path := suite.writeFile("prices.csv", `date,close
2020-01-01,100
2020-01-02,-5
`)

	_, err := LoadCSV(path)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeNonPositivePrice))
}

func (suite *CSVTestSuite) TestDuplicateDate() {
	path := suite.writeFile("prices.csv", `date,close
2020-01-01,100
2020-01-01,101
`)

	_, err := LoadCSV(path)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeDuplicateDate))
}
