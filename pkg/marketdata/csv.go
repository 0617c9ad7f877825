// Package marketdata loads price history from CSV files into the row
// shape the analysis engine consumes.
package marketdata

import (
	"os"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-advisor/internal/types"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
)

// csvRow is the on-disk record shape: a date plus a close, with optional
// open/high/low columns. Empty optional cells unmarshal to zero.
type csvRow struct {
	Date  string  `csv:"date"`
	Close float64 `csv:"close"`
	Open  float64 `csv:"open,omitempty"`
	High  float64 `csv:"high,omitempty"`
	Low   float64 `csv:"low,omitempty"`
}

// LoadCSV reads price rows from a CSV file with a date,close[,open,high,low]
// header. Rows are validated, deduplicated by date (duplicates are an
// error) and returned sorted ascending by date.
func LoadCSV(path string) ([]types.PriceRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeDataFileMissing, err, "failed to open price file %s", path)
	}
	defer file.Close()

	var records []csvRow
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeDataParseFailed, err, "failed to parse price file %s", path)
	}

	if len(records) == 0 {
		return nil, errors.Newf(errors.ErrCodeDataNotFound, "price file %s has no rows", path)
	}

	rows := make([]types.PriceRow, 0, len(records))
	for i, record := range records {
		date, err := time.Parse(time.DateOnly, record.Date)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeDataParseFailed,
				errors.NewMalformedInputErrorf(i, "unparseable date %q", record.Date),
				"bad row in %s", path)
		}
		if record.Close <= 0 {
			return nil, errors.Wrapf(errors.ErrCodeNonPositivePrice,
				errors.NewMalformedInputErrorf(i, "non-positive close %v", record.Close),
				"bad row in %s", path)
		}

		rows = append(rows, types.PriceRow{
			Date:  date,
			Close: record.Close,
			Open:  positiveOrNone(record.Open),
			High:  positiveOrNone(record.High),
			Low:   positiveOrNone(record.Low),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	for i := 1; i < len(rows); i++ {
		if rows[i].Date.Equal(rows[i-1].Date) {
			return nil, errors.Newf(errors.ErrCodeDuplicateDate,
				"duplicate date %s in %s", rows[i].Date.Format(time.DateOnly), path)
		}
	}

	return rows, nil
}

func positiveOrNone(v float64) optional.Option[float64] {
	if v <= 0 {
		return optional.None[float64]()
	}
	return optional.Some(v)
}
