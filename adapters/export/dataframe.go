package export

import (
	"fmt"
	"strconv"

	"gocolumns/domain/table"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

const gotaMissing = "NaN"

// ToDataFrame copies a projection into a gota DataFrame. The row keys become
// the first column; quantitative columns are Float series and categorical
// ones String series, with missing cells as NaN. Repeated column names are
// suffixed by gota.
func ToDataFrame(cs *table.ColumnSet) (dataframe.DataFrame, error) {
	cols := make([]series.Series, 0, len(cs.Columns)+1)

	keys := make([]string, len(cs.Keys))
	for i, k := range cs.Keys {
		keys[i] = k.String()
	}
	cols = append(cols, series.New(keys, series.String, cs.IndexName))

	for _, c := range cs.Columns {
		cols = append(cols, toSeries(c))
	}

	df := dataframe.New(cols...)
	if df.Err != nil {
		return df, fmt.Errorf("failed to build dataframe: %w", df.Err)
	}
	return df, nil
}

func toSeries(c table.Column) series.Series {
	cells := make([]string, len(c.Values))
	if c.Type == table.Quantitative {
		for i, v := range c.Values {
			if v.Missing || !v.Numeric {
				cells[i] = gotaMissing
				continue
			}
			cells[i] = strconv.FormatFloat(v.Number, 'g', -1, 64)
		}
		return series.New(cells, series.Float, c.Name)
	}

	for i, v := range c.Values {
		if v.Missing {
			cells[i] = gotaMissing
			continue
		}
		cells[i] = v.Text
	}
	return series.New(cells, series.String, c.Name)
}
