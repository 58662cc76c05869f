package profiling

import (
	"fmt"

	"gocolumns/domain/table"
)

// DataProfiler summarizes the columns of a projection, like a describe() call
type DataProfiler struct{}

// NewDataProfiler creates a new data profiler
func NewDataProfiler() *DataProfiler {
	return &DataProfiler{}
}

// Describe summarizes every column of cs in order
func (dp *DataProfiler) Describe(cs *table.ColumnSet) ([]ColumnSummary, error) {
	summaries := make([]ColumnSummary, 0, len(cs.Columns))
	for i := range cs.Columns {
		s, err := dp.ProfileColumn(&cs.Columns[i])
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// ProfileColumn summarizes one column according to its current tag
func (dp *DataProfiler) ProfileColumn(c *table.Column) (ColumnSummary, error) {
	summary := ColumnSummary{
		Name:    c.Name,
		Type:    c.Type,
		Missing: c.MissingCount(),
	}
	summary.Count = len(c.Values) - summary.Missing
	if len(c.Values) > 0 {
		summary.MissingRate = float64(summary.Missing) / float64(len(c.Values))
	}

	if c.Type == table.Quantitative {
		data := make([]float64, 0, summary.Count)
		for _, v := range c.Values {
			if !v.Missing && v.Numeric {
				data = append(data, v.Number)
			}
		}
		numeric, err := summarizeNumeric(data)
		if err != nil {
			return ColumnSummary{}, fmt.Errorf("failed to summarize column %q: %w", c.Name, err)
		}
		summary.Numeric = numeric
		return summary, nil
	}

	levels := make([]string, 0, summary.Count)
	for _, v := range c.Values {
		if !v.Missing {
			levels = append(levels, v.Text)
		}
	}
	summary.Categorical = summarizeLevels(levels)
	return summary, nil
}
