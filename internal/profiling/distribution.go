package profiling

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// summarizeNumeric computes the quantitative summary of non-missing values
func summarizeNumeric(data []float64) (*NumericSummary, error) {
	if len(data) == 0 {
		return nil, nil
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return nil, err
	}

	min, err := stats.Min(data)
	if err != nil {
		return nil, err
	}

	max, err := stats.Max(data)
	if err != nil {
		return nil, err
	}

	median, err := stats.Median(data)
	if err != nil {
		return nil, err
	}

	// quartiles by empirical CDF interpolation; stats.Percentile errors on short samples
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	q25 := stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	q75 := stat.Quantile(0.75, stat.LinInterp, sorted, nil)

	stdDev := math.NaN()
	if len(data) > 1 {
		if stdDev, err = stats.StandardDeviationSample(data); err != nil {
			return nil, err
		}
	}

	skew := 0.0
	if len(data) >= 3 && stdDev > 0 {
		skew = stat.Skew(data, nil)
	}

	return &NumericSummary{
		Mean:     mean,
		StdDev:   stdDev,
		Min:      min,
		Q25:      q25,
		Median:   median,
		Q75:      q75,
		Max:      max,
		Skew:     skew,
		Outliers: countOutliers(data, q25, q75),
	}, nil
}

// countOutliers counts values outside 1.5 IQR of the quartiles
func countOutliers(data []float64, q25, q75 float64) int {
	iqr := q75 - q25
	lower, upper := q25-1.5*iqr, q75+1.5*iqr

	count := 0
	for _, x := range data {
		if x < lower || x > upper {
			count++
		}
	}
	return count
}

// summarizeLevels counts category levels in first-seen order
func summarizeLevels(levels []string) *CategoricalSummary {
	if len(levels) == 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, l := range levels {
		if counts[l] == 0 {
			order = append(order, l)
		}
		counts[l]++
	}

	summary := &CategoricalSummary{Unique: len(order)}
	for _, l := range order {
		if counts[l] > summary.Freq {
			summary.Top = l
			summary.Freq = counts[l]
		}
	}
	return summary
}
