package profiling

import (
	"gocolumns/domain/table"
)

// ColumnSummary describes one column of a projection
type ColumnSummary struct {
	Name        string              `json:"name"`
	Type        table.ColumnType    `json:"type"`
	Count       int                 `json:"count"`   // non-missing cells
	Missing     int                 `json:"missing"` // missing cells
	MissingRate float64             `json:"missing_rate"`
	Numeric     *NumericSummary     `json:"numeric,omitempty"`
	Categorical *CategoricalSummary `json:"categorical,omitempty"`
}

// NumericSummary holds location and spread for a quantitative column.
// StdDev is the sample standard deviation and is NaN below two values.
// Skew is zero below three values or for a constant column.
type NumericSummary struct {
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Q25      float64 `json:"q25"`
	Median   float64 `json:"median"`
	Q75      float64 `json:"q75"`
	Max      float64 `json:"max"`
	Skew     float64 `json:"skew"`
	Outliers int     `json:"outliers"` // beyond 1.5 IQR
}

// CategoricalSummary holds the level counts of a categorical column
type CategoricalSummary struct {
	Unique int    `json:"unique"`
	Top    string `json:"top"`  // most frequent level, first seen wins ties
	Freq   int    `json:"freq"` // occurrences of Top
}
