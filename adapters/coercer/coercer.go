package coercer

import (
	"math"
	"strconv"
	"strings"

	"gocolumns/domain/core"
	"gocolumns/domain/table"
)

// DefaultMissingSentinels are the cell spellings treated as "no value"
var DefaultMissingSentinels = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None", "n/a",
	"nan", "null",
}

// TypeCoercer turns raw cell text into typed values with deterministic rules
type TypeCoercer struct {
	config  CoercionConfig
	missing map[string]bool
}

// CoercionConfig defines the coercion thresholds and rules
type CoercionConfig struct {
	// NumericThreshold is the share of non-missing cells that must parse as
	// numbers before a column with stray tokens is rejected instead of being
	// classed categorical.
	NumericThreshold float64  `json:"numeric_threshold"`
	MissingSentinels []string `json:"missing_sentinels"`
	TrimSpace        bool     `json:"trim_space"`
}

// DefaultCoercionConfig returns sensible defaults
func DefaultCoercionConfig() CoercionConfig {
	sentinels := make([]string, len(DefaultMissingSentinels))
	copy(sentinels, DefaultMissingSentinels)
	return CoercionConfig{
		NumericThreshold: 0.8,
		MissingSentinels: sentinels,
		TrimSpace:        true,
	}
}

// NewTypeCoercer creates a coercer with the given config
func NewTypeCoercer(config CoercionConfig) *TypeCoercer {
	missing := make(map[string]bool, len(config.MissingSentinels)+1)
	missing[""] = true
	for _, s := range config.MissingSentinels {
		missing[s] = true
	}
	return &TypeCoercer{config: config, missing: missing}
}

// Config returns the rules this coercer applies
func (c *TypeCoercer) Config() CoercionConfig {
	return c.config
}

// IsMissing reports whether raw is one of the missing sentinels
func (c *TypeCoercer) IsMissing(raw string) bool {
	return c.missing[c.clean(raw)]
}

// CoerceValue converts one cell. Numbers keep their source text. A cell
// spelling NaN is missing even when the sentinels do not list it.
func (c *TypeCoercer) CoerceValue(raw string) table.Value {
	s := c.clean(raw)
	if c.missing[s] {
		return table.MissingValue()
	}
	if n, ok := parseNumeric(s); ok {
		if math.IsNaN(n) {
			return table.MissingValue()
		}
		return table.NumberValue(s, n)
	}
	return table.TextValue(s)
}

// CoerceColumn converts a column of raw cells and infers its tag: every
// non-missing cell numeric gives Quantitative, and a column with no values
// at all is Quantitative when it has rows. A column whose numeric share is at
// or above the threshold but short of all cells is a format error.
func (c *TypeCoercer) CoerceColumn(name string, raw []string) (table.ColumnType, []table.Value, error) {
	values := c.coerceAll(raw)
	analysis := c.analyze(values)

	if analysis.RecommendedType == table.Categorical &&
		analysis.NumericCount > 0 &&
		analysis.NumericRatio >= c.config.NumericThreshold {
		return "", nil, core.NewFormatError(name, analysis.FirstText, analysis.FirstTextRow+1)
	}
	return analysis.RecommendedType, values, nil
}

// AnalyzeTypeDistribution summarizes how the cells of a column coerce
func (c *TypeCoercer) AnalyzeTypeDistribution(raw []string) TypeAnalysis {
	return c.analyze(c.coerceAll(raw))
}

func (c *TypeCoercer) coerceAll(raw []string) []table.Value {
	values := make([]table.Value, len(raw))
	for i, cell := range raw {
		values[i] = c.CoerceValue(cell)
	}
	return values
}

func (c *TypeCoercer) analyze(values []table.Value) TypeAnalysis {
	analysis := TypeAnalysis{TotalCount: len(values), FirstTextRow: -1}
	for i, v := range values {
		if v.Missing {
			continue
		}
		analysis.ValidCount++
		if v.Numeric {
			analysis.NumericCount++
		} else if analysis.FirstTextRow < 0 {
			analysis.FirstTextRow = i
			analysis.FirstText = v.Text
		}
	}
	if analysis.ValidCount > 0 {
		analysis.NumericRatio = float64(analysis.NumericCount) / float64(analysis.ValidCount)
	}
	analysis.RecommendedType = c.determineType(analysis)
	return analysis
}

func (c *TypeCoercer) determineType(analysis TypeAnalysis) table.ColumnType {
	if analysis.ValidCount == 0 {
		if analysis.TotalCount > 0 {
			return table.Quantitative
		}
		return table.Categorical
	}
	if analysis.NumericCount == analysis.ValidCount {
		return table.Quantitative
	}
	return table.Categorical
}

func (c *TypeCoercer) clean(raw string) string {
	if c.config.TrimSpace {
		return strings.TrimSpace(raw)
	}
	return raw
}

// parseNumeric accepts plain decimal and scientific notation
func parseNumeric(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// TypeAnalysis contains the results of type distribution analysis
type TypeAnalysis struct {
	TotalCount      int              `json:"total_count"`
	ValidCount      int              `json:"valid_count"`
	NumericCount    int              `json:"numeric_count"`
	NumericRatio    float64          `json:"numeric_ratio"`
	FirstText       string           `json:"first_text,omitempty"`
	FirstTextRow    int              `json:"first_text_row"`
	RecommendedType table.ColumnType `json:"recommended_type"`
}
