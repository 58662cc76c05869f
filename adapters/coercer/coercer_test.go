package coercer

import (
	"testing"

	"gocolumns/domain/core"
	"gocolumns/domain/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceValue(t *testing.T) {
	c := NewTypeCoercer(DefaultCoercionConfig())

	tests := []struct {
		name    string
		raw     string
		missing bool
		numeric bool
		number  float64
		text    string
	}{
		{"integer", "25", false, true, 25, "25"},
		{"decimal", "3.75", false, true, 3.75, "3.75"},
		{"negative scientific", "-1.5e3", false, true, -1500, "-1.5e3"},
		{"padded number", "  42 ", false, true, 42, "42"},
		{"empty", "", true, false, 0, ""},
		{"NA sentinel", "NA", true, false, 0, ""},
		{"NaN sentinel", "NaN", true, false, 0, ""},
		{"null sentinel", "null", true, false, 0, ""},
		{"whitespace only", "   ", true, false, 0, ""},
		{"label", "NY", false, false, 0, "NY"},
		{"currency stays text", "$45", false, false, 0, "$45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := c.CoerceValue(tt.raw)
			assert.Equal(t, tt.missing, v.Missing)
			assert.Equal(t, tt.numeric, v.Numeric)
			assert.Equal(t, tt.number, v.Number)
			assert.Equal(t, tt.text, v.Text)
		})
	}
}

func TestCoerceColumnInference(t *testing.T) {
	c := NewTypeCoercer(DefaultCoercionConfig())

	tests := []struct {
		name     string
		raw      []string
		expected table.ColumnType
	}{
		{"numbers with gaps", []string{"25", "", "30"}, table.Quantitative},
		{"labels with gaps", []string{"NY", "LA", ""}, table.Categorical},
		{"all missing", []string{"", "NA"}, table.Quantitative},
		{"no rows", []string{}, table.Categorical},
		{"mostly text", []string{"A", "B", "C", "1"}, table.Categorical},
		{"half numeric", []string{"1", "x"}, table.Categorical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, values, err := c.CoerceColumn("col", tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, typ)
			assert.Len(t, values, len(tt.raw))
		})
	}
}

func TestCoerceColumnFormatError(t *testing.T) {
	c := NewTypeCoercer(DefaultCoercionConfig())

	_, _, err := c.CoerceColumn("age", []string{"25", "31", "twelve", "40", "52"})
	require.Error(t, err)
	assert.True(t, core.IsFormatError(err))
	assert.Contains(t, err.Error(), `"age"`)
	assert.Contains(t, err.Error(), `"twelve"`)
	assert.Contains(t, err.Error(), "row 3")
}

func TestThresholdOfOneDisablesFormatError(t *testing.T) {
	cfg := DefaultCoercionConfig()
	cfg.NumericThreshold = 1
	c := NewTypeCoercer(cfg)

	typ, _, err := c.CoerceColumn("age", []string{"25", "31", "twelve", "40", "52"})
	require.NoError(t, err)
	assert.Equal(t, table.Categorical, typ)
}

func TestCustomSentinels(t *testing.T) {
	cfg := DefaultCoercionConfig()
	cfg.MissingSentinels = []string{"?", "-"}
	c := NewTypeCoercer(cfg)

	assert.True(t, c.IsMissing("?"))
	assert.True(t, c.IsMissing(""), "empty cells are always missing")
	assert.False(t, c.IsMissing("NA"))

	typ, values, err := c.CoerceColumn("lot", []string{"65", "?", "80", "-"})
	require.NoError(t, err)
	assert.Equal(t, table.Quantitative, typ)
	assert.True(t, values[1].Missing)
	assert.True(t, values[3].Missing)
}

func TestNaNSpellingIsMissingWithoutSentinel(t *testing.T) {
	cfg := DefaultCoercionConfig()
	cfg.MissingSentinels = []string{"?"}
	c := NewTypeCoercer(cfg)

	for _, raw := range []string{"NaN", "nan", "-NaN"} {
		assert.True(t, c.CoerceValue(raw).Missing, raw)
	}

	typ, values, err := c.CoerceColumn("v", []string{"NaN", "3"})
	require.NoError(t, err)
	assert.Equal(t, table.Quantitative, typ)
	assert.True(t, values[0].Missing)
}

func TestAnalyzeTypeDistribution(t *testing.T) {
	c := NewTypeCoercer(DefaultCoercionConfig())

	analysis := c.AnalyzeTypeDistribution([]string{"1", "2", "", "x"})
	assert.Equal(t, 4, analysis.TotalCount)
	assert.Equal(t, 3, analysis.ValidCount)
	assert.Equal(t, 2, analysis.NumericCount)
	assert.InDelta(t, 2.0/3.0, analysis.NumericRatio, 1e-9)
	assert.Equal(t, 3, analysis.FirstTextRow)
	assert.Equal(t, "x", analysis.FirstText)
	assert.Equal(t, table.Categorical, analysis.RecommendedType)
}
