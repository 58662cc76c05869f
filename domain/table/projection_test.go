package table

import (
	"sort"
	"testing"

	"gocolumns/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioProjection(t *testing.T) {
	tbl := scenarioTable(t)

	quant, err := GetQuantVars(tbl)
	require.NoError(t, err)
	assert.Equal(t, []string{"age"}, quant.Names())
	assert.Equal(t, "id", quant.IndexName)
	assert.Equal(t, core.RowKeys("1", "2", "3"), quant.Keys)

	catg, err := GetCatgVars(tbl)
	require.NoError(t, err)
	assert.Equal(t, []string{"city"}, catg.Names())
}

func TestProjectionPartitionsColumns(t *testing.T) {
	tbl := wideTable(t)

	quant, err := GetQuantVars(tbl)
	require.NoError(t, err)
	catg, err := GetCatgVars(tbl)
	require.NoError(t, err)

	assert.Equal(t, []string{"area", "class", "lot"}, quant.Names())
	assert.Equal(t, []string{"zone", "street"}, catg.Names())

	union := append(quant.Names(), catg.Names()...)
	sort.Strings(union)
	all := tbl.Names()
	sort.Strings(all)
	assert.Equal(t, all, union, "quantitative and categorical sets must cover every column exactly once")
}

func TestGetQuantVarsExcluded(t *testing.T) {
	tbl := wideTable(t)

	quant, err := GetQuantVars(tbl, "lot", "area")
	require.NoError(t, err)
	assert.Equal(t, []string{"class"}, quant.Names())

	_, err = GetQuantVars(tbl, "missing")
	assert.True(t, core.IsUnknownColumnError(err))

	_, err = GetQuantVars(tbl, "zone")
	assert.True(t, core.IsUnknownColumnError(err), "excluding a categorical column is an error")
}

func TestGetCatgVarsIncluded(t *testing.T) {
	tbl := wideTable(t)

	// included columns are appended in table order, not argument order
	catg, err := GetCatgVars(tbl, "lot", "class")
	require.NoError(t, err)
	assert.Equal(t, []string{"zone", "street", "class", "lot"}, catg.Names())

	// an already categorical column is appended a second time
	catg, err = GetCatgVars(tbl, "street")
	require.NoError(t, err)
	assert.Equal(t, []string{"zone", "street", "street"}, catg.Names())

	_, err = GetCatgVars(tbl, "nope")
	assert.True(t, core.IsUnknownColumnError(err))
}

func TestIncludedColumnKeepsTag(t *testing.T) {
	tbl := wideTable(t)

	catg, err := GetCatgVars(tbl, "class")
	require.NoError(t, err)
	col, ok := catg.Column("class")
	require.True(t, ok)
	assert.Equal(t, Quantitative, col.Type, "inclusion does not retag the column")
}

func TestProjectionDoesNotAlias(t *testing.T) {
	tbl := scenarioTable(t)

	quant, err := GetQuantVars(tbl)
	require.NoError(t, err)
	quant.Columns[0].Values[1] = NumberValue("99", 99)
	quant.Columns[0].Type = Categorical
	quant.Keys[0] = "x"

	col, err := tbl.Column("age")
	require.NoError(t, err)
	assert.True(t, col.Values[1].Missing)
	assert.Equal(t, Quantitative, col.Type)
	assert.Equal(t, core.RowKey("1"), tbl.Keys()[0])
}

func TestConvToCatgType(t *testing.T) {
	tbl := wideTable(t)

	out, err := ConvToCatgType(tbl, []string{"class"})
	require.NoError(t, err)
	assert.Same(t, tbl, out)

	catg, err := GetCatgVars(tbl)
	require.NoError(t, err)
	assert.Contains(t, catg.Names(), "class")

	quant, err := GetQuantVars(tbl)
	require.NoError(t, err)
	assert.NotContains(t, quant.Names(), "class")

	col, err := tbl.Column("class")
	require.NoError(t, err)
	assert.True(t, col.Values[0].Numeric, "values are not reformatted")
	assert.Equal(t, 60.0, col.Values[0].Number)
}

func TestConvToCatgTypeUnknownLeavesTableUntouched(t *testing.T) {
	tbl := wideTable(t)

	_, err := ConvToCatgType(tbl, []string{"area", "ghost"})
	assert.True(t, core.IsUnknownColumnError(err))

	typ, err := tbl.Type("area")
	require.NoError(t, err)
	assert.Equal(t, Quantitative, typ)
}
