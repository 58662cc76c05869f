package export

import (
	"math"
	"testing"

	"gocolumns/domain/core"
	"gocolumns/domain/table"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.NewBuilder("id", core.RowKeys("1", "2", "3")).
		Add("age", table.Quantitative, []table.Value{
			table.NumberValue("25", 25), table.MissingValue(), table.NumberValue("30", 30),
		}).
		Add("city", table.Categorical, []table.Value{
			table.TextValue("NY"), table.TextValue("LA"), table.MissingValue(),
		}).
		Add("rooms", table.Quantitative, []table.Value{
			table.NumberValue("3", 3), table.NumberValue("4", 4), table.NumberValue("2", 2),
		}).
		Build()
	require.NoError(t, err)
	return tbl
}

func TestToDataFrame(t *testing.T) {
	tbl := scenarioTable(t)
	quant, err := table.GetQuantVars(tbl)
	require.NoError(t, err)

	df, err := ToDataFrame(quant)
	require.NoError(t, err)
	assert.Equal(t, 3, df.Nrow())
	assert.Equal(t, []string{"id", "age", "rooms"}, df.Names())
	assert.Equal(t, []string{"1", "2", "3"}, df.Col("id").Records())

	age := df.Col("age").Float()
	assert.Equal(t, 25.0, age[0])
	assert.True(t, math.IsNaN(age[1]))
	assert.Equal(t, 30.0, age[2])
}

func TestToDataFrameCategorical(t *testing.T) {
	tbl := scenarioTable(t)
	catg, err := table.GetCatgVars(tbl)
	require.NoError(t, err)

	df, err := ToDataFrame(catg)
	require.NoError(t, err)
	assert.Equal(t, 2, df.Ncol())

	city := df.Col("city")
	assert.Equal(t, "NY", city.Elem(0).String())
	assert.True(t, city.Elem(2).IsNA())
}

func TestToMatrix(t *testing.T) {
	tbl := scenarioTable(t)
	quant, err := table.GetQuantVars(tbl)
	require.NoError(t, err)

	m, err := ToMatrix(quant)
	require.NoError(t, err)

	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 25.0, m.At(0, 0))
	assert.True(t, math.IsNaN(m.At(1, 0)))
	assert.Equal(t, 4.0, m.At(1, 1))
	assert.Equal(t, 2.0, m.At(2, 1))
}

func TestToMatrixRejectsCategorical(t *testing.T) {
	tbl := scenarioTable(t)
	catg, err := table.GetCatgVars(tbl)
	require.NoError(t, err)

	_, err = ToMatrix(catg)
	assert.True(t, core.IsUnknownColumnError(err))
}

func TestToMatrixEmpty(t *testing.T) {
	tbl := scenarioTable(t)
	quant, err := table.GetQuantVars(tbl, "age", "rooms")
	require.NoError(t, err)

	_, err = ToMatrix(quant)
	assert.ErrorIs(t, err, core.ErrEmptySelection)
}

func TestToArrowRecord(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	tbl := scenarioTable(t)
	catg, err := table.GetCatgVars(tbl, "age")
	require.NoError(t, err)

	rec, err := ToArrowRecord(catg, mem)
	require.NoError(t, err)
	defer rec.Release()

	assert.EqualValues(t, 3, rec.NumRows())
	assert.EqualValues(t, 3, rec.NumCols())

	schema := rec.Schema()
	assert.Equal(t, "id", schema.Field(0).Name)
	assert.Equal(t, "city", schema.Field(1).Name)
	assert.Equal(t, arrow.BinaryTypes.String, schema.Field(1).Type)
	assert.Equal(t, arrow.PrimitiveTypes.Float64, schema.Field(2).Type)

	keys := rec.Column(0).(*array.String)
	assert.Equal(t, "2", keys.Value(1))

	city := rec.Column(1).(*array.String)
	assert.Equal(t, "NY", city.Value(0))
	assert.True(t, city.IsNull(2))

	age := rec.Column(2).(*array.Float64)
	assert.Equal(t, 25.0, age.Value(0))
	assert.True(t, age.IsNull(1))
}
