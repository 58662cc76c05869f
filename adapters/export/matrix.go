package export

import (
	"gocolumns/domain/core"
	"gocolumns/domain/table"

	"gonum.org/v1/gonum/mat"
)

// ToMatrix lays out a quantitative projection as a rows x columns matrix,
// with missing cells as NaN. Every column must be quantitative.
func ToMatrix(cs *table.ColumnSet) (*mat.Dense, error) {
	rows, cols := cs.Len(), len(cs.Columns)
	if rows == 0 || cols == 0 {
		return nil, core.ErrEmptySelection
	}
	for _, c := range cs.Columns {
		if c.Type != table.Quantitative {
			return nil, core.NewUnknownColumnError(c.Name, "is not quantitative")
		}
	}

	data := make([]float64, rows*cols)
	for j := range cs.Columns {
		for i, f := range cs.Columns[j].Floats() {
			data[i*cols+j] = f
		}
	}
	return mat.NewDense(rows, cols, data), nil
}
