package export

import (
	"fmt"

	"gocolumns/domain/table"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// ArrowSchema maps a projection to an Arrow schema: a string key field
// followed by nullable float64 or string fields.
func ArrowSchema(cs *table.ColumnSet) *arrow.Schema {
	fields := make([]arrow.Field, 0, len(cs.Columns)+1)
	fields = append(fields, arrow.Field{Name: cs.IndexName, Type: arrow.BinaryTypes.String})
	for _, c := range cs.Columns {
		var typ arrow.DataType = arrow.BinaryTypes.String
		if c.Type == table.Quantitative {
			typ = arrow.PrimitiveTypes.Float64
		}
		fields = append(fields, arrow.Field{Name: c.Name, Type: typ, Nullable: true})
	}
	return arrow.NewSchema(fields, nil)
}

// ToArrowRecord copies a projection into an Arrow record. Missing cells are
// nulls. The caller owns the record and must Release it. A nil allocator
// selects the Go allocator.
func ToArrowRecord(cs *table.ColumnSet, mem memory.Allocator) (arrow.Record, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	b := array.NewRecordBuilder(mem, ArrowSchema(cs))
	defer b.Release()

	keys := b.Field(0).(*array.StringBuilder)
	for _, k := range cs.Keys {
		keys.Append(k.String())
	}

	for i, c := range cs.Columns {
		switch fb := b.Field(i + 1).(type) {
		case *array.Float64Builder:
			for _, v := range c.Values {
				if v.Missing || !v.Numeric {
					fb.AppendNull()
					continue
				}
				fb.Append(v.Number)
			}
		case *array.StringBuilder:
			for _, v := range c.Values {
				if v.Missing {
					fb.AppendNull()
					continue
				}
				fb.Append(v.Text)
			}
		default:
			return nil, fmt.Errorf("column %q: unexpected arrow builder %T", c.Name, fb)
		}
	}

	return b.NewRecord(), nil
}
