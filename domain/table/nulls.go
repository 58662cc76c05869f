package table

import (
	"gocolumns/domain/core"
)

// GetNullVars lists the columns with at least one missing cell. Categorical
// columns go in the first list, everything else in the second; both follow
// table order.
func GetNullVars(t *Table) NullReport {
	report := NullReport{Categorical: []string{}, Quantitative: []string{}}
	for _, c := range t.columns {
		if !c.HasMissing() {
			continue
		}
		if c.Type == Categorical {
			report.Categorical = append(report.Categorical, c.Name)
		} else {
			report.Quantitative = append(report.Quantitative, c.Name)
		}
	}
	return report
}

// GetNullIx maps each named column to the row keys of its missing cells, in
// row order. Columns without missing cells map to an empty slice.
func GetNullIx(t *Table, names []string) (NullIndex, error) {
	index := make(NullIndex, len(names))
	for _, name := range names {
		c, err := t.lookup(name)
		if err != nil {
			return nil, err
		}
		keys := []core.RowKey{}
		for row, v := range c.Values {
			if v.Missing {
				keys = append(keys, t.keys[row])
			}
		}
		index[name] = keys
	}
	return index, nil
}
