package table

import (
	"sort"

	"gocolumns/domain/core"
)

// GetQuantVars returns the quantitative columns of t in table order, minus
// any column named in excluded. Excluding a column that is absent or not
// currently quantitative is an error.
func GetQuantVars(t *Table, excluded ...string) (*ColumnSet, error) {
	drop := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		c, err := t.lookup(name)
		if err != nil {
			return nil, err
		}
		if c.Type != Quantitative {
			return nil, core.NewUnknownColumnError(name, "is not quantitative")
		}
		drop[name] = true
	}

	var positions []int
	for i, c := range t.columns {
		if c.Type == Quantitative && !drop[c.Name] {
			positions = append(positions, i)
		}
	}
	return t.project(positions), nil
}

// GetCatgVars returns the categorical columns of t in table order, followed
// by every column named in included, appended in table order whatever its
// tag. Naming a column that is already categorical yields it twice.
func GetCatgVars(t *Table, included ...string) (*ColumnSet, error) {
	extra := make([]int, 0, len(included))
	for _, name := range included {
		if _, err := t.lookup(name); err != nil {
			return nil, err
		}
		extra = append(extra, t.byName[name])
	}
	sort.SliceStable(extra, func(i, j int) bool { return extra[i] < extra[j] })

	var positions []int
	for i, c := range t.columns {
		if c.Type == Categorical {
			positions = append(positions, i)
		}
	}
	return t.project(append(positions, extra...)), nil
}
