package ports

import "gocolumns/domain/table"

// TableLoader reads a table from a file, keyed by the named index column
type TableLoader interface {
	LoadData(path string, indexColumn string) (*table.Table, error)
}
