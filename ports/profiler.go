package ports

import (
	"gocolumns/domain/table"
	"gocolumns/internal/profiling"
)

// ProfilerPort summarizes the columns of a projection
type ProfilerPort interface {
	Describe(cs *table.ColumnSet) ([]profiling.ColumnSummary, error)
}
