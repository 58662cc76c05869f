package app

import (
	"fmt"

	"gocolumns/adapters/reader"
	"gocolumns/domain/table"
	"gocolumns/internal"
	"gocolumns/internal/config"
	"gocolumns/internal/profiling"
	"gocolumns/ports"
)

// DatasetService is the single entry point for loading a table and splitting
// it into quantitative and categorical projections.
type DatasetService struct {
	loader   ports.TableLoader
	profiler ports.ProfilerPort
	logger   *internal.Logger
}

// MissingReport pairs the null columns with the rows where each is missing
type MissingReport struct {
	Columns table.NullReport `json:"columns"`
	Rows    table.NullIndex  `json:"rows"`
}

// NewDatasetService creates a dataset service
func NewDatasetService(loader ports.TableLoader, profiler ports.ProfilerPort, logger *internal.Logger) *DatasetService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DatasetService{
		loader:   loader,
		profiler: profiler,
		logger:   logger,
	}
}

// NewDatasetServiceFromConfig wires the file reader and profiler from cfg
func NewDatasetServiceFromConfig(cfg *config.Config) *DatasetService {
	logger := internal.NewLogger(internal.ParseLogLevel(cfg.Log.Level))
	return NewDatasetService(
		reader.NewDataReader(reader.ReaderConfigFrom(cfg.Loader), logger),
		profiling.NewDataProfiler(),
		logger,
	)
}

// NewDatasetServiceFromEnv reads configuration from the environment and the
// optional .env files, then wires the service
func NewDatasetServiceFromEnv(envFiles ...string) (*DatasetService, error) {
	cfg, err := config.LoadWithEnvFile(envFiles...)
	if err != nil {
		return nil, err
	}
	return NewDatasetServiceFromConfig(cfg), nil
}

// LoadData reads path into a table keyed by indexColumn
func (s *DatasetService) LoadData(path string, indexColumn string) (*table.Table, error) {
	t, err := s.loader.LoadData(path, indexColumn)
	if err != nil {
		s.logger.Error("[DatasetService] load of %s failed: %v", path, err)
		return nil, err
	}
	return t, nil
}

// QuantVars returns the quantitative columns of t minus excluded
func (s *DatasetService) QuantVars(t *table.Table, excluded ...string) (*table.ColumnSet, error) {
	cs, err := table.GetQuantVars(t, excluded...)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("[DatasetService] table %s: %d quantitative columns", t.ID(), len(cs.Columns))
	return cs, nil
}

// CatgVars returns the categorical columns of t followed by included
func (s *DatasetService) CatgVars(t *table.Table, included ...string) (*table.ColumnSet, error) {
	cs, err := table.GetCatgVars(t, included...)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("[DatasetService] table %s: %d categorical columns", t.ID(), len(cs.Columns))
	return cs, nil
}

// ConvToCatgType retags the named columns of t as categorical
func (s *DatasetService) ConvToCatgType(t *table.Table, names []string) (*table.Table, error) {
	out, err := table.ConvToCatgType(t, names)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("[DatasetService] table %s: retagged %v as categorical", t.ID(), names)
	return out, nil
}

// NullVars lists the columns of t with missing cells, split by tag
func (s *DatasetService) NullVars(t *table.Table) table.NullReport {
	return table.GetNullVars(t)
}

// NullIx maps the named columns to the row keys of their missing cells
func (s *DatasetService) NullIx(t *table.Table, names []string) (table.NullIndex, error) {
	return table.GetNullIx(t, names)
}

// Missing runs NullVars and feeds every reported column to NullIx
func (s *DatasetService) Missing(t *table.Table) (*MissingReport, error) {
	columns := table.GetNullVars(t)
	rows, err := table.GetNullIx(t, columns.All())
	if err != nil {
		return nil, fmt.Errorf("failed to index missing rows: %w", err)
	}
	return &MissingReport{Columns: columns, Rows: rows}, nil
}

// Describe summarizes each column of a projection
func (s *DatasetService) Describe(cs *table.ColumnSet) ([]profiling.ColumnSummary, error) {
	if s.profiler == nil {
		return nil, fmt.Errorf("no profiler configured")
	}
	return s.profiler.Describe(cs)
}
