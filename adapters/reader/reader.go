package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gocolumns/adapters/coercer"
	"gocolumns/domain/core"
	"gocolumns/domain/table"
	"gocolumns/internal"

	"github.com/xuri/excelize/v2"
)

const utf8BOM = "\ufeff"

// DataReader loads delimited text and xlsx files into typed tables
type DataReader struct {
	config  ReaderConfig
	coercer *coercer.TypeCoercer
	logger  *internal.Logger
}

// NewDataReader creates a reader; a nil logger falls back to internal.DefaultLogger
func NewDataReader(config ReaderConfig, logger *internal.Logger) *DataReader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DataReader{
		config:  config,
		coercer: coercer.NewTypeCoercer(config.CoercionConfig),
		logger:  logger,
	}
}

// LoadData reads path with the default configuration
func LoadData(path string, indexColumn string) (*table.Table, error) {
	return NewDataReader(DefaultReaderConfig(), nil).LoadData(path, indexColumn)
}

// FileTypeFor picks the parser from the path suffix: ".txt" is tab
// separated, ".xlsx" is a workbook, anything else is comma separated.
func FileTypeFor(path string) FileType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return FileTypeTSV
	case ".xlsx":
		return FileTypeXLSX
	default:
		return FileTypeCSV
	}
}

// Delimiter returns the field separator for delimited file types
func (ft FileType) Delimiter() rune {
	if ft == FileTypeTSV {
		return '\t'
	}
	return ','
}

// LoadData reads the file at path and keys its rows by indexColumn
func (r *DataReader) LoadData(path string, indexColumn string) (*table.Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, core.NewNotFoundError(path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, core.NewParseError(path, "is a directory")
	}

	fileType := FileTypeFor(path)
	r.logger.Debug("[DataReader] Starting to read %s file: %s", fileType, path)
	startTime := time.Now()

	var raw *RawData
	switch fileType {
	case FileTypeXLSX:
		raw, err = r.readExcelData(path)
	default:
		raw, err = r.readDelimitedFile(path, fileType.Delimiter())
	}
	if err != nil {
		return nil, err
	}

	t, err := r.buildTable(path, raw, indexColumn)
	if err != nil {
		return nil, err
	}
	r.logger.Info("[DataReader] Loaded %s as table %s (%d columns, %d rows) in %.2fms",
		path, t.ID(), t.Width(), t.Len(), float64(time.Since(startTime).Nanoseconds())/1e6)
	return t, nil
}

// LoadFromReader parses delimited text from src. name is only used in errors and logs.
func (r *DataReader) LoadFromReader(src io.Reader, name string, delimiter rune, indexColumn string) (*table.Table, error) {
	raw, err := r.readDelimited(src, name, delimiter)
	if err != nil {
		return nil, err
	}
	return r.buildTable(name, raw, indexColumn)
}

func (r *DataReader) readDelimitedFile(path string, delimiter rune) (*RawData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return r.readDelimited(file, path, delimiter)
}

// readDelimited reads a header line followed by records of the same width
func (r *DataReader) readDelimited(src io.Reader, name string, delimiter rune) (*RawData, error) {
	reader := csv.NewReader(src)
	reader.Comma = delimiter
	reader.FieldsPerRecord = 0
	// free text may carry a bare quote, as in an inch mark
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, core.NewParseError(name, "no header row")
	}
	if err != nil {
		return nil, wrapCSVError(name, err)
	}

	data := &RawData{Headers: cleanHeaders(header)}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapCSVError(name, err)
		}
		data.Rows = append(data.Rows, record)
	}

	r.logger.Debug("[DataReader] %s parsed (%d columns, %d rows)", name, len(data.Headers), len(data.Rows))
	return data, nil
}

func wrapCSVError(name string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return core.NewParseErrorAt(name, pe.Line, pe.Err)
	}
	return core.NewParseError(name, err.Error())
}

// readExcelData reads the configured sheet, or the first one, of a workbook
func (r *DataReader) readExcelData(path string) (*RawData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, core.NewParseError(path, fmt.Sprintf("failed to open workbook: %v", err))
	}
	defer f.Close()

	sheet := r.config.SheetName
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, core.NewParseError(path, "workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, core.NewParseError(path, fmt.Sprintf("failed to read sheet %q: %v", sheet, err))
	}
	if len(rows) == 0 {
		return nil, core.NewParseError(path, fmt.Sprintf("sheet %q has no header row", sheet))
	}

	data := &RawData{Headers: cleanHeaders(rows[0])}
	width := len(data.Headers)
	for i, row := range rows[1:] {
		// trailing empty cells are not returned by the workbook reader
		if len(row) > width {
			return nil, core.NewParseErrorAt(path, i+2, csv.ErrFieldCount)
		}
		padded := make([]string, width)
		copy(padded, row)
		data.Rows = append(data.Rows, padded)
	}

	r.logger.Debug("[DataReader] sheet %q parsed (%d columns, %d rows)", sheet, width, len(data.Rows))
	return data, nil
}

func cleanHeaders(header []string) []string {
	headers := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		headers[i] = strings.TrimSpace(h)
	}
	return headers
}

// buildTable moves the index column into the row keys and types every other column
func (r *DataReader) buildTable(source string, raw *RawData, indexColumn string) (*table.Table, error) {
	indexPos := -1
	seen := make(map[string]bool, len(raw.Headers))
	for i, h := range raw.Headers {
		if seen[h] {
			return nil, core.NewParseError(source, fmt.Sprintf("duplicate column %q in header", h))
		}
		seen[h] = true
		if h == indexColumn {
			indexPos = i
		}
	}
	if indexPos < 0 {
		return nil, core.NewParseError(source, fmt.Sprintf("index column %q not in header", indexColumn))
	}

	keys := make([]core.RowKey, len(raw.Rows))
	for row, record := range raw.Rows {
		keys[row] = core.RowKey(strings.TrimSpace(record[indexPos]))
	}

	builder := table.NewBuilder(indexColumn, keys)
	cells := make([]string, len(raw.Rows))
	for col, name := range raw.Headers {
		if col == indexPos {
			continue
		}
		for row, record := range raw.Rows {
			cells[row] = record[col]
		}
		typ, values, err := r.coercer.CoerceColumn(name, cells)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		r.logger.Trace("[DataReader] column %q inferred as %s", name, typ)
		builder.Add(name, typ, values)
	}

	t, err := builder.Build()
	if err != nil {
		return nil, core.NewParseError(source, err.Error())
	}
	return t, nil
}
