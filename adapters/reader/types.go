package reader

// RawData is a parsed file before any type coercion
type RawData struct {
	Headers []string   // Column headers, trimmed
	Rows    [][]string // Data rows, one cell per header
}

// FileType identifies how a file is parsed
type FileType string

const (
	FileTypeCSV  FileType = "csv"
	FileTypeTSV  FileType = "tsv"
	FileTypeXLSX FileType = "xlsx"
)
