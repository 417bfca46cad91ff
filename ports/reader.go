package ports

import "io"

// RawDataset is a parsed delimited file: a header row plus string cells.
// Typing and null detection happen downstream.
type RawDataset struct {
	Columns []string
	Rows    [][]string
}

// DatasetReader parses an uploaded file into a rectangular raw dataset.
// The filename is used to pick the format (CSV or XLSX).
type DatasetReader interface {
	Read(filename string, r io.Reader) (*RawDataset, error)
}
