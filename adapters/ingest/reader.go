package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"datalens/ports"

	"github.com/xuri/excelize/v2"
)

// DataReader parses uploaded CSV and XLSX files into raw rectangular
// datasets. The format is picked from the file extension; CSV is the
// default when the extension is unknown.
type DataReader struct {
	log *slog.Logger
}

// NewDataReader creates a new data reader
func NewDataReader(log *slog.Logger) *DataReader {
	return &DataReader{log: log}
}

// Read parses the uploaded file into a header plus string cells. Short rows
// are padded so the result is rectangular; typing happens downstream.
func (d *DataReader) Read(filename string, r io.Reader) (*ports.RawDataset, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var (
		rows [][]string
		err  error
	)
	switch ext {
	case ".xlsx":
		rows, err = d.readExcel(r)
	default:
		rows, err = d.readCSV(r)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("file %s has no header row", filename)
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < len(header) {
			padded := make([]string, len(header))
			copy(padded, row)
			row = padded
		}
		data = append(data, row[:len(header)])
	}

	d.log.Info("parsed upload", "file", filename, "columns", len(header), "rows", len(data))

	return &ports.RawDataset{Columns: header, Rows: data}, nil
}

func (d *DataReader) readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, padded later
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return rows, nil
}

func (d *DataReader) readExcel(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}
