package app

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"datalens/domain/core"
	"datalens/internal/errors"
	"datalens/models"
	"datalens/ports"
)

// UploadService ingests uploaded tabular files into the record store.
type UploadService struct {
	reader ports.DatasetReader
	repo   ports.RecordRepository
	log    *slog.Logger
}

// NewUploadService creates a new upload service
func NewUploadService(reader ports.DatasetReader, repo ports.RecordRepository, log *slog.Logger) *UploadService {
	return &UploadService{reader: reader, repo: repo, log: log}
}

// recordHeaders maps case-insensitive upload headers to record fields.
var recordHeaders = []string{"name", "age", "salary", "department", "experience"}

// Ingest parses the uploaded file and bulk-inserts its rows. The header row
// must carry the record fields (any order, any case). Blank or unparsable
// numeric cells become nulls and later surface as missing values in the
// analysis.
func (s *UploadService) Ingest(ctx context.Context, filename string, r io.Reader) (*models.UploadResult, error) {
	ds, err := s.reader.Read(filename, r)
	if err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, errors.Wrapf(err, "cannot parse %s", filename))
	}

	index, err := headerIndex(ds.Columns)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	records := make([]*models.Record, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		records = append(records, &models.Record{
			ID:         core.NewID(),
			Name:       stringCell(row[index["name"]]),
			Age:        intCell(row[index["age"]]),
			Salary:     floatCell(row[index["salary"]]),
			Department: stringCell(row[index["department"]]),
			Experience: intCell(row[index["experience"]]),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	if err := s.repo.BulkInsert(ctx, records); err != nil {
		return nil, errors.DatabaseError("failed to store uploaded records", err)
	}

	s.log.Info("file uploaded", "file", filename, "rows", len(records))

	return &models.UploadResult{
		Message:       "File uploaded successfully!",
		RowsProcessed: len(records),
		Columns:       ds.Columns,
	}, nil
}

// headerIndex locates every record field in the upload's header row.
func headerIndex(columns []string) (map[string]int, error) {
	index := make(map[string]int, len(recordHeaders))
	for i, col := range columns {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, h := range recordHeaders {
		if _, ok := index[h]; !ok {
			return nil, errors.InvalidInput("missing required column: " + h)
		}
	}
	return index, nil
}

func stringCell(cell string) *string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	return &cell
}

func intCell(cell string) *int {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	// Excel sometimes renders integers as floats; accept both
	if v, err := strconv.Atoi(cell); err == nil {
		return &v
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		v := int(f)
		return &v
	}
	return nil
}

func floatCell(cell string) *float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(cell, 64); err == nil {
		return &v
	}
	return nil
}
