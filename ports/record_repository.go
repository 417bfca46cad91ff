package ports

import (
	"context"

	"datalens/domain/core"
	"datalens/domain/table"
	"datalens/models"
)

// RecordRepository defines persistence operations for uploaded records.
type RecordRepository interface {
	Create(ctx context.Context, rec *models.Record) error
	GetByID(ctx context.Context, id core.ID) (*models.Record, error)
	List(ctx context.Context, limit, offset int) ([]*models.Record, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, rec *models.Record) error
	Delete(ctx context.Context, id core.ID) error
	BulkInsert(ctx context.Context, recs []*models.Record) error

	// Snapshot materializes the full records table as a typed, immutable
	// table for analysis. Columns are classified by declared storage type.
	Snapshot(ctx context.Context) (*table.Table, error)
}
