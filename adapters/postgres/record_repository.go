package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"datalens/domain/core"
	"datalens/models"
	"datalens/ports"

	"github.com/jmoiron/sqlx"
)

// recordRepository implements the RecordRepository interface
type recordRepository struct {
	db *sqlx.DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *sqlx.DB) ports.RecordRepository {
	return &recordRepository{db: db}
}

// Create inserts a new record into the database
func (r *recordRepository) Create(ctx context.Context, rec *models.Record) error {
	query := `INSERT INTO records (
		id, name, age, salary, department, experience, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.Name, rec.Age, rec.Salary, rec.Department, rec.Experience,
		rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}

	return nil
}

// GetByID retrieves a record by its ID
func (r *recordRepository) GetByID(ctx context.Context, id core.ID) (*models.Record, error) {
	query := `SELECT id, name, age, salary, department, experience, created_at, updated_at
	FROM records WHERE id = $1`

	var rec models.Record
	err := r.db.GetContext(ctx, &rec, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	return &rec, nil
}

// List retrieves records ordered by creation time with limit/offset pagination
func (r *recordRepository) List(ctx context.Context, limit, offset int) ([]*models.Record, error) {
	query := `SELECT id, name, age, salary, department, experience, created_at, updated_at
	FROM records
	ORDER BY created_at, id
	LIMIT $1 OFFSET $2`

	records := []*models.Record{}
	if err := r.db.SelectContext(ctx, &records, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return records, nil
}

// Count returns the total number of stored records
func (r *recordRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM records`); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// Update persists the full state of an existing record
func (r *recordRepository) Update(ctx context.Context, rec *models.Record) error {
	query := `UPDATE records SET
		name = $2, age = $3, salary = $4, department = $5, experience = $6, updated_at = $7
	WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.Name, rec.Age, rec.Salary, rec.Department, rec.Experience, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// Delete removes a record by ID
func (r *recordRepository) Delete(ctx context.Context, id core.ID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// BulkInsert inserts a batch of records inside a single transaction
func (r *recordRepository) BulkInsert(ctx context.Context, recs []*models.Record) error {
	if len(recs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO records (
		id, name, age, salary, department, experience, created_at, updated_at
	) VALUES (:id, :name, :age, :salary, :department, :experience, :created_at, :updated_at)`

	for _, rec := range recs {
		if _, err := tx.NamedExecContext(ctx, query, rec); err != nil {
			return fmt.Errorf("failed to insert record %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bulk insert: %w", err)
	}

	return nil
}
