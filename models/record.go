package models

import (
	"time"

	"datalens/domain/core"
)

// Record represents one persisted row of uploaded tabular data. Payload
// fields are pointers because the store allows nulls and uploads may carry
// blank or unparsable cells; nulls flow through to the analysis as missing
// values.
type Record struct {
	ID         core.ID   `json:"id" db:"id"`
	Name       *string   `json:"name" db:"name"`
	Age        *int      `json:"age" db:"age"`
	Salary     *float64  `json:"salary" db:"salary"`
	Department *string   `json:"department" db:"department"`
	Experience *int      `json:"experience" db:"experience"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// CreateRecordRequest is the payload for creating a single record by hand.
// Unlike file ingestion, manual creation requires every field.
type CreateRecordRequest struct {
	Name       string  `json:"name"`
	Age        int     `json:"age"`
	Salary     float64 `json:"salary"`
	Department string  `json:"department"`
	Experience int     `json:"experience"`
}

// UpdateRecordRequest is a partial update: only non-nil fields are applied.
type UpdateRecordRequest struct {
	Name       *string  `json:"name"`
	Age        *int     `json:"age"`
	Salary     *float64 `json:"salary"`
	Department *string  `json:"department"`
	Experience *int     `json:"experience"`
}

// IsEmpty reports whether the update carries no changes at all.
func (r UpdateRecordRequest) IsEmpty() bool {
	return r.Name == nil && r.Age == nil && r.Salary == nil &&
		r.Department == nil && r.Experience == nil
}

// RecordPage is one page of a paginated record listing.
type RecordPage struct {
	Records    []*Record `json:"records"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
}

// UploadResult reports the outcome of a successful file ingestion.
type UploadResult struct {
	Message       string   `json:"message"`
	RowsProcessed int      `json:"rows_processed"`
	Columns       []string `json:"columns"`
}
