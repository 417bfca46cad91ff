// Package testkit provides an in-memory record repository for tests and
// offline demos. It mirrors the postgres adapter's behavior, including the
// column set and classification its Snapshot produces.
package testkit

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"datalens/domain/core"
	"datalens/domain/table"
	"datalens/models"
	"datalens/ports"
)

// ErrStoreDown is returned by every operation when FailAll is set.
var ErrStoreDown = errors.New("record store unavailable")

// MemoryRecordRepository is a threadsafe in-memory ports.RecordRepository.
type MemoryRecordRepository struct {
	mu      sync.RWMutex
	records []*models.Record

	// FailAll makes every operation fail, for exercising error paths.
	FailAll bool
}

var _ ports.RecordRepository = (*MemoryRecordRepository)(nil)

// NewMemoryRecordRepository creates an empty in-memory repository
func NewMemoryRecordRepository() *MemoryRecordRepository {
	return &MemoryRecordRepository{}
}

// Records returns the current contents in insertion order.
func (m *MemoryRecordRepository) Records() []*models.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*models.Record, len(m.records))
	copy(out, m.records)
	return out
}

func (m *MemoryRecordRepository) Create(_ context.Context, rec *models.Record) error {
	if m.FailAll {
		return ErrStoreDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
	return nil
}

func (m *MemoryRecordRepository) GetByID(_ context.Context, id core.ID) (*models.Record, error) {
	if m.FailAll {
		return nil, ErrStoreDown
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, rec := range m.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *MemoryRecordRepository) List(_ context.Context, limit, offset int) ([]*models.Record, error) {
	if m.FailAll {
		return nil, ErrStoreDown
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if offset >= len(m.records) {
		return []*models.Record{}, nil
	}
	end := offset + limit
	if end > len(m.records) {
		end = len(m.records)
	}
	out := make([]*models.Record, end-offset)
	copy(out, m.records[offset:end])
	return out, nil
}

func (m *MemoryRecordRepository) Count(_ context.Context) (int, error) {
	if m.FailAll {
		return 0, ErrStoreDown
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records), nil
}

func (m *MemoryRecordRepository) Update(_ context.Context, rec *models.Record) error {
	if m.FailAll {
		return ErrStoreDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.records {
		if existing.ID == rec.ID {
			m.records[i] = rec
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *MemoryRecordRepository) Delete(_ context.Context, id core.ID) error {
	if m.FailAll {
		return ErrStoreDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, rec := range m.records {
		if rec.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *MemoryRecordRepository) BulkInsert(_ context.Context, recs []*models.Record) error {
	if m.FailAll {
		return ErrStoreDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, recs...)
	return nil
}

// Snapshot materializes the payload columns as a typed table, classifying
// them the same way the postgres adapter does.
func (m *MemoryRecordRepository) Snapshot(_ context.Context) (*table.Table, error) {
	if m.FailAll {
		return nil, ErrStoreDown
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.records)
	name := table.CategoricalColumn{ColName: "name", Values: make([]string, n), Null: make([]bool, n)}
	age := table.NumericColumn{ColName: "age", Values: make([]float64, n), Null: make([]bool, n)}
	salary := table.NumericColumn{ColName: "salary", Values: make([]float64, n), Null: make([]bool, n)}
	department := table.CategoricalColumn{ColName: "department", Values: make([]string, n), Null: make([]bool, n)}
	experience := table.NumericColumn{ColName: "experience", Values: make([]float64, n), Null: make([]bool, n)}

	for i, rec := range m.records {
		setString(name.Values, name.Null, i, rec.Name)
		setInt(age.Values, age.Null, i, rec.Age)
		setFloat(salary.Values, salary.Null, i, rec.Salary)
		setString(department.Values, department.Null, i, rec.Department)
		setInt(experience.Values, experience.Null, i, rec.Experience)
	}

	return table.New(name, age, salary, department, experience)
}

func setString(values []string, null []bool, i int, v *string) {
	if v == nil {
		null[i] = true
		return
	}
	values[i] = *v
}

func setInt(values []float64, null []bool, i int, v *int) {
	if v == nil {
		null[i] = true
		return
	}
	values[i] = float64(*v)
}

func setFloat(values []float64, null []bool, i int, v *float64) {
	if v == nil {
		null[i] = true
		return
	}
	values[i] = *v
}
