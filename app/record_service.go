package app

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"
	"time"

	"datalens/domain/core"
	"datalens/internal/errors"
	"datalens/models"
	"datalens/ports"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// RecordService implements record CRUD with validation and pagination on top
// of the record repository.
type RecordService struct {
	repo ports.RecordRepository
}

// NewRecordService creates a new record service
func NewRecordService(repo ports.RecordRepository) *RecordService {
	return &RecordService{repo: repo}
}

// Create validates and persists a single hand-entered record.
func (s *RecordService) Create(ctx context.Context, req models.CreateRecordRequest) (*models.Record, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rec := &models.Record{
		ID:         core.NewID(),
		Name:       &req.Name,
		Age:        &req.Age,
		Salary:     &req.Salary,
		Department: &req.Department,
		Experience: &req.Experience,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, errors.DatabaseError("failed to store record", err)
	}

	return rec, nil
}

// Get returns one record by ID.
func (s *RecordService) Get(ctx context.Context, id core.ID) (*models.Record, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound("record")
		}
		return nil, errors.DatabaseError("failed to load record", err)
	}
	return rec, nil
}

// List returns one page of records together with pagination metadata.
func (s *RecordService) List(ctx context.Context, page, perPage int) (*models.RecordPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > maxPerPage {
		perPage = defaultPerPage
	}

	records, err := s.repo.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, errors.DatabaseError("failed to list records", err)
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, errors.DatabaseError("failed to count records", err)
	}

	return &models.RecordPage{
		Records:    records,
		Total:      total,
		Page:       page,
		TotalPages: (total + perPage - 1) / perPage,
	}, nil
}

// Update applies a partial update: only fields present in the request change.
func (s *RecordService) Update(ctx context.Context, id core.ID, req models.UpdateRecordRequest) (*models.Record, error) {
	if req.IsEmpty() {
		return nil, errors.InvalidInput("update carries no fields")
	}
	if err := validateUpdate(req); err != nil {
		return nil, err
	}

	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		rec.Name = req.Name
	}
	if req.Age != nil {
		rec.Age = req.Age
	}
	if req.Salary != nil {
		rec.Salary = req.Salary
	}
	if req.Department != nil {
		rec.Department = req.Department
	}
	if req.Experience != nil {
		rec.Experience = req.Experience
	}
	rec.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, rec); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound("record")
		}
		return nil, errors.DatabaseError("failed to update record", err)
	}

	return rec, nil
}

// Delete removes a record by ID.
func (s *RecordService) Delete(ctx context.Context, id core.ID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.NotFound("record")
		}
		return errors.DatabaseError("failed to delete record", err)
	}
	return nil
}

func validateCreate(req models.CreateRecordRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.InvalidInput("name is required")
	}
	if req.Age < 0 {
		return errors.InvalidInput("age cannot be negative")
	}
	if req.Salary < 0 {
		return errors.InvalidInput("salary cannot be negative")
	}
	if req.Experience < 0 {
		return errors.InvalidInput("experience cannot be negative")
	}
	return nil
}

func validateUpdate(req models.UpdateRecordRequest) error {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return errors.InvalidInput("name cannot be blank")
	}
	if req.Age != nil && *req.Age < 0 {
		return errors.InvalidInput("age cannot be negative")
	}
	if req.Salary != nil && *req.Salary < 0 {
		return errors.InvalidInput("salary cannot be negative")
	}
	if req.Experience != nil && *req.Experience < 0 {
		return errors.InvalidInput("experience cannot be negative")
	}
	return nil
}
