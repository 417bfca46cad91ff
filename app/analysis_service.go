package app

import (
	"context"
	"log/slog"

	"datalens/domain/table"
	"datalens/internal/errors"
	"datalens/ports"
)

// AnalysisService produces descriptive-statistics reports over the current
// record store contents. Each request takes a fresh snapshot; nothing is
// cached between calls.
type AnalysisService struct {
	repo       ports.RecordRepository
	summarizer ports.Summarizer
	log        *slog.Logger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(repo ports.RecordRepository, summarizer ports.Summarizer, log *slog.Logger) *AnalysisService {
	return &AnalysisService{repo: repo, summarizer: summarizer, log: log}
}

// Analyze snapshots the store and computes its summary report. An empty
// store yields DATA_UNAVAILABLE; a failing store query yields
// COMPUTATION_FAILED. Errors are terminal, there are no retries or partial
// results.
func (s *AnalysisService) Analyze(ctx context.Context) (*table.SummaryReport, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, errors.ComputationFailed(err)
	}
	if count == 0 {
		return nil, errors.DataUnavailable()
	}

	snapshot, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, errors.ComputationFailed(err)
	}

	report, err := s.summarizer.Summarize(snapshot)
	if err != nil {
		return nil, errors.ComputationFailed(err)
	}

	s.log.Info("analysis completed",
		"rows", report.BasicInfo.TotalRows,
		"columns", report.BasicInfo.TotalColumns,
		"numeric", report.BasicInfo.NumericColumns,
		"categorical", report.BasicInfo.CategoricalColumns,
	)

	return report, nil
}
