package ports

import "datalens/domain/table"

// Summarizer computes a descriptive-statistics report over a table snapshot.
// Implementations must be pure and safe for concurrent callers.
type Summarizer interface {
	Summarize(t *table.Table) (*table.SummaryReport, error)
}
