package engine

import (
	"sort"

	"datalens/domain/table"
	"datalens/ports"

	"github.com/montanaflynn/stats"
)

const topValueLimit = 10

// Summarizer computes descriptive statistics over a table snapshot. It is
// stateless and safe for concurrent callers; each invocation reads one
// immutable snapshot and returns a fresh report.
type Summarizer struct{}

// NewSummarizer creates a new summarizer
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

var _ ports.Summarizer = (*Summarizer)(nil)

// Summarize classifies every column, counts missing values, and computes
// numeric summaries with histograms and categorical top-10 frequency counts.
func (s *Summarizer) Summarize(t *table.Table) (*table.SummaryReport, error) {
	report := &table.SummaryReport{
		ColumnTypes:      make(map[string]table.Kind),
		MissingValues:    make(map[string]int),
		NumericStats:     make(map[string]table.NumericStats),
		CategoricalStats: make(map[string]table.CategoricalStats),
	}

	info := table.BasicInfo{
		TotalRows:    t.Rows(),
		TotalColumns: len(t.Columns()),
		Columns:      make([]string, 0, len(t.Columns())),
	}

	for _, col := range t.Columns() {
		info.Columns = append(info.Columns, col.Name())
		report.ColumnTypes[col.Name()] = col.Kind()
		report.MissingValues[col.Name()] = col.NullCount()

		switch c := col.(type) {
		case table.NumericColumn:
			info.NumericColumns++
			// A zero-row table has no per-column stats, only shape info
			if t.Rows() == 0 {
				continue
			}
			if ns, ok := numericStats(c); ok {
				report.NumericStats[col.Name()] = ns
			}
		case table.CategoricalColumn:
			info.CategoricalColumns++
			if t.Rows() == 0 {
				continue
			}
			report.CategoricalStats[col.Name()] = categoricalStats(c)
		}
	}

	report.BasicInfo = info
	return report, nil
}

// numericStats computes summary statistics over the column's non-null
// values. A column with no non-null values has no defined statistics and is
// reported absent (ok == false); NaN would not survive JSON encoding.
func numericStats(col table.NumericColumn) (table.NumericStats, bool) {
	values := col.NonNull()
	if len(values) == 0 {
		return table.NumericStats{}, false
	}

	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)

	// Sample standard deviation divides by N-1; a single observation has
	// no spread, reported as 0 rather than NaN.
	std := 0.0
	if len(values) > 1 {
		std, _ = stats.StandardDeviationSample(values)
	}

	edges, counts := histogram(values, min, max)

	return table.NumericStats{
		Mean:            mean,
		Median:          median,
		Std:             std,
		Min:             min,
		Max:             max,
		HistogramBins:   edges,
		HistogramValues: counts,
	}, true
}

// categoricalStats ranks distinct non-null labels by occurrence count,
// descending, with ties broken by first appearance in column order, and
// keeps the ten most frequent. UniqueValues reports the uncapped distinct
// count.
func categoricalStats(col table.CategoricalColumn) table.CategoricalStats {
	type entry struct {
		label string
		count int
	}

	index := make(map[string]int)
	entries := []entry{}
	for _, label := range col.NonNull() {
		if i, seen := index[label]; seen {
			entries[i].count++
			continue
		}
		index[label] = len(entries)
		entries = append(entries, entry{label: label, count: 1})
	}

	// entries are in first-seen order, so a stable sort keeps that order
	// for equal counts
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})

	top := entries
	if len(top) > topValueLimit {
		top = top[:topValueLimit]
	}

	cs := table.CategoricalStats{
		ValueCounts:  make(map[string]int, len(top)),
		UniqueValues: len(entries),
		Labels:       make([]string, 0, len(top)),
		Values:       make([]int, 0, len(top)),
	}
	for _, e := range top {
		cs.ValueCounts[e.label] = e.count
		cs.Labels = append(cs.Labels, e.label)
		cs.Values = append(cs.Values, e.count)
	}

	return cs
}
