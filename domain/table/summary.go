package table

// BasicInfo describes the shape of the analyzed table.
type BasicInfo struct {
	TotalRows          int      `json:"total_rows"`
	TotalColumns       int      `json:"total_columns"`
	NumericColumns     int      `json:"numeric_columns"`
	CategoricalColumns int      `json:"categorical_columns"`
	Columns            []string `json:"columns"`
}

// NumericStats summarizes one numeric column over its non-null values.
// HistogramBins holds 11 edges for the 10 equal-width HistogramValues
// buckets spanning [min, max].
type NumericStats struct {
	Mean            float64   `json:"mean"`
	Median          float64   `json:"median"`
	Std             float64   `json:"std"`
	Min             float64   `json:"min"`
	Max             float64   `json:"max"`
	HistogramBins   []float64 `json:"histogram_bins"`
	HistogramValues []int     `json:"histogram_values"`
}

// CategoricalStats summarizes one categorical column. Labels and Values are
// parallel sequences ranked by count descending (ties by first occurrence),
// capped at the ten most frequent labels. UniqueValues is the true distinct
// count, unaffected by the cap.
type CategoricalStats struct {
	ValueCounts  map[string]int `json:"value_counts"`
	UniqueValues int            `json:"unique_values"`
	Labels       []string       `json:"labels"`
	Values       []int          `json:"values"`
}

// SummaryReport is the full descriptive-statistics report for one table
// snapshot. It is computed fresh on every request and never cached.
type SummaryReport struct {
	BasicInfo        BasicInfo                   `json:"basic_info"`
	ColumnTypes      map[string]Kind             `json:"column_types"`
	MissingValues    map[string]int              `json:"missing_values"`
	NumericStats     map[string]NumericStats     `json:"numeric_stats"`
	CategoricalStats map[string]CategoricalStats `json:"categorical_stats"`
}
