package table

import "fmt"

// Kind classifies a column by its declared storage type. Classification is
// structural: a column of numeric-looking strings is still categorical.
type Kind string

const (
	KindNumeric     Kind = "numeric"
	KindCategorical Kind = "categorical"
)

// Column is one tagged variant of a table column. A column is exactly one of
// NumericColumn or CategoricalColumn, fixed at construction; consumers
// type-switch over the variant instead of re-inspecting cell contents.
type Column interface {
	Name() string
	Kind() Kind
	Len() int
	NullCount() int
}

// NumericColumn holds float64 cells with a parallel null mask.
// A nil mask means the column has no missing values.
type NumericColumn struct {
	ColName string
	Values  []float64
	Null    []bool
}

func (c NumericColumn) Name() string { return c.ColName }
func (c NumericColumn) Kind() Kind   { return KindNumeric }
func (c NumericColumn) Len() int     { return len(c.Values) }

func (c NumericColumn) NullCount() int {
	return countNulls(c.Null)
}

// NonNull returns the column's values with null cells filtered out,
// preserving order.
func (c NumericColumn) NonNull() []float64 {
	if c.Null == nil {
		out := make([]float64, len(c.Values))
		copy(out, c.Values)
		return out
	}
	out := make([]float64, 0, len(c.Values))
	for i, v := range c.Values {
		if !c.Null[i] {
			out = append(out, v)
		}
	}
	return out
}

// CategoricalColumn holds string cells with a parallel null mask.
type CategoricalColumn struct {
	ColName string
	Values  []string
	Null    []bool
}

func (c CategoricalColumn) Name() string { return c.ColName }
func (c CategoricalColumn) Kind() Kind   { return KindCategorical }
func (c CategoricalColumn) Len() int     { return len(c.Values) }

func (c CategoricalColumn) NullCount() int {
	return countNulls(c.Null)
}

// NonNull returns the column's labels with null cells filtered out,
// preserving order.
func (c CategoricalColumn) NonNull() []string {
	if c.Null == nil {
		out := make([]string, len(c.Values))
		copy(out, c.Values)
		return out
	}
	out := make([]string, 0, len(c.Values))
	for i, v := range c.Values {
		if !c.Null[i] {
			out = append(out, v)
		}
	}
	return out
}

func countNulls(mask []bool) int {
	n := 0
	for _, isNull := range mask {
		if isNull {
			n++
		}
	}
	return n
}

// Table is an ordered sequence of equal-length named columns. It is an
// immutable snapshot: the analysis engine reads it and never mutates it.
type Table struct {
	columns []Column
	rows    int
}

// New builds a table from columns, enforcing the equal-length invariant and
// rejecting malformed null masks and duplicate names. A table with zero rows
// (or zero columns) is valid.
func New(columns ...Column) (*Table, error) {
	rows := 0
	if len(columns) > 0 {
		rows = columns[0].Len()
	}

	names := make(map[string]bool, len(columns))
	for _, col := range columns {
		if col.Name() == "" {
			return nil, fmt.Errorf("column name cannot be empty")
		}
		if names[col.Name()] {
			return nil, fmt.Errorf("duplicate column name %q", col.Name())
		}
		names[col.Name()] = true

		if col.Len() != rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", col.Name(), col.Len(), rows)
		}
		if err := checkMask(col); err != nil {
			return nil, err
		}
	}

	return &Table{columns: columns, rows: rows}, nil
}

func checkMask(col Column) error {
	var mask []bool
	switch c := col.(type) {
	case NumericColumn:
		mask = c.Null
	case CategoricalColumn:
		mask = c.Null
	default:
		return fmt.Errorf("column %q has unknown variant %T", col.Name(), col)
	}
	if mask != nil && len(mask) != col.Len() {
		return fmt.Errorf("column %q null mask has %d entries, expected %d", col.Name(), len(mask), col.Len())
	}
	return nil
}

// Columns returns the columns in table order.
func (t *Table) Columns() []Column { return t.columns }

// Rows returns the row count shared by every column.
func (t *Table) Rows() int { return t.rows }
