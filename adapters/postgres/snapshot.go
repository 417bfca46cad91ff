package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"datalens/domain/table"
)

// numericDBTypes lists the declared postgres column types classified as
// numeric. Everything else, timestamps and UUIDs included, is categorical —
// classification is structural, never inferred from cell contents.
var numericDBTypes = map[string]bool{
	"INT2":    true,
	"INT4":    true,
	"INT8":    true,
	"FLOAT4":  true,
	"FLOAT8":  true,
	"NUMERIC": true,
}

// Snapshot reads the entire records table into a typed table for analysis.
// It is generic over whatever columns the query returns, so schema changes
// flow into the report without adapter changes.
func (r *recordRepository) Snapshot(ctx context.Context) (*table.Table, error) {
	rows, err := r.db.QueryxContext(ctx, `SELECT * FROM records ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query records for snapshot: %w", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot columns: %w", err)
	}
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot column types: %w", err)
	}

	numeric := make([]bool, len(names))
	for i, ct := range colTypes {
		numeric[i] = numericDBTypes[ct.DatabaseTypeName()]
	}

	numbers := make([][]float64, len(names))
	labels := make([][]string, len(names))
	nulls := make([][]bool, len(names))

	for rows.Next() {
		cells, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		for i, cell := range cells {
			if cell == nil {
				nulls[i] = append(nulls[i], true)
				if numeric[i] {
					numbers[i] = append(numbers[i], 0)
				} else {
					labels[i] = append(labels[i], "")
				}
				continue
			}
			nulls[i] = append(nulls[i], false)
			if numeric[i] {
				v, err := toFloat(cell)
				if err != nil {
					return nil, fmt.Errorf("column %q: %w", names[i], err)
				}
				numbers[i] = append(numbers[i], v)
			} else {
				labels[i] = append(labels[i], toLabel(cell))
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("snapshot row iteration failed: %w", err)
	}

	columns := make([]table.Column, len(names))
	for i, name := range names {
		if numeric[i] {
			columns[i] = table.NumericColumn{ColName: name, Values: numbers[i], Null: nulls[i]}
		} else {
			columns[i] = table.CategoricalColumn{ColName: name, Values: labels[i], Null: nulls[i]}
		}
	}

	return table.New(columns...)
}

func toFloat(cell interface{}) (float64, error) {
	switch v := cell.(type) {
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case []byte:
		// NUMERIC columns arrive as text
		return strconv.ParseFloat(string(v), 64)
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("unexpected numeric cell type %T", cell)
	}
}

func toLabel(cell interface{}) string {
	switch v := cell.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
