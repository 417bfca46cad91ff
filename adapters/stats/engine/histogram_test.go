package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogramShape(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	edges, counts := histogram(values, 1, 5)

	assert.Len(t, edges, 11)
	assert.Len(t, counts, 10)
	assert.Equal(t, 1.0, edges[0])
	assert.Equal(t, 5.0, edges[10])

	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, len(values), total)
}

func TestHistogramBoundaryValues(t *testing.T) {
	// Range [0, 10] gives width-1 buckets. An interior edge value belongs
	// to the bucket it opens; the maximum closes into the last bucket.
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	edges, counts := histogram(values, 0, 10)

	require.Equal(t, 0.0, edges[0])
	require.Equal(t, 10.0, edges[10])

	expected := []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 2}
	assert.Equal(t, expected, counts)
}

func TestHistogramDegenerateRange(t *testing.T) {
	values := []float64{7, 7, 7}
	edges, counts := histogram(values, 7, 7)

	assert.InDelta(t, 6.5, edges[0], 1e-9)
	assert.InDelta(t, 7.5, edges[10], 1e-9)

	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, 3, total)
}

func TestHistogramSkewedData(t *testing.T) {
	values := []float64{1, 1, 1, 1, 100}
	_, counts := histogram(values, 1, 100)

	assert.Equal(t, 4, counts[0])
	assert.Equal(t, 1, counts[9])
}
