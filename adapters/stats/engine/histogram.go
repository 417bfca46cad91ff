package engine

import "gonum.org/v1/gonum/floats"

const histogramBins = 10

// histogram partitions [min, max] into histogramBins equal-width buckets and
// returns the 11 edges plus the 10 counts. Bucket i covers
// [edge[i], edge[i+1]), except the last bucket is closed on both ends so the
// maximum lands in bucket 9. A degenerate range (min == max, including a
// single observation) is widened to [min-0.5, max+0.5], the numpy behavior.
func histogram(values []float64, min, max float64) ([]float64, []int) {
	lo, hi := min, max
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	edges := floats.Span(make([]float64, histogramBins+1), lo, hi)
	counts := make([]int, histogramBins)
	width := (hi - lo) / histogramBins

	for _, v := range values {
		i := int((v - lo) / width)
		if i >= histogramBins {
			i = histogramBins - 1
		}
		if i < 0 {
			i = 0
		}
		counts[i]++
	}

	return edges, counts
}
