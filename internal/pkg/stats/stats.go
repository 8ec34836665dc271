package stats

import "sort"

// Mean returns the arithmetic mean of the sample, 0 for an empty one.
func Mean(sample []float64) float64 {
	if len(sample) == 0 {
		return 0
	}
	var sum float64
	for _, v := range sample {
		sum += v
	}
	return sum / float64(len(sample))
}

// Median returns Quantile(sample, 0.5).
func Median(sample []float64) float64 {
	return Quantile(sample, 0.5)
}

// Quantile computes the q-quantile (0 <= q <= 1) with linear
// interpolation between closest ranks, the same method the dashboards
// were validated against. The input is not modified.
func Quantile(sample []float64, q float64) float64 {
	if len(sample) == 0 {
		return 0
	}
	if q < 0 {
		q = 0
	}
	if q > 1 {
		q = 1
	}

	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)

	pos := q * float64(len(sorted)-1)
	lower := int(pos)
	if lower >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lower)
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}
