package constellate

import "math"

// histogram bins values into uniform-width buckets of width delta over
// [min(values), max(values)]. Counts and binCenters have the same
// length and are indexed in increasing-value order.
//
// values must be non-empty and delta must be > 0; both are caller
// invariants, so violating either panics rather than returning an error.
func histogram(values []float64, delta float64) (counts []int, binCenters []float64) {
	if len(values) == 0 {
		panic("constellate: histogram requires a non-empty values slice")
	}
	if delta <= 0 {
		panic("constellate: histogram requires delta > 0")
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if lo == hi {
		return []int{len(values)}, []float64{lo}
	}

	bins := int(math.Ceil((hi - lo) / delta))
	if bins < 1 {
		bins = 1
	}
	width := (hi - lo) / float64(bins)

	counts = make([]int, bins)
	binCenters = make([]float64, bins)
	for i := 0; i < bins; i++ {
		binCenters[i] = lo + width*(float64(i)+0.5)
	}

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		counts[idx]++
	}

	return counts, binCenters
}

// argmaxFirstWins returns the index of the largest value in counts,
// resolving ties by the smallest index.
func argmaxFirstWins(counts []int) int {
	best := 0
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}
	return best
}
