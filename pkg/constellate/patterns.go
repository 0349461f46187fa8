package constellate

// pattern is a hashable landmark pair: two peak frequencies and the
// sample-position delta between them.
type pattern struct {
	frequencyA   int
	frequencyB   int
	positionDelta int
}

// Patterns maps a pattern to the sample position of the earlier
// ("anchor") peak in the pair that produced it. When several candidate
// pairs share the same key, the last writer in generation order wins
// — this is part of the cross-implementation contract, not an
// implementation accident.
type Patterns map[pattern]int

// makePatterns pairs each peak with its next cfg.Fan-1 successors.
// peaks must already be sorted by position ascending, within a position
// by frequency ascending — the order extractPeaks produces.
func makePatterns(peaks []peak, cfg PatternsConfiguration) Patterns {
	patterns := make(Patterns)

	n := len(peaks)
	for i := 0; i < n; i++ {
		anchor := peaks[i]
		maxJ := cfg.Fan
		if i+maxJ > n {
			maxJ = n - i
		}
		for j := 1; j < maxJ; j++ {
			target := peaks[i+j]
			delta := target.position - anchor.position
			if delta < cfg.MinimumSamplePositionDelta || delta > cfg.MaximumSamplePositionDelta {
				continue
			}
			key := pattern{
				frequencyA:    anchor.frequency,
				frequencyB:    target.frequency,
				positionDelta: delta,
			}
			patterns[key] = anchor.position
		}
	}

	return patterns
}
